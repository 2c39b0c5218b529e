package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cashflow-tracker/backend/config"
	"github.com/cashflow-tracker/backend/internal/infra/dependency"
	"github.com/cashflow-tracker/backend/internal/integration/persistence/model"
	"github.com/cashflow-tracker/backend/test/integration/mock"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response
	db       *mock.Db

	currentCategoryID uuid.UUID
	currentPlanID     uuid.UUID
	currentEntryID    uuid.UUID
	lastResponseID    uuid.UUID

	categoryIDs map[string]uuid.UUID
	planIDs     map[string]uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"categories": &model.CategoryModel{},
			"plans":      &model.PlanModel{},
			"entries":    &model.EntryModel{},
			"settings":   &model.SettingModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Fixture steps
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^a "([^"]*)" plan "([^"]*)" exists for category "([^"]*)" with amount "([^"]*)" starting "([^"]*)"$`, test.aPlanExists)
	ctx.Given(`^the plan "([^"]*)" ends in "([^"]*)"$`, test.thePlanEndsIn)
	ctx.Given(`^the plan "([^"]*)" is completed$`, test.thePlanIsCompleted)
	ctx.Given(`^an entry of "([^"]*)" exists for plan "([^"]*)" in "([^"]*)"$`, test.anEntryExistsForPlanIn)
	ctx.Given(`^the starting balance is "([^"]*)"$`, test.theStartingBalanceIs)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.currentCategoryID = uuid.Nil
	t.currentPlanID = uuid.Nil
	t.currentEntryID = uuid.Nil
	t.lastResponseID = uuid.Nil
	t.categoryIDs = make(map[string]uuid.UUID)
	t.planIDs = make(map[string]uuid.UUID)

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector := dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis())
			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID
	t.categoryIDs[name] = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		Name:      name,
		Type:      categoryType,
		Color:     "#6366F1",
		Icon:      "tag",
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) aPlanExists(frequency, name, categoryName, amount, startMonth string) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category %q has not been seeded", categoryName)
	}

	expectedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	planID := uuid.New()
	t.currentPlanID = planID
	t.planIDs[name] = planID

	now := time.Now().UTC()
	planModel := &model.PlanModel{
		ID:             planID,
		CategoryID:     categoryID,
		Name:           name,
		ExpectedAmount: expectedAmount,
		Frequency:      frequency,
		StartMonth:     startMonth,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return t.db.DbConn.Create(planModel).Error
}

func (t *testContext) thePlanEndsIn(name, endMonth string) error {
	planID, ok := t.planIDs[name]
	if !ok {
		return fmt.Errorf("plan %q has not been seeded", name)
	}
	return t.db.DbConn.Model(&model.PlanModel{}).
		Where("id = ?", planID).
		Update("end_month", endMonth).Error
}

func (t *testContext) thePlanIsCompleted(name string) error {
	planID, ok := t.planIDs[name]
	if !ok {
		return fmt.Errorf("plan %q has not been seeded", name)
	}
	return t.db.DbConn.Model(&model.PlanModel{}).
		Where("id = ?", planID).
		Update("status", "completed").Error
}

func (t *testContext) anEntryExistsForPlanIn(amount, planName, monthKey string) error {
	planID, ok := t.planIDs[planName]
	if !ok {
		return fmt.Errorf("plan %q has not been seeded", planName)
	}

	entryAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	entryID := uuid.New()
	t.currentEntryID = entryID

	now := time.Now().UTC()
	entryModel := &model.EntryModel{
		ID:        entryID,
		PlanID:    planID,
		MonthKey:  monthKey,
		Amount:    entryAmount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(entryModel).Error
}

func (t *testContext) theStartingBalanceIs(value string) error {
	settingModel := &model.SettingModel{
		Key:       "starting_balance",
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(settingModel).Error
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{plan_id}}", t.currentPlanID.String())
	content = strings.ReplaceAll(content, "{{entry_id}}", t.currentEntryID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastResponseID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastResponseID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
