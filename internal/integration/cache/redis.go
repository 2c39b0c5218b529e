// Package cache implements the projection cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

const keyPrefix = "projection:"

// projectionCache implements adapter.ProjectionCache on a Redis client.
type projectionCache struct {
	client *redis.Client
}

// NewProjectionCache creates a new Redis-backed projection cache.
func NewProjectionCache(client *redis.Client) adapter.ProjectionCache {
	return &projectionCache{
		client: client,
	}
}

// Get returns the cached summaries for the key, with false when absent.
func (c *projectionCache) Get(ctx context.Context, key string) ([]entity.MonthSummary, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read projection cache: %w", err)
	}

	var docs []monthSummaryDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		// A corrupt value is treated as a miss; the caller recomputes
		// and overwrites it.
		return nil, false, nil
	}

	summaries := make([]entity.MonthSummary, len(docs))
	for i, doc := range docs {
		summaries[i] = doc.toEntity()
	}
	return summaries, true, nil
}

// Set stores the summaries under the key with the given expiry.
func (c *projectionCache) Set(ctx context.Context, key string, summaries []entity.MonthSummary, ttl time.Duration) error {
	docs := make([]monthSummaryDoc, len(summaries))
	for i := range summaries {
		docs[i] = monthSummaryDocFromEntity(&summaries[i])
	}

	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to encode projection: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write projection cache: %w", err)
	}
	return nil
}

// monthSummaryDoc is the wire form of a MonthSummary. The entity keeps its
// item payloads unexported, so caching goes through these flat documents.
type monthSummaryDoc struct {
	MonthKey           string          `json:"month_key"`
	DisplayName        string          `json:"display_name"`
	Items              []monthItemDoc  `json:"items"`
	ExpectedBalance    decimal.Decimal `json:"expected_balance"`
	ActualBalance      decimal.Decimal `json:"actual_balance"`
	CumulativeExpected decimal.Decimal `json:"cumulative_expected"`
	CumulativeActual   decimal.Decimal `json:"cumulative_actual"`
}

type monthItemDoc struct {
	Kind           string       `json:"kind"`
	MonthKey       string       `json:"month_key"`
	WouldCauseDebt bool         `json:"would_cause_debt"`
	Category       categoryDoc  `json:"category"`
	Plan           planDoc      `json:"plan"`
	Entry          *entryDoc    `json:"entry,omitempty"`
}

type categoryDoc struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type planDoc struct {
	ID             uuid.UUID       `json:"id"`
	CategoryID     uuid.UUID       `json:"category_id"`
	Name           string          `json:"name"`
	ExpectedAmount decimal.Decimal `json:"expected_amount"`
	Frequency      string          `json:"frequency"`
	StartMonth     string          `json:"start_month"`
	EndMonth       *string         `json:"end_month,omitempty"`
	Status         string          `json:"status"`
	DayOfMonth     *int            `json:"day_of_month,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type entryDoc struct {
	ID        uuid.UUID       `json:"id"`
	PlanID    uuid.UUID       `json:"plan_id"`
	MonthKey  string          `json:"month_key"`
	Amount    decimal.Decimal `json:"amount"`
	Date      *time.Time      `json:"date,omitempty"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func monthSummaryDocFromEntity(s *entity.MonthSummary) monthSummaryDoc {
	items := make([]monthItemDoc, len(s.Items))
	for i := range s.Items {
		items[i] = monthItemDocFromEntity(&s.Items[i])
	}
	return monthSummaryDoc{
		MonthKey:           s.MonthKey,
		DisplayName:        s.DisplayName,
		Items:              items,
		ExpectedBalance:    s.ExpectedBalance,
		ActualBalance:      s.ActualBalance,
		CumulativeExpected: s.CumulativeExpected,
		CumulativeActual:   s.CumulativeActual,
	}
}

func monthItemDocFromEntity(item *entity.MonthItem) monthItemDoc {
	doc := monthItemDoc{
		Kind:           string(item.Kind()),
		MonthKey:       item.MonthKey(),
		WouldCauseDebt: item.WouldCauseDebt,
		Category:       categoryDocFromEntity(item.Category()),
		Plan:           planDocFromEntity(item.Plan()),
	}
	if entry, ok := item.Entry(); ok {
		ed := entryDocFromEntity(entry)
		doc.Entry = &ed
	}
	return doc
}

func (d *monthSummaryDoc) toEntity() entity.MonthSummary {
	items := make([]entity.MonthItem, len(d.Items))
	for i := range d.Items {
		items[i] = d.Items[i].toEntity()
	}
	return entity.MonthSummary{
		MonthKey:           d.MonthKey,
		DisplayName:        d.DisplayName,
		Items:              items,
		ExpectedBalance:    d.ExpectedBalance,
		ActualBalance:      d.ActualBalance,
		CumulativeExpected: d.CumulativeExpected,
		CumulativeActual:   d.CumulativeActual,
	}
}

func (d *monthItemDoc) toEntity() entity.MonthItem {
	category := d.Category.toEntity()
	plan := d.Plan.toEntity()

	var item entity.MonthItem
	if d.Entry != nil {
		item = entity.NewRealizedItem(d.MonthKey, d.Entry.toEntity(), plan, category)
	} else {
		item = entity.NewExpectedItem(d.MonthKey, plan, category)
	}
	item.WouldCauseDebt = d.WouldCauseDebt
	return item
}

func categoryDocFromEntity(c *entity.Category) categoryDoc {
	return categoryDoc{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		Color:     c.Color,
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (d *categoryDoc) toEntity() *entity.Category {
	return &entity.Category{
		ID:        d.ID,
		Name:      d.Name,
		Type:      entity.CategoryType(d.Type),
		Color:     d.Color,
		Icon:      d.Icon,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func planDocFromEntity(p *entity.Plan) planDoc {
	return planDoc{
		ID:             p.ID,
		CategoryID:     p.CategoryID,
		Name:           p.Name,
		ExpectedAmount: p.ExpectedAmount,
		Frequency:      string(p.Frequency),
		StartMonth:     p.StartMonth,
		EndMonth:       p.EndMonth,
		Status:         string(p.Status),
		DayOfMonth:     p.DayOfMonth,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (d *planDoc) toEntity() *entity.Plan {
	return &entity.Plan{
		ID:             d.ID,
		CategoryID:     d.CategoryID,
		Name:           d.Name,
		ExpectedAmount: d.ExpectedAmount,
		Frequency:      entity.PlanFrequency(d.Frequency),
		StartMonth:     d.StartMonth,
		EndMonth:       d.EndMonth,
		Status:         entity.PlanStatus(d.Status),
		DayOfMonth:     d.DayOfMonth,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func entryDocFromEntity(e *entity.Entry) entryDoc {
	return entryDoc{
		ID:        e.ID,
		PlanID:    e.PlanID,
		MonthKey:  e.MonthKey,
		Amount:    e.Amount,
		Date:      e.Date,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (d *entryDoc) toEntity() *entity.Entry {
	return &entity.Entry{
		ID:        d.ID,
		PlanID:    d.PlanID,
		MonthKey:  d.MonthKey,
		Amount:    d.Amount,
		Date:      d.Date,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
