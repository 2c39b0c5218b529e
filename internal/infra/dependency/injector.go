// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cashflow-tracker/backend/config"
	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/application/usecase/category"
	"github.com/cashflow-tracker/backend/internal/application/usecase/entry"
	"github.com/cashflow-tracker/backend/internal/application/usecase/plan"
	"github.com/cashflow-tracker/backend/internal/application/usecase/projection"
	"github.com/cashflow-tracker/backend/internal/application/usecase/setting"
	"github.com/cashflow-tracker/backend/internal/infra/db"
	"github.com/cashflow-tracker/backend/internal/infra/server/router"
	"github.com/cashflow-tracker/backend/internal/integration/cache"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/cashflow-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	CategoryRepo adapter.CategoryRepository
	SettingRepo  adapter.SettingRepository
}

// NewInjector creates a new dependency injector with all dependencies
// wired. The Redis client may be nil, which disables the projection cache.
func NewInjector(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(gormDB)
	planRepo := persistence.NewPlanRepository(gormDB)
	entryRepo := persistence.NewEntryRepository(gormDB)
	settingRepo := persistence.NewSettingRepository(gormDB)

	var projectionCache adapter.ProjectionCache
	var cacheHealthChecker func() bool
	if redisClient != nil {
		projectionCache = cache.NewProjectionCache(redisClient)
		cacheHealthChecker = db.RedisHealthCheck(redisClient)
	}

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, planRepo)

	// Create plan use cases
	listPlansUseCase := plan.NewListPlansUseCase(planRepo)
	getPlanUseCase := plan.NewGetPlanUseCase(planRepo)
	createPlanUseCase := plan.NewCreatePlanUseCase(planRepo, categoryRepo)
	updatePlanUseCase := plan.NewUpdatePlanUseCase(planRepo, categoryRepo)
	deletePlanUseCase := plan.NewDeletePlanUseCase(planRepo)

	// Create entry use cases
	listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo)
	getEntryUseCase := entry.NewGetEntryUseCase(entryRepo)
	recordEntryUseCase := entry.NewRecordEntryUseCase(entryRepo, planRepo)
	updateEntryUseCase := entry.NewUpdateEntryUseCase(entryRepo)
	moveEntryUseCase := entry.NewMoveEntryUseCase(entryRepo)
	deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo, planRepo)

	// Create setting use cases
	listSettingsUseCase := setting.NewListSettingsUseCase(settingRepo)
	getSettingUseCase := setting.NewGetSettingUseCase(settingRepo)
	updateSettingUseCase := setting.NewUpdateSettingUseCase(settingRepo)

	// Create projection use cases
	getProjectionUseCase := projection.NewGetProjectionUseCase(
		categoryRepo,
		planRepo,
		entryRepo,
		settingRepo,
		projectionCache,
		cfg.Projection.CacheTTL,
	)
	earliestAffordableUseCase := projection.NewEarliestAffordableUseCase(getProjectionUseCase)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	planController := controller.NewPlanController(
		listPlansUseCase,
		getPlanUseCase,
		createPlanUseCase,
		updatePlanUseCase,
		deletePlanUseCase,
	)

	entryController := controller.NewEntryController(
		listEntriesUseCase,
		getEntryUseCase,
		recordEntryUseCase,
		updateEntryUseCase,
		moveEntryUseCase,
		deleteEntryUseCase,
	)

	settingController := controller.NewSettingController(
		listSettingsUseCase,
		getSettingUseCase,
		updateSettingUseCase,
	)

	projectionController := controller.NewProjectionController(
		getProjectionUseCase,
		earliestAffordableUseCase,
	)

	// Use higher rate limits in test environments to prevent flaky tests
	var rateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		rateLimiter = middleware.NewRateLimiterWithConfig(10000, 1*time.Minute)
	} else {
		rateLimiter = middleware.NewRateLimiter()
	}

	r := router.NewRouter(
		healthController,
		categoryController,
		planController,
		entryController,
		settingController,
		projectionController,
		rateLimiter,
	)

	return &Injector{
		Config:       cfg,
		DB:           gormDB,
		Router:       r,
		CategoryRepo: categoryRepo,
		SettingRepo:  settingRepo,
	}
}
