// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	categoryController   *controller.CategoryController
	planController       *controller.PlanController
	entryController      *controller.EntryController
	settingController    *controller.SettingController
	projectionController *controller.ProjectionController
	rateLimiter          *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	planController *controller.PlanController,
	entryController *controller.EntryController,
	settingController *controller.SettingController,
	projectionController *controller.ProjectionController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:     healthController,
		categoryController:   categoryController,
		planController:       planController,
		entryController:      entryController,
		settingController:    settingController,
		projectionController: projectionController,
		rateLimiter:          rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	{
		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.planController != nil {
			plans := v1.Group("/plans")
			{
				plans.GET("", r.planController.List)
				plans.POST("", r.planController.Create)
				plans.GET("/:id", r.planController.Get)
				plans.PATCH("/:id", r.planController.Update)
				plans.DELETE("/:id", r.planController.Delete)
			}
		}

		if r.entryController != nil {
			entries := v1.Group("/entries")
			{
				entries.GET("", r.entryController.List)
				entries.POST("", r.entryController.Create)
				entries.GET("/:id", r.entryController.Get)
				entries.PATCH("/:id", r.entryController.Update)
				entries.PATCH("/:id/move", r.entryController.Move)
				entries.DELETE("/:id", r.entryController.Delete)
			}
		}

		if r.settingController != nil {
			settings := v1.Group("/settings")
			{
				settings.GET("", r.settingController.List)
				settings.GET("/:key", r.settingController.Get)
				settings.PUT("/:key", r.settingController.Update)
			}
		}

		if r.projectionController != nil {
			projection := v1.Group("/projection")
			{
				projection.GET("", r.projectionController.Get)
				projection.GET("/affordable", r.projectionController.Affordable)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
