package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inventory-backend/internal/shared/middleware"
	"inventory-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.AllowedOrigins),
	)

	if c.Config.RateLimit.Enabled && c.Cache != nil {
		router.Use(middleware.RateLimit(c.Cache, c.Config.RateLimit.Limit, c.Config.RateLimit.Window))
	}
	if c.Config.Auth.Enabled {
		router.Use(middleware.Auth(c.Config.Auth.PublicKey()))
	}

	v1 := router.Group("/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupCatalogueCategoryRoutes(v1, c)
		setupCatalogueItemRoutes(v1, c)
		setupItemRoutes(v1, c)
		setupSystemRoutes(v1, c)
		setupUnitRoutes(v1, c)
		setupUsageStatusRoutes(v1, c)
		setupManufacturerRoutes(v1, c)
	}

	return router
}

func setupCatalogueCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/catalogue-categories")
	{
		categories.POST("", c.CatalogueCategoryHandler.Create)
		categories.GET("", c.CatalogueCategoryHandler.List)
		categories.GET("/:id", c.CatalogueCategoryHandler.GetByID)
		categories.GET("/:id/breadcrumbs", c.CatalogueCategoryHandler.Breadcrumbs)
		categories.PATCH("/:id", c.CatalogueCategoryHandler.Update)
		categories.DELETE("/:id", c.CatalogueCategoryHandler.Delete)

		categories.POST("/:id/properties", c.PropertyHandler.Create)
		categories.PATCH("/:id/properties/:propertyID", c.PropertyHandler.Update)
	}
}

func setupCatalogueItemRoutes(v1 *gin.RouterGroup, c *container.Container) {
	items := v1.Group("/catalogue-items")
	{
		items.POST("", c.CatalogueItemHandler.Create)
		items.GET("", c.CatalogueItemHandler.List)
		items.GET("/:id", c.CatalogueItemHandler.GetByID)
		items.PATCH("/:id", c.CatalogueItemHandler.Update)
		items.DELETE("/:id", c.CatalogueItemHandler.Delete)
	}
}

func setupItemRoutes(v1 *gin.RouterGroup, c *container.Container) {
	items := v1.Group("/items")
	{
		items.POST("", c.ItemHandler.Create)
		items.GET("", c.ItemHandler.List)
		items.GET("/:id", c.ItemHandler.GetByID)
		items.PATCH("/:id", c.ItemHandler.Update)
		items.DELETE("/:id", c.ItemHandler.Delete)
	}
}

func setupSystemRoutes(v1 *gin.RouterGroup, c *container.Container) {
	systems := v1.Group("/systems")
	{
		systems.POST("", c.SystemHandler.Create)
		systems.GET("", c.SystemHandler.List)
		systems.GET("/:id", c.SystemHandler.GetByID)
		systems.GET("/:id/breadcrumbs", c.SystemHandler.Breadcrumbs)
		systems.PATCH("/:id", c.SystemHandler.Update)
		systems.DELETE("/:id", c.SystemHandler.Delete)
	}
}

func setupUnitRoutes(v1 *gin.RouterGroup, c *container.Container) {
	units := v1.Group("/units")
	{
		units.POST("", c.UnitHandler.Create)
		units.GET("", c.UnitHandler.List)
		units.GET("/:id", c.UnitHandler.GetByID)
		units.DELETE("/:id", c.UnitHandler.Delete)
	}
}

func setupUsageStatusRoutes(v1 *gin.RouterGroup, c *container.Container) {
	statuses := v1.Group("/usage-statuses")
	{
		statuses.POST("", c.UsageStatusHandler.Create)
		statuses.GET("", c.UsageStatusHandler.List)
		statuses.GET("/:id", c.UsageStatusHandler.GetByID)
		statuses.DELETE("/:id", c.UsageStatusHandler.Delete)
	}
}

func setupManufacturerRoutes(v1 *gin.RouterGroup, c *container.Container) {
	manufacturers := v1.Group("/manufacturers")
	{
		manufacturers.POST("", c.ManufacturerHandler.Create)
		manufacturers.GET("", c.ManufacturerHandler.List)
		manufacturers.GET("/:id", c.ManufacturerHandler.GetByID)
		manufacturers.PATCH("/:id", c.ManufacturerHandler.Update)
		manufacturers.DELETE("/:id", c.ManufacturerHandler.Delete)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		statusCode := http.StatusOK
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		})
	}
}
