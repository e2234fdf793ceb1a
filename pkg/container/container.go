package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"inventory-backend/internal/config"
	"inventory-backend/internal/domains/cataloguecategory"
	cataloguecategoryhandler "inventory-backend/internal/domains/cataloguecategory/handler"
	cataloguecategoryrepo "inventory-backend/internal/domains/cataloguecategory/repository"
	cataloguecategorysvc "inventory-backend/internal/domains/cataloguecategory/service"
	"inventory-backend/internal/domains/catalogueitem"
	catalogueitemhandler "inventory-backend/internal/domains/catalogueitem/handler"
	catalogueitemrepo "inventory-backend/internal/domains/catalogueitem/repository"
	catalogueitemsvc "inventory-backend/internal/domains/catalogueitem/service"
	"inventory-backend/internal/domains/item"
	itemhandler "inventory-backend/internal/domains/item/handler"
	itemrepo "inventory-backend/internal/domains/item/repository"
	itemsvc "inventory-backend/internal/domains/item/service"
	"inventory-backend/internal/domains/manufacturer"
	manufacturerhandler "inventory-backend/internal/domains/manufacturer/handler"
	manufacturerrepo "inventory-backend/internal/domains/manufacturer/repository"
	manufacturersvc "inventory-backend/internal/domains/manufacturer/service"
	"inventory-backend/internal/domains/system"
	systemhandler "inventory-backend/internal/domains/system/handler"
	systemrepo "inventory-backend/internal/domains/system/repository"
	systemsvc "inventory-backend/internal/domains/system/service"
	"inventory-backend/internal/domains/unit"
	unithandler "inventory-backend/internal/domains/unit/handler"
	unitrepo "inventory-backend/internal/domains/unit/repository"
	unitsvc "inventory-backend/internal/domains/unit/service"
	"inventory-backend/internal/domains/usagestatus"
	usagestatushandler "inventory-backend/internal/domains/usagestatus/handler"
	usagestatusrepo "inventory-backend/internal/domains/usagestatus/repository"
	usagestatussvc "inventory-backend/internal/domains/usagestatus/service"
	"inventory-backend/internal/infrastructure/cache"
	"inventory-backend/internal/infrastructure/database"
)

// Container wires infrastructure, repositories, services and handlers.
// Construction fails fast: a missing database means no server.
type Container struct {
	Config *config.Config
	DB     *database.MongoDB
	Cache  *cache.RedisClient

	CatalogueCategoryRepo cataloguecategory.Repository
	CatalogueItemRepo     catalogueitem.Repository
	ItemRepo              item.Repository
	SystemRepo            system.Repository
	UnitRepo              unit.Repository
	UsageStatusRepo       usagestatus.Repository
	ManufacturerRepo      manufacturer.Repository

	CatalogueCategoryService cataloguecategory.Service
	PropertyService          cataloguecategory.PropertyService
	CatalogueItemService     catalogueitem.Service
	ItemService              item.Service
	SystemService            system.Service
	UnitService              unit.Service
	UsageStatusService       usagestatus.Service
	ManufacturerService      manufacturer.Service

	CatalogueCategoryHandler *cataloguecategoryhandler.CatalogueCategoryHandler
	PropertyHandler          *cataloguecategoryhandler.PropertyHandler
	CatalogueItemHandler     *catalogueitemhandler.CatalogueItemHandler
	ItemHandler              *itemhandler.ItemHandler
	SystemHandler            *systemhandler.SystemHandler
	UnitHandler              *unithandler.UnitHandler
	UsageStatusHandler       *usagestatushandler.UsageStatusHandler
	ManufacturerHandler      *manufacturerhandler.ManufacturerHandler
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	c := &Container{Config: cfg}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c.DB = database.NewMongoDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis only backs the rate limiter; without it the limiter fails
	// open, so a missing Redis is not fatal.
	if cfg.RateLimit.Enabled {
		c.Cache = cache.NewRedisClient(&cfg.Redis)
		if err := c.Cache.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, rate limiting disabled")
			c.Cache = nil
		}
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	c.CatalogueCategoryRepo = cataloguecategoryrepo.NewMongoRepository(c.DB)
	c.CatalogueItemRepo = catalogueitemrepo.NewMongoRepository(c.DB)
	c.ItemRepo = itemrepo.NewMongoRepository(c.DB)
	c.SystemRepo = systemrepo.NewMongoRepository(c.DB)
	c.UnitRepo = unitrepo.NewMongoRepository(c.DB)
	c.UsageStatusRepo = usagestatusrepo.NewMongoRepository(c.DB)
	c.ManufacturerRepo = manufacturerrepo.NewMongoRepository(c.DB)
}

func (c *Container) initServices() {
	c.CatalogueCategoryService = cataloguecategorysvc.NewService(c.CatalogueCategoryRepo, c.UnitRepo)
	c.PropertyService = cataloguecategorysvc.NewPropertyService(
		c.DB.Client,
		c.CatalogueCategoryRepo,
		c.CatalogueItemRepo,
		c.ItemRepo,
		c.UnitRepo,
	)
	c.CatalogueItemService = catalogueitemsvc.NewService(c.CatalogueItemRepo, c.CatalogueCategoryRepo, c.ManufacturerRepo)
	c.ItemService = itemsvc.NewService(c.ItemRepo, c.CatalogueItemRepo, c.CatalogueCategoryRepo, c.SystemRepo, c.UsageStatusRepo)
	c.SystemService = systemsvc.NewService(c.SystemRepo)
	c.UnitService = unitsvc.NewService(c.UnitRepo)
	c.UsageStatusService = usagestatussvc.NewService(c.UsageStatusRepo)
	c.ManufacturerService = manufacturersvc.NewService(c.ManufacturerRepo)
}

func (c *Container) initHandlers() {
	c.CatalogueCategoryHandler = cataloguecategoryhandler.NewCatalogueCategoryHandler(c.CatalogueCategoryService)
	c.PropertyHandler = cataloguecategoryhandler.NewPropertyHandler(c.PropertyService)
	c.CatalogueItemHandler = catalogueitemhandler.NewCatalogueItemHandler(c.CatalogueItemService)
	c.ItemHandler = itemhandler.NewItemHandler(c.ItemService)
	c.SystemHandler = systemhandler.NewSystemHandler(c.SystemService)
	c.UnitHandler = unithandler.NewUnitHandler(c.UnitService)
	c.UsageStatusHandler = usagestatushandler.NewUsageStatusHandler(c.UsageStatusService)
	c.ManufacturerHandler = manufacturerhandler.NewManufacturerHandler(c.ManufacturerService)
}

// Cleanup releases infrastructure connections in reverse order of
// acquisition.
func (c *Container) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis connection")
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to close MongoDB connection")
		}
	}
}
