package cli

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/bakeplan-go/internal/adapters/catalog"
	"github.com/andrescamacho/bakeplan-go/internal/adapters/logging"
	"github.com/andrescamacho/bakeplan-go/internal/adapters/persistence"
	"github.com/andrescamacho/bakeplan-go/internal/application/scheduler"
	"github.com/andrescamacho/bakeplan-go/internal/infrastructure/config"
	"github.com/andrescamacho/bakeplan-go/internal/infrastructure/database"
)

// Container wires the whole application from configuration: catalogs,
// allocators, staff, persistence and the audit sink. Commands build it once
// and pull what they need.
type Container struct {
	Config    *config.Config
	Recipes   *catalog.RecipeStore
	Resources *scheduler.ResourceCatalog
	Registry  *scheduler.Registry
	Staff     *scheduler.StaffManager
	Allocator *scheduler.ActivityAllocator
	OrderLog  scheduler.OrderLogSink
	Comandas  scheduler.ComandaSink
	Stock     *persistence.GormStockRepository
	Records   *persistence.GormAllocationRecordRepository
	DB        *gorm.DB
}

// NewContainer loads config and assembles the application
func NewContainer() (*Container, error) {
	cfg := config.LoadConfigOrDefault(configPath)
	if verbose {
		cfg.Logging.Level = "debug"
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	recipes, err := catalog.LoadRecipeStore(cfg.Catalog.SheetsPath, cfg.Catalog.ActivitiesPath)
	if err != nil {
		return nil, fmt.Errorf("loading recipe catalogs: %w", err)
	}
	resources, err := catalog.LoadEquipment(cfg.Catalog.EquipmentPath)
	if err != nil {
		return nil, fmt.Errorf("loading equipment catalog: %w", err)
	}
	roster, err := catalog.LoadStaff(cfg.Catalog.StaffPath)
	if err != nil {
		return nil, fmt.Errorf("loading staff catalog: %w", err)
	}

	c := &Container{
		Config:    cfg,
		Recipes:   recipes,
		Resources: resources,
		Registry:  resources.BuildRegistry(cfg.Scheduler.Step),
		Staff:     scheduler.NewStaffManager(roster),
	}

	fileLog, err := logging.NewFileOrderLog(cfg.Scheduler.OrderLogDir)
	if err != nil {
		return nil, err
	}
	c.OrderLog = fileLog

	if cfg.Scheduler.PersistArtifacts {
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("migrating database: %w", err)
		}
		c.DB = db
		c.Comandas = persistence.NewGormComandaRepository(db)
		c.Stock = persistence.NewGormStockRepository(db)
		c.Records = persistence.NewGormAllocationRecordRepository(db)
		c.OrderLog = scheduler.MultiLog{fileLog, c.Records}
	}

	c.Allocator = scheduler.NewActivityAllocator(c.Registry, c.Staff, c.OrderLog, cfg.Scheduler.Step)
	return c, nil
}

// RequireDB builds a database-backed container even when artifact persistence
// is disabled, for commands that only touch the database
func (c *Container) RequireDB() error {
	if c.DB != nil {
		return nil
	}
	db, err := database.NewConnection(&c.Config.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	c.DB = db
	c.Comandas = persistence.NewGormComandaRepository(db)
	c.Stock = persistence.NewGormStockRepository(db)
	c.Records = persistence.NewGormAllocationRecordRepository(db)
	return nil
}

// OrderDeps returns the collaborator bundle a production order needs
func (c *Container) OrderDeps() scheduler.OrderDeps {
	deps := scheduler.OrderDeps{
		Sheets:      c.Recipes,
		Activities:  c.Recipes,
		Professions: c.Recipes,
		Allocator:   c.Allocator,
		Registry:    c.Registry,
		Staff:       c.Staff,
		AuditLog:    c.OrderLog,
	}
	if c.Stock != nil {
		deps.Stock = c.Stock
	}
	if c.Comandas != nil {
		deps.Comandas = c.Comandas
	}
	return deps
}

// Close releases the container's resources
func (c *Container) Close() {
	if c.DB != nil {
		_ = database.Close(c.DB)
	}
}
