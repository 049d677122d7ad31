package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "bakeplan.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "bakeplan"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "bakeplan"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Catalog defaults
	if cfg.Catalog.SheetsPath == "" {
		cfg.Catalog.SheetsPath = "catalogs/sheets.json"
	}
	if cfg.Catalog.ActivitiesPath == "" {
		cfg.Catalog.ActivitiesPath = "catalogs/activities.json"
	}
	if cfg.Catalog.EquipmentPath == "" {
		cfg.Catalog.EquipmentPath = "catalogs/equipment.json"
	}
	if cfg.Catalog.StaffPath == "" {
		cfg.Catalog.StaffPath = "catalogs/staff.json"
	}

	// Scheduler defaults
	if cfg.Scheduler.Step == 0 {
		cfg.Scheduler.Step = time.Minute
	}
	if cfg.Scheduler.OrderLogDir == "" {
		cfg.Scheduler.OrderLogDir = "logs/orders"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
