package config

// CatalogConfig locates the JSON catalog files the scheduler loads at startup
type CatalogConfig struct {
	// Technical sheet catalog (bill of materials)
	SheetsPath string `mapstructure:"sheets_path" validate:"required"`

	// Activity spec catalog
	ActivitiesPath string `mapstructure:"activities_path" validate:"required"`

	// Physical equipment inventory
	EquipmentPath string `mapstructure:"equipment_path" validate:"required"`

	// Staff roster
	StaffPath string `mapstructure:"staff_path" validate:"required"`
}
