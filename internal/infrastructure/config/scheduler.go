package config

import "time"

// SchedulerConfig tunes the backward-allocation engine
type SchedulerConfig struct {
	// Step between placement attempts during the backward search
	Step time.Duration `mapstructure:"step" validate:"required,min=1s"`

	// Directory for the per-order plaintext audit logs
	OrderLogDir string `mapstructure:"order_log_dir" validate:"required"`

	// Persist comandas and allocation records to the database
	PersistArtifacts bool `mapstructure:"persist_artifacts"`
}
