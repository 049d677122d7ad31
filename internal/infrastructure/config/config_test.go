package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakeplan-go/internal/infrastructure/config"
)

func TestSetDefaults(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "bakeplan.db", cfg.Database.Path)
	assert.Equal(t, time.Minute, cfg.Scheduler.Step)
	assert.Equal(t, "logs/orders", cfg.Scheduler.OrderLogDir)
	assert.Equal(t, "catalogs/sheets.json", cfg.Catalog.SheetsPath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	assert.NoError(t, config.ValidateConfig(cfg))
}

func TestValidateConfig_RejectsBadValues(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Database.Type = "oracle"

	require.Error(t, config.ValidateConfig(cfg))

	cfg = &config.Config{}
	config.SetDefaults(cfg)
	cfg.Logging.Level = "loud"
	require.Error(t, config.ValidateConfig(cfg))
}

func TestLoadConfigOrDefault_FallsBackOnMissingFile(t *testing.T) {
	cfg := config.LoadConfigOrDefault("/nonexistent/config.yaml")

	require.NotNil(t, cfg)
	assert.Equal(t, "sqlite", cfg.Database.Type)
}
