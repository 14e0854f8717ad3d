package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilightsim/imperium-go/internal/infrastructure/config"
)

func TestSetDefaults(t *testing.T) {
	cfg := &config.Config{}

	config.SetDefaults(cfg)

	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "imperium.db", cfg.Database.Path)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 9464, cfg.Metrics.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, float64(50), cfg.Bench.Rate)
	assert.Equal(t, 10, cfg.Bench.Burst)
	assert.Equal(t, 500, cfg.Bench.Operations)
	assert.Equal(t, 4, cfg.Bench.Workers)
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Type = "postgres"
	cfg.Database.Port = 6543
	cfg.Bench.Workers = 8

	config.SetDefaults(cfg)

	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 8, cfg.Bench.Workers)
}

func TestValidateConfig_Defaults(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	require.NoError(t, config.ValidateConfig(cfg))
}

func TestValidateConfig_BadDatabaseType(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Database.Type = "oracle"

	err := config.ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Type")
}

func TestValidateConfig_BadPort(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Database.Port = 700000

	assert.Error(t, config.ValidateConfig(cfg))
}

func TestLoadConfigOrDefault_MissingFileFallsBack(t *testing.T) {
	cfg := config.LoadConfigOrDefault("/nonexistent/imperium.yaml")

	require.NotNil(t, cfg)
	assert.Equal(t, "sqlite", cfg.Database.Type)
}
