package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, Validate(cfg))
	assert.Equal(t, "goalcast", cfg.App.Name)
	assert.Equal(t, "file", cfg.Archive.Driver)
	assert.Equal(t, 10.0, cfg.Backtest.StakePerBet)
}

func TestDefaultModelConfigCalibration(t *testing.T) {
	m := DefaultModelConfig()

	assert.Equal(t, -0.11, m.Rho)
	assert.Equal(t, 0.30, m.HomeAdvantageBase)
	assert.Equal(t, []float64{5, 4, 3, 2, 1}, m.FormWeights)
	assert.Equal(t, 8, m.MaxGoals)
	assert.Equal(t, 6, m.ScorelineMaxGoals)
	assert.Equal(t, 0.70, m.OverUnderModelWeight)
	assert.InDelta(t, 1.0, m.BTSPoissonWeight+m.BTSHistoricalWeight+m.BTSLeagueWeight, 1e-9)
	assert.Equal(t, 40.0, m.ValueMinConfidence)
	assert.Equal(t, 5.0, m.ValueMaxOdds)
	assert.Equal(t, 25.0, m.KellyCapPct)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad environment", func(c *Config) { c.App.Environment = "invalid" }},
		{"bad log level", func(c *Config) { c.App.LogLevel = "loud" }},
		{"positive rho", func(c *Config) { c.Model.Rho = 0.1 }},
		{"inverted home advantage range", func(c *Config) {
			c.Model.HomeAdvantageMin = 0.5
			c.Model.HomeAdvantageMax = 0.4
			c.Model.HomeAdvantageBase = 0.45
		}},
		{"base outside range", func(c *Config) { c.Model.HomeAdvantageBase = 0.50 }},
		{"bts weights off", func(c *Config) { c.Model.BTSPoissonWeight = 0.8 }},
		{"scoreline exceeds truncation", func(c *Config) { c.Model.ScorelineMaxGoals = 9 }},
		{"file driver without dir", func(c *Config) { c.Archive.Dir = "" }},
		{"postgres driver without database", func(c *Config) { c.Archive.Driver = "postgres" }},
		{"unknown driver", func(c *Config) { c.Archive.Driver = "s3" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestValidatePostgresDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Archive.Driver = "postgres"
	cfg.Database = DatabaseConfig{
		Host: "localhost", Port: 5432, Name: "goalcast",
		User: "goalcast", SSLMode: "disable", MaxConnections: 5,
	}

	assert.NoError(t, Validate(cfg))
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("GOALCAST_TEST_DIR", "archive_from_env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
app:
  name: goalcast
  environment: production
  log_level: warn
archive:
  driver: file
  dir: ${GOALCAST_TEST_DIR}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "archive_from_env", cfg.Archive.Dir)
	// Untouched sections keep their defaults
	assert.Equal(t, -0.11, cfg.Model.Rho)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "goalcast", cfg.App.Name)

	cfg, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Environment)
}
