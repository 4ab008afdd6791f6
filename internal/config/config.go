// Package config provides configuration management for the goalcast engine.
package config

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Model    ModelConfig    `mapstructure:"model" validate:"required"`
	Archive  ArchiveConfig  `mapstructure:"archive" validate:"required"`
	Backtest BacktestConfig `mapstructure:"backtest" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ModelConfig represents the hand-calibrated model coefficients.
// The defaults were calibrated against historical data in the originating
// model; they are configuration, not values to tune at runtime.
type ModelConfig struct {
	// Dixon-Coles low-score correlation coefficient
	Rho float64 `mapstructure:"rho" validate:"lt=0,gt=-1"`

	// Home advantage applied to the home side's expected goals
	HomeAdvantageBase float64 `mapstructure:"home_advantage_base" validate:"gt=0"`
	HomeAdvantageMin  float64 `mapstructure:"home_advantage_min" validate:"gt=0"`
	HomeAdvantageMax  float64 `mapstructure:"home_advantage_max" validate:"gt=0"`

	// Recency weights for the last five results, most recent first
	FormWeights []float64 `mapstructure:"form_weights" validate:"required,min=1"`

	// Joint distribution truncation and exact-score listing
	MaxGoals          int `mapstructure:"max_goals" validate:"required,gte=4,lte=12"`
	ScorelineMaxGoals int `mapstructure:"scoreline_max_goals" validate:"required,gte=3,lte=10"`
	TopScorelines     int `mapstructure:"top_scorelines" validate:"required,gt=0"`

	// Over/under regularization: model share of the 70/30 blend with the
	// league baseline
	OverUnderModelWeight float64 `mapstructure:"over_under_model_weight" validate:"gte=0,lte=1"`

	// Both-teams-score estimator blend weights (must sum to 1)
	BTSPoissonWeight    float64 `mapstructure:"bts_poisson_weight" validate:"gte=0,lte=1"`
	BTSHistoricalWeight float64 `mapstructure:"bts_historical_weight" validate:"gte=0,lte=1"`
	BTSLeagueWeight     float64 `mapstructure:"bts_league_weight" validate:"gte=0,lte=1"`

	// Value bet gates
	ValueMinConfidence  float64 `mapstructure:"value_min_confidence" validate:"gte=0,lte=100"`
	ValueMaxOdds        float64 `mapstructure:"value_max_odds" validate:"gt=1"`
	ValueMinProbability float64 `mapstructure:"value_min_probability" validate:"gte=0,lte=1"`
	KellyCapPct         float64 `mapstructure:"kelly_cap_pct" validate:"gt=0,lte=100"`
}

// ArchiveConfig represents prediction archive configuration
type ArchiveConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=file postgres"`
	Dir    string `mapstructure:"dir"`
}

// BacktestConfig represents backtest staking configuration
type BacktestConfig struct {
	StakePerBet float64 `mapstructure:"stake_per_bet" validate:"gt=0"`
	UseKelly    bool    `mapstructure:"use_kelly"`
}

// DatabaseConfig represents database connection configuration for the
// postgres archive driver
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
}

// DefaultModelConfig returns the calibrated model defaults
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Rho:                  -0.11,
		HomeAdvantageBase:    0.30,
		HomeAdvantageMin:     0.15,
		HomeAdvantageMax:     0.45,
		FormWeights:          []float64{5, 4, 3, 2, 1},
		MaxGoals:             8,
		ScorelineMaxGoals:    6,
		TopScorelines:        10,
		OverUnderModelWeight: 0.70,
		BTSPoissonWeight:     0.50,
		BTSHistoricalWeight:  0.30,
		BTSLeagueWeight:      0.20,
		ValueMinConfidence:   40,
		ValueMaxOdds:         5.0,
		ValueMinProbability:  0.25,
		KellyCapPct:          25,
	}
}

// DefaultConfig returns a complete configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "goalcast",
			Environment: "development",
			LogLevel:    "info",
		},
		Model: DefaultModelConfig(),
		Archive: ArchiveConfig{
			Driver: "file",
			Dir:    "backtesting_archive",
		},
		Backtest: BacktestConfig{
			StakePerBet: 10,
			UseKelly:    false,
		},
	}
}
