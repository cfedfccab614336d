package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration. Values come from a
// .env file, environment variables, or the defaults below. Handlers and
// clients receive this struct explicitly; nothing reads the environment
// at request time.
type Config struct {
	AppPort  int    `mapstructure:"APP_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Identity provider used to verify bearer tokens.
	SupabaseURL        string `mapstructure:"SUPABASE_URL"`
	SupabaseServiceKey string `mapstructure:"SUPABASE_SERVICE_KEY"`

	// Upstream planning API. When URL and key are both empty the local
	// mock planner is used instead.
	PlanningAPIURL     string        `mapstructure:"PLANNING_API_URL"`
	PlanningAPIKey     string        `mapstructure:"PLANNING_API_KEY"`
	PlanningAPIVersion string        `mapstructure:"PLANNING_API_VERSION"`
	PlanningTimeout    time.Duration `mapstructure:"PLANNING_TIMEOUT"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_SERVICE_KEY", "")
	viper.SetDefault("PLANNING_API_URL", "")
	viper.SetDefault("PLANNING_API_KEY", "")
	viper.SetDefault("PLANNING_API_VERSION", "v1")
	viper.SetDefault("PLANNING_TIMEOUT", "30s")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
