package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	// Base URL of the CareXpert backend the client talks to.
	APIBaseURL string `mapstructure:"API_BASE_URL"`

	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Per-request timeout for the API client, in seconds.
	HTTPTimeoutSecs int `mapstructure:"HTTP_TIMEOUT_SECS"`

	// Quiescence window for the doctor search debouncer, in milliseconds.
	DebounceMillis int `mapstructure:"DEBOUNCE_MILLIS"`

	// Mock API server (development harness) settings.
	MockPort          string `mapstructure:"MOCK_PORT"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("HTTP_TIMEOUT_SECS", 10)
	viper.SetDefault("DEBOUNCE_MILLIS", 400)
	viper.SetDefault("MOCK_PORT", "8080")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
