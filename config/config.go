package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisRoutingCacheDB  int    `mapstructure:"REDIS_ROUTING_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Routing provider (OSRM-compatible) configuration.
	RoutingBaseURL        string  `mapstructure:"ROUTING_BASE_URL"`
	RoutingTimeoutSeconds int     `mapstructure:"ROUTING_TIMEOUT_SECONDS"`
	RoutingFallbackKmh    float64 `mapstructure:"ROUTING_FALLBACK_KMH"`

	// Availability engine tuning.
	SlotGranularityMin  int `mapstructure:"SLOT_GRANULARITY_MIN"`
	TravelBufferMin     int `mapstructure:"TRAVEL_BUFFER_MIN"`
	RoutingWorkerLimit  int `mapstructure:"ROUTING_WORKER_LIMIT"`
	ReminderLeadMinutes int `mapstructure:"REMINDER_LEAD_MINUTES"`
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
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_ROUTING_CACHE_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("ROUTING_BASE_URL", "https://router.project-osrm.org")
	viper.SetDefault("ROUTING_TIMEOUT_SECONDS", 4)
	viper.SetDefault("ROUTING_FALLBACK_KMH", 40.0)
	viper.SetDefault("SLOT_GRANULARITY_MIN", 15)
	viper.SetDefault("TRAVEL_BUFFER_MIN", 10)
	viper.SetDefault("ROUTING_WORKER_LIMIT", 4)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)

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
