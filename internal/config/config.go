/**
 * @description
 * This package handles the configuration management for the service. It uses the
 * Viper library to read configuration from environment variables, providing a
 * centralized and straightforward way to manage application settings.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */

package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the remittance-service.
// These values are loaded from environment variables.
type Config struct {
	ServerPort              string  `mapstructure:"SERVER_PORT"`
	DatabaseURL             string  `mapstructure:"DATABASE_URL"`
	RedisURL                string  `mapstructure:"REDIS_URL"`
	RedisRateLimitPrefix    string  `mapstructure:"REDIS_RATE_LIMIT_PREFIX"`
	RabbitMQURL             string  `mapstructure:"RABBITMQ_URL"`
	RateAPIBaseURL          string  `mapstructure:"RATE_API_BASE_URL"`
	StorageServiceURL       string  `mapstructure:"STORAGE_SERVICE_URL"`
	StorageServiceKey       string  `mapstructure:"STORAGE_SERVICE_KEY"`
	PDFServiceURL           string  `mapstructure:"PDF_SERVICE_URL"`
	JWTSecret               string  `mapstructure:"JWT_SECRET"`
	RateLockTTLSeconds      int     `mapstructure:"RATE_LOCK_TTL_SECONDS"`
	BankFeeINR              float64 `mapstructure:"BANK_FEE_INR"`
	QuoteRateLimitPerMinute int     `mapstructure:"QUOTE_RATE_LIMIT_PER_MINUTE"`
}

// LoadConfig reads configuration from environment variables from the given path.
// It uses Viper to automatically bind environment variables to the Config struct.
func LoadConfig(path string) (config Config, err error) {
	// Tell viper the path to look for the optional .env file.
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	// Enable automatic binding of environment variables.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_API_BASE_URL", "https://open.er-api.com/v6")
	viper.SetDefault("REDIS_RATE_LIMIT_PREFIX", "remit:rate_limit")
	viper.SetDefault("RATE_LOCK_TTL_SECONDS", 900)
	viper.SetDefault("BANK_FEE_INR", 1500.0)
	viper.SetDefault("QUOTE_RATE_LIMIT_PER_MINUTE", 60)

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("REDIS_URL", "REDIS_URL", "REMITTANCE_REDIS_URL")
	_ = viper.BindEnv("REDIS_RATE_LIMIT_PREFIX")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("RATE_API_BASE_URL")
	_ = viper.BindEnv("STORAGE_SERVICE_URL")
	_ = viper.BindEnv("STORAGE_SERVICE_KEY")
	_ = viper.BindEnv("PDF_SERVICE_URL")
	_ = viper.BindEnv("JWT_SECRET")
	_ = viper.BindEnv("RATE_LOCK_TTL_SECONDS")
	_ = viper.BindEnv("BANK_FEE_INR")
	_ = viper.BindEnv("QUOTE_RATE_LIMIT_PER_MINUTE")

	// Attempt to read the config file. It's okay if it doesn't exist.
	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
	}

	// Unmarshal the configuration into the Config struct.
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	// Platform runtimes commonly inject PORT instead of SERVER_PORT.
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}
	config.RedisURL = strings.TrimSpace(config.RedisURL)
	config.RedisRateLimitPrefix = strings.TrimSpace(config.RedisRateLimitPrefix)
	if config.RedisRateLimitPrefix == "" {
		config.RedisRateLimitPrefix = "remit:rate_limit"
	}

	if config.RateLockTTLSeconds <= 0 {
		log.Printf("level=warn component=config msg=\"non-positive rate lock ttl configured; using default\" ttl_seconds=%d", config.RateLockTTLSeconds)
		config.RateLockTTLSeconds = 900
	}
	if config.BankFeeINR < 0 {
		log.Printf("level=warn component=config msg=\"negative bank fee configured; coercing to zero\" bank_fee_inr=%f", config.BankFeeINR)
		config.BankFeeINR = 0
	}
	if config.QuoteRateLimitPerMinute <= 0 {
		config.QuoteRateLimitPerMinute = 60
	}

	return
}
