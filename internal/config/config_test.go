package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	unsetEnvWithCleanup(t, "SERVER_PORT")
	unsetEnvWithCleanup(t, "PORT")
	unsetEnvWithCleanup(t, "RATE_LOCK_TTL_SECONDS")
	unsetEnvWithCleanup(t, "BANK_FEE_INR")
	unsetEnvWithCleanup(t, "QUOTE_RATE_LIMIT_PER_MINUTE")
	unsetEnvWithCleanup(t, "REDIS_RATE_LIMIT_PREFIX")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("expected default ServerPort 8080, got %q", cfg.ServerPort)
	}
	if cfg.RateLockTTLSeconds != 900 {
		t.Errorf("expected default RateLockTTLSeconds 900, got %d", cfg.RateLockTTLSeconds)
	}
	if cfg.BankFeeINR != 1500.0 {
		t.Errorf("expected default BankFeeINR 1500, got %f", cfg.BankFeeINR)
	}
	if cfg.QuoteRateLimitPerMinute != 60 {
		t.Errorf("expected default QuoteRateLimitPerMinute 60, got %d", cfg.QuoteRateLimitPerMinute)
	}
	if cfg.RedisRateLimitPrefix != "remit:rate_limit" {
		t.Errorf("expected default rate limit prefix, got %q", cfg.RedisRateLimitPrefix)
	}
}

func TestLoadConfig_PortOverridesServerPort(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	setEnvWithCleanup(t, "SERVER_PORT", "8081")
	setEnvWithCleanup(t, "PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ServerPort != "9090" {
		t.Fatalf("expected PORT to override SERVER_PORT, got %q", cfg.ServerPort)
	}
}

func TestLoadConfig_CoercesInvalidFinancialSettings(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	setEnvWithCleanup(t, "BANK_FEE_INR", "-250")
	setEnvWithCleanup(t, "RATE_LOCK_TTL_SECONDS", "0")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.BankFeeINR != 0 {
		t.Errorf("expected negative bank fee coerced to 0, got %f", cfg.BankFeeINR)
	}
	if cfg.RateLockTTLSeconds != 900 {
		t.Errorf("expected non-positive lock ttl replaced with default, got %d", cfg.RateLockTTLSeconds)
	}
}

func setEnvWithCleanup(t *testing.T, key string, value string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}

func unsetEnvWithCleanup(t *testing.T, key string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}
