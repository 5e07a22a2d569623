package config_test

import (
	"testing"
	"time"

	"github.com/quartzsoft/tempus-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_NAME", "tempus_test")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("RATE_LIMIT_REQUESTS", "50")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "tempus_test", cfg.Database.Name)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiryHours)
	assert.Equal(t, 50, cfg.RateLimit.Requests)
}

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		Name:     "tempus",
		User:     "app",
		Password: "secret",
		SSLMode:  "require",
		Timezone: "UTC",
	}

	dsn := cfg.DSN()

	assert.Equal(t,
		"host=db.internal user=app password=secret dbname=tempus port=5432 sslmode=require TimeZone=UTC",
		dsn,
	)
}
