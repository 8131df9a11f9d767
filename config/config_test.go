package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE", "AUTH_DELAY_MS", "TOKEN_TTL_MINUTES", "REDIS_ADDR", "AMQP_URL"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "8083", cfg.Port)
	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, time.Duration(0), cfg.AuthDelay)
	assert.Equal(t, 3*24*time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.AMQPURL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE", "postgres")
	t.Setenv("AUTH_DELAY_MS", "1000")
	t.Setenv("TOKEN_TTL_MINUTES", "not-a-number")

	cfg := FromEnv()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres", cfg.Store)
	assert.Equal(t, time.Second, cfg.AuthDelay)
	assert.Equal(t, 3*24*time.Hour, cfg.TokenTTL)
}

func TestGetDBConfigByEnv(t *testing.T) {
	t.Setenv("QC_DB_HOST", "db.internal")
	t.Setenv("QC_DB_USER", "stay")
	t.Setenv("QC_DB_PASSWORD", "secret")
	t.Setenv("QC_DB_NAME", "stayrooted")
	t.Setenv("QC_DB_PORT", "5432")

	dsn, err := getDBConfigByEnv("qc")
	assert.NoError(t, err)
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "sslmode=require")

	_, err = getDBConfigByEnv("staging")
	assert.Error(t, err)
}
