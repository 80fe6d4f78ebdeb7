package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("JWT_SECRET", "unit-test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DatabaseHost)
	assert.Equal(t, "5432", cfg.DatabasePort)
	assert.Equal(t, "esport_platform", cfg.DatabaseName)
	assert.Equal(t, "unit-test-secret", cfg.JWTSecret)
	assert.Equal(t, 30, cfg.AccessTokenMinutes)
	assert.Equal(t, ":8080", cfg.ServerAddr)
}

func TestLoad_MissingSecret(t *testing.T) {
	viper.Reset()
	// An empty signing secret must refuse startup, not silently produce
	// forgeable tokens.
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_PORT", "5433")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DatabaseHost)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL())
}

func TestConfig_DatabaseDSN(t *testing.T) {
	cfg := &Config{
		DatabaseHost:     "db.internal",
		DatabasePort:     "5433",
		DatabaseName:     "esport",
		DatabaseUser:     "svc",
		DatabasePassword: "hunter2",
		DatabaseSSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=hunter2 dbname=esport sslmode=require",
		cfg.DatabaseDSN())
}
