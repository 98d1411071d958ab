package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "wms", cfg.Database.DBName)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadRequiresJWTSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "super-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
}

func TestDSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "wms",
		Password: "pw",
		DBName:   "warehouse",
		SSLMode:  "require",
	}.DSN()
	assert.Equal(t, "host=db.internal port=5433 user=wms password=pw dbname=warehouse sslmode=require", dsn)
}
