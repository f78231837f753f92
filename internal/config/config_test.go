package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
}

func TestLoad_PoolSizeDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, int32(5), cfg.Database.MinConns)
}

func TestLoad_PoolSizeFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "40")
	t.Setenv("DB_MIN_CONNS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(40), cfg.Database.MaxConns)
	assert.Equal(t, int32(10), cfg.Database.MinConns)
}

func TestLoad_InvalidPoolSize(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}
