package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StoreDriverDynamoDB, cfg.Store.Driver)
	assert.Equal(t, "AppointmentsTable", cfg.DynamoDB.Table)
	assert.Equal(t, "appointment:", cfg.Redis.KeyPrefix)
	assert.False(t, cfg.Appointment.ValidateState)
	assert.False(t, cfg.Appointment.RequireExisting)
	assert.False(t, cfg.Appointment.IDSuffix)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("APPOINTMENT_VALIDATE_STATE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverRedis, cfg.Store.Driver)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.Appointment.ValidateState)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	content := "DYNAMODB_TABLE=Bookings\nAPP_PORT=9090\nAPPOINTMENT_ID_SUFFIX=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Bookings", cfg.DynamoDB.Table)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.Appointment.IDSuffix)
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("STORE_DRIVER", "cassandra")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrUnknownStoreDriver)
}
