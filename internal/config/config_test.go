package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LEDGER_ACCOUNT_PREFIX", "")
	t.Setenv("LEDGER_ACCOUNT_OFFSET", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "CORP00", cfg.Ledger.AccountPrefix)
	assert.Equal(t, int64(10000), cfg.Ledger.AccountOffset)
	assert.Equal(t, 1, cfg.Database.MaxConnections)
	assert.True(t, cfg.Database.MigrationsEnabled)
	assert.True(t, cfg.Database.SeedEnabled)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("LEDGER_ACCOUNT_PREFIX", "TEST")
	t.Setenv("LEDGER_ACCOUNT_OFFSET", "500")
	t.Setenv("SEED_DATABASE", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "TEST", cfg.Ledger.AccountPrefix)
	assert.Equal(t, int64(500), cfg.Ledger.AccountOffset)
	assert.False(t, cfg.Database.SeedEnabled)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNECTIONS", "many")
	t.Setenv("AUTO_MIGRATE", "sometimes")
	t.Setenv("SERVER_WRITE_TIMEOUT", "forever")

	cfg := Load()

	assert.Equal(t, 1, cfg.Database.MaxConnections)
	assert.True(t, cfg.Database.MigrationsEnabled)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Name: "ledger_test"}
	assert.Equal(t, "file:ledger_test?mode=memory&cache=shared&_foreign_keys=1", cfg.DSN())
}

func TestServerConfig_Address(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: "8080"}
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
}
