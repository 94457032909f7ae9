package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "restaurante-api", cfg.App.Name)
	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, time.Local, cfg.App.Location)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.5", cfg.Costing.UnitCostEstimate.String())
	assert.Equal(t, "15", cfg.Costing.FallbackHourlyRate.String())
	assert.Equal(t, "5", cfg.Costing.StorageCostPerUnitMonth.String())
	assert.Equal(t, 30, cfg.Costing.DaysPerMonth)
	assert.Equal(t, "0 23 * * *", cfg.Scheduler.DailySummaryCron)
}

func TestLoad_CostingDesdeEntorno(t *testing.T) {
	t.Setenv("COSTING_UNIT_COST_ESTIMATE", "0.75")
	t.Setenv("COSTING_FALLBACK_HOURLY_RATE", "18.5")
	t.Setenv("COSTING_DAYS_PER_MONTH", "31")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.75", cfg.Costing.UnitCostEstimate.String())
	assert.Equal(t, "18.5", cfg.Costing.FallbackHourlyRate.String())
	assert.Equal(t, 31, cfg.Costing.DaysPerMonth)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_CostingInvalido(t *testing.T) {
	t.Setenv("COSTING_STORAGE_COST_PER_UNIT_MONTH", "-1")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ZonaHoraria(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "America/Bogota")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "America/Bogota", cfg.App.Location.String())

	t.Setenv("APP_TIMEZONE", "Marte/Olympus")
	_, err = config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "restaurante", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/restaurante?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://otra"
	assert.Equal(t, "postgres://otra", db.ConnectionString())
}
