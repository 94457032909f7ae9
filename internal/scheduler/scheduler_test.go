package scheduler_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/domain/costing"
	"github.com/jhoicas/Restaurante-api/internal/scheduler"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/format"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

type fakeReports struct {
	report *analytics.Report
	err    error
}

func (f fakeReports) BuildReport(context.Context) (*analytics.Report, error) {
	return f.report, f.err
}

func TestDailySummary_RegistraIndicadores(t *testing.T) {
	var buf bytes.Buffer
	rep := &analytics.Report{
		GeneratedAt: time.Date(2024, time.March, 15, 23, 0, 0, 0, time.UTC),
		Stats: costing.DashboardStats{
			TotalRevenue:  decimal.NewFromInt(1250),
			TotalExpenses: decimal.NewFromInt(400),
			NetProfit:     decimal.NewFromInt(850),
			ProfitMargin:  decimal.NewFromInt(68),
			NumberOfSales: 42,
			TopProducts:   []costing.ProductAnalysis{{ProductName: "Hamburguesa"}},
		},
	}
	s := scheduler.New(config.SchedulerConfig{}, fakeReports{report: rep}, format.New("en"), logger.NewWithWriter(&buf, "info"))

	require.NoError(t, s.DailySummary(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "resumen diario")
	assert.Contains(t, out, "2024-03-15")
	assert.Contains(t, out, "$1,250.00")
	assert.Contains(t, out, "68.00%")
	assert.Contains(t, out, "Hamburguesa")
}

func TestDailySummary_PropagaError(t *testing.T) {
	boom := errors.New("db caída")
	s := scheduler.New(config.SchedulerConfig{}, fakeReports{err: boom}, nil, nil)

	err := s.DailySummary(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestStart_ExpresionCron(t *testing.T) {
	s := scheduler.New(config.SchedulerConfig{DailySummaryCron: "no es cron"}, fakeReports{}, nil, nil)
	assert.Error(t, s.Start())

	s = scheduler.New(config.SchedulerConfig{}, fakeReports{}, nil, nil)
	assert.NoError(t, s.Start(), "sin expresión el resumen queda desactivado")

	s = scheduler.New(config.SchedulerConfig{DailySummaryCron: "0 23 * * *"}, fakeReports{}, nil, nil)
	require.NoError(t, s.Start())
	s.Stop()
}
