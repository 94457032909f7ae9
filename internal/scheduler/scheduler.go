// Package scheduler ejecuta tareas programadas (resumen diario de cierre).
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/format"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// ReportBuilder fuente del reporte consolidado (AnalyticsUseCase).
type ReportBuilder interface {
	BuildReport(ctx context.Context) (*analytics.Report, error)
}

// Scheduler administra el cron de la aplicación.
type Scheduler struct {
	cron    *cron.Cron
	reports ReportBuilder
	printer *format.Printer
	cfg     config.SchedulerConfig
	log     *logger.Logger
}

// New crea el scheduler; no programa nada hasta Start.
func New(cfg config.SchedulerConfig, reports ReportBuilder, printer *format.Printer, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	if printer == nil {
		printer = format.New("en")
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		reports: reports,
		printer: printer,
		cfg:     cfg,
		log:     log.Component("scheduler"),
	}
}

// Start programa el resumen diario (formato cron de 5 campos, hora del restaurante) y arranca el cron.
// Con DailySummaryCron vacío no programa nada.
func (s *Scheduler) Start() error {
	if s.cfg.DailySummaryCron == "" {
		s.log.Info().Msg("scheduler: resumen diario desactivado")
		return nil
	}
	if _, err := s.cron.AddFunc(s.cfg.DailySummaryCron, s.runDailySummary); err != nil {
		return fmt.Errorf("scheduler: programar resumen diario %q: %w", s.cfg.DailySummaryCron, err)
	}
	s.cron.Start()
	s.log.Info().Str("spec", s.cfg.DailySummaryCron).Msg("scheduler iniciado")
	return nil
}

// Stop detiene el cron y espera a que terminen los trabajos en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler detenido")
}

func (s *Scheduler) runDailySummary() {
	timeout := time.Duration(s.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.DailySummary(ctx); err != nil {
		s.log.Error().Err(err).Msg("resumen diario fallido")
	}
}

// DailySummary calcula el reporte consolidado y lo registra en el log.
func (s *Scheduler) DailySummary(ctx context.Context) error {
	report, err := s.reports.BuildReport(ctx)
	if err != nil {
		return fmt.Errorf("scheduler: construir reporte: %w", err)
	}
	st := report.Stats
	ev := s.log.Info().
		Str("date", report.GeneratedAt.Format("2006-01-02")).
		Str("revenue", s.printer.Money(st.TotalRevenue)).
		Str("total_expenses", s.printer.Money(st.TotalExpenses)).
		Str("net_profit", s.printer.Money(st.NetProfit)).
		Str("profit_margin", s.printer.Percent(st.ProfitMargin)).
		Str("sales", s.printer.Int(st.NumberOfSales))
	if len(st.TopProducts) > 0 {
		ev = ev.Str("top_product", st.TopProducts[0].ProductName)
	}
	ev.Msg("resumen diario")
	return nil
}
