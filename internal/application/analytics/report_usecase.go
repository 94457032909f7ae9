package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/costing"
)

// Report datos consolidados para el reporte PDF y el resumen de cierre del día.
type Report struct {
	GeneratedAt time.Time
	Stats       costing.DashboardStats
	Employees   []costing.EmployeeSales
	Expenses    []costing.ExpenseCategory
}

// BuildReport calcula dashboard, ventas por empleado y gastos por categoría sobre un único snapshot.
func (uc *AnalyticsUseCase) BuildReport(ctx context.Context) (*Report, error) {
	snap, err := uc.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &Report{
		GeneratedAt: uc.now().In(uc.loc),
		Stats:       uc.calc.Dashboard(snap),
		Employees:   costing.SalesByEmployee(snap.Sales, snap.Employees),
		Expenses:    costing.ExpensesByCategory(snap.Expenses),
	}, nil
}

// ReportUseCase genera el PDF del dashboard.
type ReportUseCase struct {
	analytics *AnalyticsUseCase
	generator DashboardPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando el generador PDF.
func NewReportUseCase(analytics *AnalyticsUseCase, generator DashboardPDFGenerator) *ReportUseCase {
	return &ReportUseCase{analytics: analytics, generator: generator}
}

// DownloadDashboardPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) DownloadDashboardPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	report, err := uc.analytics.BuildReport(ctx)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateDashboardPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	filename = fmt.Sprintf("dashboard_%s.pdf", report.GeneratedAt.Format("20060102"))
	return pdfBytes, filename, nil
}
