package analytics

import "context"

// DashboardPDFGenerator puerto para la representación PDF del reporte (implementado en infraestructura).
type DashboardPDFGenerator interface {
	GenerateDashboardPDF(ctx context.Context, report *Report) ([]byte, error)
}
