package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/domain/costing"
	"github.com/jhoicas/Restaurante-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Restaurante-api/pkg/format"
)

func TestGenerateDashboardPDF(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator("La Esquina", format.New("es"))
	report := &analytics.Report{
		GeneratedAt: time.Date(2024, time.March, 15, 22, 0, 0, 0, time.UTC),
		Stats: costing.DashboardStats{
			TotalRevenue:  decimal.NewFromInt(20),
			TotalExpenses: decimal.NewFromInt(130),
			NetProfit:     decimal.NewFromInt(-110),
			NumberOfSales: 1,
			TopProducts: []costing.ProductAnalysis{
				{ProductName: "Hamburguesa", UnitsSold: 2, Revenue: decimal.NewFromInt(20), Margin: decimal.NewFromInt(-10)},
			},
		},
		Employees: []costing.EmployeeSales{{EmployeeName: "Ana", NumberOfSales: 1, TotalRevenue: decimal.NewFromInt(20)}},
	}

	out, err := gen.GenerateDashboardPDF(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateDashboardPDF_SinReporte(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator("La Esquina", format.New("es"))

	_, err := gen.GenerateDashboardPDF(context.Background(), nil)
	assert.Error(t, err)
}
