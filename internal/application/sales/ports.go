package sales

import (
	"context"

	"github.com/jhoicas/venta-consola/internal/application/dto"
)

// SummaryPDFGenerator genera el reporte PDF de la venta (implementado en infrastructure/pdf).
type SummaryPDFGenerator interface {
	GenerateSaleSummaryPDF(
		ctx context.Context,
		summary dto.SaleSummaryResponse,
		customers []dto.CustomerResponse,
		items []dto.LineItemResponse,
	) ([]byte, error)
}
