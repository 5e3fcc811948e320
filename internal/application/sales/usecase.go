package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/venta-consola/internal/application/dto"
	"github.com/jhoicas/venta-consola/internal/domain"
	"github.com/jhoicas/venta-consola/internal/domain/entity"
	"github.com/jhoicas/venta-consola/pkg/logger"
)

// SaleUseCase casos de uso sobre la única venta de la sesión.
// No es seguro para uso concurrente: la consola ejecuta un comando a la vez.
type SaleUseCase struct {
	sale      *entity.Sale
	sessionID string
	generator SummaryPDFGenerator
	log       *logger.Logger
}

// NewSaleUseCase construye el caso de uso sobre sale. generator puede ser nil
// (la exportación a PDF queda deshabilitada).
func NewSaleUseCase(sale *entity.Sale, generator SummaryPDFGenerator, log *logger.Logger) *SaleUseCase {
	if log == nil {
		log = logger.Nop()
	}
	sessionID := uuid.New().String()
	return &SaleUseCase{
		sale:      sale,
		sessionID: sessionID,
		generator: generator,
		log: log.WithFields(map[string]interface{}{
			"session_id":  sessionID,
			"sale_number": sale.Number,
		}),
	}
}

// SessionID identificador de la sesión (correlación de logs y reportes).
func (uc *SaleUseCase) SessionID() string { return uc.sessionID }

// RegisterCustomer crea el cliente con sus productos y lo agrega al final de la venta.
func (uc *SaleUseCase) RegisterCustomer(in dto.RegisterCustomerRequest) (*dto.CustomerResponse, error) {
	customer := entity.NewCustomer(in.Name, in.Address, in.DocumentID, in.BirthDate)
	for _, p := range in.Products {
		customer.AddProduct(toProduct(p))
	}
	uc.sale.AddCustomer(customer)

	index := uc.sale.CustomerCount() - 1
	uc.log.Info().
		Int("index", index).
		Int("products", customer.ProductCount()).
		Msg("cliente registrado")

	resp := toCustomerResponse(index, customer)
	return &resp, nil
}

// ListCustomers devuelve los clientes en orden con su índice actual.
func (uc *SaleUseCase) ListCustomers() []dto.CustomerResponse {
	customers := uc.sale.Customers()
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i, c := range customers {
		out = append(out, toCustomerResponse(i, c))
	}
	return out
}

// GetCustomer devuelve el cliente en index. domain.ErrIndexOutOfRange si no existe.
func (uc *SaleUseCase) GetCustomer(index int) (*dto.CustomerResponse, error) {
	c, err := uc.customerAt(index)
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(index, c)
	return &resp, nil
}

// UpdateCustomer reemplaza los campos no nil del cliente en index.
func (uc *SaleUseCase) UpdateCustomer(index int, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.customerAt(index)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.UpdateName(*in.Name)
	}
	if in.Address != nil {
		c.UpdateAddress(*in.Address)
	}
	if in.DocumentID != nil {
		c.UpdateDocumentID(*in.DocumentID)
	}
	if in.BirthDate != nil {
		c.UpdateBirthDate(*in.BirthDate)
	}
	uc.log.Info().Int("index", index).Msg("cliente actualizado")

	resp := toCustomerResponse(index, c)
	return &resp, nil
}

// AddProductToCustomer agrega un producto al cliente en index.
func (uc *SaleUseCase) AddProductToCustomer(index int, in dto.ProductRequest) (*dto.CustomerResponse, error) {
	c, err := uc.customerAt(index)
	if err != nil {
		return nil, err
	}
	c.AddProduct(toProduct(in))
	uc.log.Info().
		Int("index", index).
		Int("code", in.Code).
		Str("value", in.Value.String()).
		Msg("producto agregado al cliente")

	resp := toCustomerResponse(index, c)
	return &resp, nil
}

// RemoveCustomer elimina el cliente en index; los siguientes bajan una posición.
func (uc *SaleUseCase) RemoveCustomer(index int) error {
	if err := uc.sale.RemoveCustomer(index); err != nil {
		uc.logInvalidIndex(index, err)
		return err
	}
	uc.log.Info().
		Int("index", index).
		Int("remaining", uc.sale.CustomerCount()).
		Msg("cliente removido")
	return nil
}

// RecordLineItem registra una línea de venta. El valor unitario se captura del producto.
func (uc *SaleUseCase) RecordLineItem(in dto.LineItemRequest) (*dto.LineItemResponse, error) {
	item := entity.NewSaleLineItem(toProduct(in.Product), in.Quantity)
	uc.sale.AddLineItem(item)

	index := uc.sale.LineItemCount() - 1
	uc.log.Info().
		Int("index", index).
		Int("code", in.Product.Code).
		Int("quantity", in.Quantity).
		Str("total", item.Total().String()).
		Msg("ítem de venta registrado")

	resp := toLineItemResponse(index, item)
	return &resp, nil
}

// ListLineItems devuelve las líneas de venta en orden.
func (uc *SaleUseCase) ListLineItems() []dto.LineItemResponse {
	items := uc.sale.LineItems()
	out := make([]dto.LineItemResponse, 0, len(items))
	for i, it := range items {
		out = append(out, toLineItemResponse(i, it))
	}
	return out
}

// Summary resume la venta. Los dos totales se reportan por separado y no se concilian.
func (uc *SaleUseCase) Summary() dto.SaleSummaryResponse {
	return dto.SaleSummaryResponse{
		SessionID:                 uc.sessionID,
		Number:                    uc.sale.Number,
		CreatedAt:                 uc.sale.CreatedAt,
		CustomerCount:             uc.sale.CustomerCount(),
		LineItemCount:             uc.sale.LineItemCount(),
		Total:                     entity.SumTotals(uc.sale),
		TotalCustomerProductValue: uc.sale.TotalCustomerProductValue(),
	}
}

// ExportSummaryPDF genera el reporte PDF de la venta y el nombre de archivo sugerido.
func (uc *SaleUseCase) ExportSummaryPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("%w: exportación PDF no configurada", domain.ErrUnavailable)
	}
	summary := uc.Summary()
	pdfBytes, err = uc.generator.GenerateSaleSummaryPDF(ctx, summary, uc.ListCustomers(), uc.ListLineItems())
	if err != nil {
		uc.log.Error().Err(err).Msg("generación de reporte fallida")
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("venta_%d.pdf", summary.Number)
	uc.log.Info().
		Str("filename", filename).
		Int("bytes", len(pdfBytes)).
		Msg("reporte exportado")
	return pdfBytes, filename, nil
}

func (uc *SaleUseCase) customerAt(index int) (*entity.Customer, error) {
	c, err := uc.sale.CustomerAt(index)
	if err != nil {
		uc.logInvalidIndex(index, err)
		return nil, err
	}
	return c, nil
}

func (uc *SaleUseCase) logInvalidIndex(index int, err error) {
	if errors.Is(err, domain.ErrIndexOutOfRange) {
		uc.log.Warn().
			Int("index", index).
			Int("customers", uc.sale.CustomerCount()).
			Msg("índice inválido")
	}
}

func toProduct(p dto.ProductRequest) entity.Product {
	return entity.NewProduct(p.Code, p.Name, p.Value)
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{Code: p.Code, Name: p.Name, Value: p.Value}
}

func toCustomerResponse(index int, c *entity.Customer) dto.CustomerResponse {
	products := c.Products()
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return dto.CustomerResponse{
		Index:             index,
		Name:              c.Name,
		Address:           c.Address,
		DocumentID:        c.DocumentID,
		BirthDate:         c.BirthDate,
		Products:          out,
		TotalProductValue: c.TotalProductValue(),
	}
}

func toLineItemResponse(index int, it entity.SaleLineItem) dto.LineItemResponse {
	return dto.LineItemResponse{
		Index:     index,
		Product:   toProductResponse(it.Product()),
		UnitValue: it.UnitValue(),
		Quantity:  it.Quantity(),
		Total:     it.Total(),
	}
}
