package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest producto capturado por consola (ya validado).
type ProductRequest struct {
	Code  int
	Name  string
	Value decimal.Decimal
}

// RegisterCustomerRequest datos para registrar un cliente con sus productos.
type RegisterCustomerRequest struct {
	Name       string
	Address    string
	DocumentID string
	BirthDate  time.Time
	Products   []ProductRequest
}

// UpdateCustomerRequest campos a reemplazar; nil = sin cambio.
type UpdateCustomerRequest struct {
	Name       *string
	Address    *string
	DocumentID *string
	BirthDate  *time.Time
}

// LineItemRequest línea de venta: producto + cantidad.
type LineItemRequest struct {
	Product  ProductRequest
	Quantity int
}

// ProductResponse producto en vistas.
type ProductResponse struct {
	Code  int             `json:"code"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// CustomerResponse cliente en vistas, con su índice actual en la venta.
type CustomerResponse struct {
	Index             int               `json:"index"`
	Name              string            `json:"name"`
	Address           string            `json:"address"`
	DocumentID        string            `json:"document_id"`
	BirthDate         time.Time         `json:"birth_date"`
	Products          []ProductResponse `json:"products"`
	TotalProductValue decimal.Decimal   `json:"total_product_value"`
}

// LineItemResponse línea de venta en vistas.
type LineItemResponse struct {
	Index     int             `json:"index"`
	Product   ProductResponse `json:"product"`
	UnitValue decimal.Decimal `json:"unit_value"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// SaleSummaryResponse resumen de la sesión. Total (líneas de venta) y
// TotalCustomerProductValue (productos de clientes) son cifras independientes.
type SaleSummaryResponse struct {
	SessionID                 string          `json:"session_id"`
	Number                    int             `json:"number"`
	CreatedAt                 time.Time       `json:"created_at"`
	CustomerCount             int             `json:"customer_count"`
	LineItemCount             int             `json:"line_item_count"`
	Total                     decimal.Decimal `json:"total"`
	TotalCustomerProductValue decimal.Decimal `json:"total_customer_product_value"`
}
