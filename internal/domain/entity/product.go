package entity

import "github.com/shopspring/decimal"

// Product representa un producto comprado (código, nombre y valor unitario).
// Code es un identificador opaco; no se exige unicidad.
// Es un valor inmutable: se copia al asignarlo a un cliente o a un ítem de venta.
type Product struct {
	Code  int
	Name  string
	Value decimal.Decimal // valor unitario (≥0 esperado, no se valida)
}

// NewProduct construye un Product.
func NewProduct(code int, name string, value decimal.Decimal) Product {
	return Product{Code: code, Name: name, Value: value}
}
