package entity

import "github.com/shopspring/decimal"

// SaleLineItem línea de venta: un producto vendido a un valor unitario capturado
// y una cantidad. El valor se copia del producto al construir la línea y no
// sigue cambios posteriores del producto.
type SaleLineItem struct {
	product   Product
	unitValue decimal.Decimal
	quantity  int
}

// NewSaleLineItem construye la línea capturando product.Value como valor unitario.
// La cantidad no se valida (puede ser cero o negativa).
func NewSaleLineItem(product Product, quantity int) SaleLineItem {
	return SaleLineItem{
		product:   product,
		unitValue: product.Value,
		quantity:  quantity,
	}
}

// Product producto vendido.
func (i SaleLineItem) Product() Product { return i.product }

// UnitValue valor unitario capturado al construir la línea.
func (i SaleLineItem) UnitValue() decimal.Decimal { return i.unitValue }

// Quantity cantidad vendida.
func (i SaleLineItem) Quantity() int { return i.quantity }

// Total = valor unitario capturado × cantidad.
func (i SaleLineItem) Total() decimal.Decimal {
	return i.unitValue.Mul(decimal.NewFromInt(int64(i.quantity)))
}
