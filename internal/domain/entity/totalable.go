package entity

import "github.com/shopspring/decimal"

// Totalable es cualquier elemento capaz de reportar un total monetario.
// Implementado por SaleLineItem y *Sale; Total no tiene efectos secundarios ni falla.
type Totalable interface {
	Total() decimal.Decimal
}

// SumTotals suma los totales de elementos heterogéneos en el orden recibido.
func SumTotals(items ...Totalable) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total())
	}
	return sum
}

var (
	_ Totalable = SaleLineItem{}
	_ Totalable = (*Sale)(nil)
)
