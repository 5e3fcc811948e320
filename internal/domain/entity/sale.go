package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/venta-consola/internal/domain"
	"github.com/shopspring/decimal"
)

// Sale representa la sesión de venta en memoria: clientes y líneas de venta.
// Las dos colecciones son independientes; Total y TotalCustomerProductValue
// no tienen por qué coincidir.
type Sale struct {
	Number    int
	CreatedAt time.Time // fijado en la construcción, nunca se actualiza
	customers []*Customer
	items     []SaleLineItem
}

// NewSale crea la venta capturando la fecha y hora actual.
func NewSale(number int) *Sale {
	return NewSaleAt(number, time.Now())
}

// NewSaleAt crea la venta con una fecha de creación explícita.
func NewSaleAt(number int, createdAt time.Time) *Sale {
	return &Sale{
		Number:    number,
		CreatedAt: createdAt,
		customers: make([]*Customer, 0),
		items:     make([]SaleLineItem, 0),
	}
}

// AddLineItem agrega la línea al final. Se permiten duplicados.
func (s *Sale) AddLineItem(item SaleLineItem) {
	s.items = append(s.items, item)
}

// AddCustomer agrega el cliente al final. Se permiten duplicados.
func (s *Sale) AddCustomer(c *Customer) {
	s.customers = append(s.customers, c)
}

// CustomerAt devuelve el cliente en la posición index (base cero) para consulta o
// modificación. Retorna domain.ErrIndexOutOfRange si index no está en [0, len).
func (s *Sale) CustomerAt(index int) (*Customer, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return s.customers[index], nil
}

// RemoveCustomer elimina el cliente en index y compacta la lista.
// Con un índice inválido la lista queda intacta y se retorna domain.ErrIndexOutOfRange.
func (s *Sale) RemoveCustomer(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	copy(s.customers[index:], s.customers[index+1:])
	s.customers[len(s.customers)-1] = nil
	s.customers = s.customers[:len(s.customers)-1]
	return nil
}

// Customers devuelve una copia de la lista de clientes (mismos punteros, en orden).
func (s *Sale) Customers() []*Customer {
	out := make([]*Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// LineItems devuelve una copia de las líneas de venta en orden.
func (s *Sale) LineItems() []SaleLineItem {
	out := make([]SaleLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// CustomerCount cantidad de clientes.
func (s *Sale) CustomerCount() int { return len(s.customers) }

// LineItemCount cantidad de líneas de venta.
func (s *Sale) LineItemCount() int { return len(s.items) }

// TotalCustomerProductValue suma, en orden, el valor de productos de cada cliente.
func (s *Sale) TotalCustomerProductValue() decimal.Decimal {
	total := decimal.Zero
	for _, c := range s.customers {
		total = total.Add(c.TotalProductValue())
	}
	return total
}

// Total suma los totales de todas las líneas de venta.
func (s *Sale) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Total())
	}
	return total
}

func (s *Sale) checkIndex(index int) error {
	if index < 0 || index >= len(s.customers) {
		return fmt.Errorf("%w: %d (clientes: %d)", domain.ErrIndexOutOfRange, index, len(s.customers))
	}
	return nil
}
