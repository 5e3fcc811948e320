package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/venta-consola/internal/domain"
	"github.com/jhoicas/venta-consola/internal/domain/entity"
)

func TestNewSale_CapturaFecha(t *testing.T) {
	before := time.Now()
	s := entity.NewSale(1)
	after := time.Now()

	assert.Equal(t, 1, s.Number)
	assert.False(t, s.CreatedAt.Before(before), "la fecha se captura al construir")
	assert.False(t, s.CreatedAt.After(after))
	assert.Zero(t, s.CustomerCount())
	assert.Zero(t, s.LineItemCount())

	created := s.CreatedAt
	s.AddCustomer(entity.NewCustomer("Ana", "", "", time.Time{}))
	s.AddLineItem(entity.NewSaleLineItem(entity.NewProduct(1, "Café", dec("1")), 1))
	assert.Equal(t, created, s.CreatedAt, "la fecha de creación nunca se actualiza")
}

func TestSaleLineItem_Total(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		quantity int
		want     string
	}{
		{name: "positivo", value: "3.0", quantity: 2, want: "6"},
		{name: "cantidad cero", value: "9.99", quantity: 0, want: "0"},
		{name: "cantidad negativa", value: "1.5", quantity: -4, want: "-6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := entity.NewSaleLineItem(entity.NewProduct(1, "X", dec(tt.value)), tt.quantity)
			assert.True(t, dec(tt.want).Equal(item.Total()), "obtenido %s", item.Total())
		})
	}
}

func TestSaleLineItem_CapturaValorPorCopia(t *testing.T) {
	p := entity.NewProduct(1, "Café", dec("3.0"))
	item := entity.NewSaleLineItem(p, 2)

	p.Value = dec("100")

	assert.True(t, dec("3.0").Equal(item.UnitValue()), "el valor unitario es una copia")
	assert.True(t, dec("6").Equal(item.Total()), "el total no sigue cambios del producto")
	assert.Equal(t, 2, item.Quantity())
	assert.Equal(t, "Café", item.Product().Name)
}

func TestSale_Total(t *testing.T) {
	s := entity.NewSale(1)
	assert.True(t, s.Total().IsZero())

	s.AddLineItem(entity.NewSaleLineItem(entity.NewProduct(1, "A", dec("3.0")), 2))
	s.AddLineItem(entity.NewSaleLineItem(entity.NewProduct(2, "B", dec("1.5")), 4))

	c := entity.NewCustomer("Ana", "", "", time.Time{})
	c.AddProduct(entity.NewProduct(3, "C", dec("500")))
	s.AddCustomer(c)

	assert.True(t, dec("12.0").Equal(s.Total()),
		"el total de la venta solo depende de las líneas, obtenido %s", s.Total())
}

func TestSale_TotalCustomerProductValue(t *testing.T) {
	s := entity.NewSale(1)
	assert.True(t, s.TotalCustomerProductValue().IsZero(), "sin clientes el total es 0")

	c := entity.NewCustomer("Ana", "", "", time.Time{})
	c.AddProduct(entity.NewProduct(1, "A", dec("7.25")))
	s.AddCustomer(c)
	assert.True(t, dec("7.25").Equal(s.TotalCustomerProductValue()))

	s.AddLineItem(entity.NewSaleLineItem(entity.NewProduct(9, "Z", dec("1000")), 1))
	assert.True(t, dec("7.25").Equal(s.TotalCustomerProductValue()),
		"las líneas de venta no afectan el total de productos de clientes")
}

func newSaleWith(names ...string) *entity.Sale {
	s := entity.NewSaleAt(1, time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC))
	for _, n := range names {
		s.AddCustomer(entity.NewCustomer(n, "", "", time.Time{}))
	}
	return s
}

func customerNames(s *entity.Sale) []string {
	out := make([]string, 0, s.CustomerCount())
	for _, c := range s.Customers() {
		out = append(out, c.Name)
	}
	return out
}

func TestSale_RemoveCustomer_Compacta(t *testing.T) {
	tests := []struct {
		index int
		want  []string
	}{
		{index: 0, want: []string{"b", "c", "d"}},
		{index: 1, want: []string{"a", "c", "d"}},
		{index: 3, want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		s := newSaleWith("a", "b", "c", "d")
		require.NoError(t, s.RemoveCustomer(tt.index))
		assert.Equal(t, tt.want, customerNames(s), "índice %d", tt.index)
		assert.Equal(t, 3, s.CustomerCount())
	}
}

func TestSale_RemoveCustomer_IndiceInvalido(t *testing.T) {
	for _, index := range []int{4, 5, 100, -1} {
		s := newSaleWith("a", "b", "c", "d")
		err := s.RemoveCustomer(index)

		require.Error(t, err, "índice %d debe fallar", index)
		assert.True(t, errors.Is(err, domain.ErrIndexOutOfRange))
		assert.Equal(t, []string{"a", "b", "c", "d"}, customerNames(s),
			"un índice inválido no debe eliminar ningún cliente")
	}

	empty := newSaleWith()
	assert.ErrorIs(t, empty.RemoveCustomer(0), domain.ErrIndexOutOfRange)
}

func TestSale_CustomerAt(t *testing.T) {
	s := newSaleWith("a", "b")

	c, err := s.CustomerAt(1)
	require.NoError(t, err)
	c.UpdateName("B")
	assert.Equal(t, []string{"a", "B"}, customerNames(s), "CustomerAt permite modificar el cliente")

	_, err = s.CustomerAt(2)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	_, err = s.CustomerAt(-1)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestSumTotals_Heterogeneos(t *testing.T) {
	s := entity.NewSale(1)
	s.AddLineItem(entity.NewSaleLineItem(entity.NewProduct(1, "A", dec("2")), 3))
	extra := entity.NewSaleLineItem(entity.NewProduct(2, "B", dec("0.5")), 2)

	got := entity.SumTotals(s, extra)
	assert.True(t, dec("7").Equal(got), "obtenido %s", got)
	assert.True(t, entity.SumTotals().IsZero())
}
