package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente de la venta: una Person más documento,
// fecha de nacimiento y la lista de productos comprados (orden de inserción).
type Customer struct {
	Person
	DocumentID string
	BirthDate  time.Time // fecha de calendario; la hora se ignora
	products   []Product
}

// NewCustomer construye un cliente sin productos. No valida los campos.
func NewCustomer(name, address, documentID string, birthDate time.Time) *Customer {
	return &Customer{
		Person:     NewPerson(name, address),
		DocumentID: documentID,
		BirthDate:  birthDate,
		products:   make([]Product, 0),
	}
}

// UpdateDocumentID reemplaza el documento de identidad.
func (c *Customer) UpdateDocumentID(documentID string) { c.DocumentID = documentID }

// UpdateBirthDate reemplaza la fecha de nacimiento.
func (c *Customer) UpdateBirthDate(birthDate time.Time) { c.BirthDate = birthDate }

// UpdateName reemplaza el nombre.
func (c *Customer) UpdateName(name string) { c.Name = name }

// UpdateAddress reemplaza la dirección.
func (c *Customer) UpdateAddress(address string) { c.Address = address }

// AddProduct agrega el producto al final de la lista. No verifica duplicados.
func (c *Customer) AddProduct(p Product) {
	c.products = append(c.products, p)
}

// Products devuelve una copia de los productos en orden de inserción.
func (c *Customer) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductCount cantidad de productos del cliente.
func (c *Customer) ProductCount() int { return len(c.products) }

// TotalProductValue suma el valor unitario de todos los productos del cliente (0 si no tiene).
func (c *Customer) TotalProductValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.products {
		total = total.Add(p.Value)
	}
	return total
}
