package console

import (
	"github.com/jhoicas/venta-consola/internal/application/dto"
)

// Opciones del menú principal.
const (
	optionListCustomers    = 1
	optionUpdateCustomer   = 2
	optionRemoveCustomer   = 3
	optionRegisterCustomer = 4
	optionExit             = 5
	optionAddProduct       = 6
	optionRecordLineItem   = 7
	optionSummary          = 8
	optionExportPDF        = 9
)

func (c *Console) renderMenu() {
	c.println("=========== Menú de la venta ===========")
	c.println("1. Mostrar clientes")
	c.println("2. Actualizar cliente")
	c.println("3. Remover cliente")
	c.println("4. Registrar cliente")
	c.println("5. Salir")
	c.println("6. Agregar producto a un cliente")
	c.println("7. Registrar ítem de venta")
	c.println("8. Resumen de la venta")
	c.println("9. Exportar resumen a PDF")
	c.println("========================================\n")
	c.println("Elija una opción: ")
}

func (c *Console) renderCustomer(cust dto.CustomerResponse) {
	c.printf("Índice: %d\n", cust.Index)
	c.printf("Nombre: %s\n", cust.Name)
	c.printf("Dirección: %s\n", cust.Address)
	c.printf("Documento: %s\n", cust.DocumentID)
	c.printf("Fecha de nacimiento: %s\n\n", cust.BirthDate.Format(c.dates.Layout))
	c.println("Productos:")
	for _, p := range cust.Products {
		c.printf("Código: %d\n", p.Code)
		c.printf("Nombre: %s\n", p.Name)
		c.printf("Valor: %s\n\n", c.money.Format(p.Value))
	}
	c.printf("Valor total de los productos: %s\n\n", c.money.Format(cust.TotalProductValue))
}

func (c *Console) renderLineItem(it dto.LineItemResponse) {
	c.printf("#%d  [%d] %s  %s x %d = %s\n",
		it.Index, it.Product.Code, it.Product.Name,
		c.money.Format(it.UnitValue), it.Quantity, c.money.Format(it.Total))
}
