package console

import (
	"context"
	"errors"

	"github.com/jhoicas/venta-consola/internal/application/dto"
	"github.com/jhoicas/venta-consola/internal/domain"
)

func (c *Console) listCustomers() {
	customers := c.uc.ListCustomers()
	if len(customers) == 0 {
		c.println("Ningún cliente registrado.\n")
		return
	}
	for _, cust := range customers {
		c.renderCustomer(cust)
	}
}

// askCustomerIndex pide un índice y confirma que exista antes de seguir con el flujo.
// ok=false si el índice está fuera de rango (el mensaje ya fue mostrado).
func (c *Console) askCustomerIndex(ctx context.Context, prompt string) (index int, ok bool, err error) {
	index, err = ask(ctx, c, prompt, ParseIndex)
	if err != nil {
		return 0, false, err
	}
	if _, err := c.uc.GetCustomer(index); err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			c.println("Índice inválido.\n")
			return 0, false, nil
		}
		return 0, false, err
	}
	return index, true, nil
}

func (c *Console) updateCustomer(ctx context.Context) error {
	index, ok, err := c.askCustomerIndex(ctx, "Ingrese el número del cliente a actualizar: ")
	if err != nil || !ok {
		return err
	}

	name, err := ask(ctx, c, "Ingrese el nuevo nombre: ", ParseText)
	if err != nil {
		return err
	}
	address, err := ask(ctx, c, "Ingrese la nueva dirección: ", ParseText)
	if err != nil {
		return err
	}
	documentID, err := ask(ctx, c, "Ingrese el nuevo documento: ", ParseText)
	if err != nil {
		return err
	}
	birthDate, err := ask(ctx, c, "Ingrese la nueva fecha de nacimiento ("+c.dates.Hint()+"): ", c.dates.Parse)
	if err != nil {
		return err
	}

	if _, err := c.uc.UpdateCustomer(index, dto.UpdateCustomerRequest{
		Name:       &name,
		Address:    &address,
		DocumentID: &documentID,
		BirthDate:  &birthDate,
	}); err != nil {
		return c.reportIndexError(err)
	}
	c.println("¡La información del cliente fue actualizada con éxito!\n")
	return nil
}

func (c *Console) removeCustomer(ctx context.Context) error {
	index, err := ask(ctx, c, "Ingrese el número del cliente a remover: ", ParseIndex)
	if err != nil {
		return err
	}
	if err := c.uc.RemoveCustomer(index); err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			c.println("Índice inválido. Ningún cliente fue removido.\n")
			return nil
		}
		return err
	}
	c.println("¡Cliente removido con éxito!\n")
	return nil
}

func (c *Console) registerCustomer(ctx context.Context) error {
	name, err := ask(ctx, c, "Ingrese el nombre del cliente: ", ParseText)
	if err != nil {
		return err
	}
	address, err := ask(ctx, c, "Ingrese la dirección del cliente: ", ParseText)
	if err != nil {
		return err
	}
	documentID, err := ask(ctx, c, "Ingrese el documento del cliente: ", ParseText)
	if err != nil {
		return err
	}
	birthDate, err := ask(ctx, c, "Ingrese la fecha de nacimiento del cliente ("+c.dates.Hint()+"): ", c.dates.Parse)
	if err != nil {
		return err
	}

	req := dto.RegisterCustomerRequest{
		Name:       name,
		Address:    address,
		DocumentID: documentID,
		BirthDate:  birthDate,
	}
	for {
		more, err := ask(ctx, c, "¿Desea agregar un producto? (S/N)", ParseYesNo)
		if err != nil {
			return err
		}
		if !more {
			break
		}
		p, err := c.askProduct(ctx)
		if err != nil {
			return err
		}
		req.Products = append(req.Products, p)
	}

	if _, err := c.uc.RegisterCustomer(req); err != nil {
		return err
	}
	c.println("¡Cliente registrado con éxito!\n")
	return nil
}

func (c *Console) addProduct(ctx context.Context) error {
	index, ok, err := c.askCustomerIndex(ctx, "Ingrese el número del cliente: ")
	if err != nil || !ok {
		return err
	}
	p, err := c.askProduct(ctx)
	if err != nil {
		return err
	}
	resp, err := c.uc.AddProductToCustomer(index, p)
	if err != nil {
		return c.reportIndexError(err)
	}
	c.printf("Producto agregado. Valor total de los productos: %s\n\n", c.money.Format(resp.TotalProductValue))
	return nil
}

func (c *Console) askProduct(ctx context.Context) (dto.ProductRequest, error) {
	code, err := ask(ctx, c, "Ingrese el código del producto: ", ParseInt)
	if err != nil {
		return dto.ProductRequest{}, err
	}
	name, err := ask(ctx, c, "Ingrese el nombre del producto: ", ParseText)
	if err != nil {
		return dto.ProductRequest{}, err
	}
	value, err := ask(ctx, c, "Ingrese el valor del producto: ", ParseDecimal)
	if err != nil {
		return dto.ProductRequest{}, err
	}
	return dto.ProductRequest{Code: code, Name: name, Value: value}, nil
}

func (c *Console) recordLineItem(ctx context.Context) error {
	p, err := c.askProduct(ctx)
	if err != nil {
		return err
	}
	quantity, err := ask(ctx, c, "Ingrese la cantidad: ", ParseInt)
	if err != nil {
		return err
	}
	item, err := c.uc.RecordLineItem(dto.LineItemRequest{Product: p, Quantity: quantity})
	if err != nil {
		return err
	}
	c.printf("Ítem registrado. Total del ítem: %s\n\n", c.money.Format(item.Total))
	return nil
}

func (c *Console) showSummary() {
	s := c.uc.Summary()
	c.printf("Venta N° %d\n", s.Number)
	c.printf("Creada: %s\n", s.CreatedAt.Format(c.dates.Layout+" 15:04:05"))
	c.printf("Clientes: %d\n", s.CustomerCount)
	c.printf("Ítems de venta: %d\n\n", s.LineItemCount)
	for _, it := range c.uc.ListLineItems() {
		c.renderLineItem(it)
	}
	c.printf("\nValor total de productos de clientes: %s\n", c.money.Format(s.TotalCustomerProductValue))
	c.printf("Total de la venta: %s\n\n", c.money.Format(s.Total))
}

func (c *Console) exportPDF(ctx context.Context) error {
	data, filename, err := c.uc.ExportSummaryPDF(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			c.println("La exportación a PDF no está disponible.\n")
			return nil
		}
		c.printf("No se pudo generar el reporte: %v\n\n", err)
		return nil
	}
	path := c.reportPath(filename)
	if err := c.writeFile(path, data); err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("escritura de reporte fallida")
		c.printf("No se pudo guardar el reporte en %s: %v\n\n", path, err)
		return nil
	}
	c.printf("Reporte guardado en %s\n\n", path)
	return nil
}

// reportIndexError muestra el índice inválido (p. ej. si la venta cambió entre la
// validación y la operación) y deja pasar otros errores.
func (c *Console) reportIndexError(err error) error {
	if errors.Is(err, domain.ErrIndexOutOfRange) {
		c.println("Índice inválido.\n")
		return nil
	}
	return err
}
