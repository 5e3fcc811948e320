package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/venta-consola/internal/domain"
)

// Frontera de validación: todo texto leído de la consola se convierte aquí a
// valores tipados antes de llegar al caso de uso. Ante texto mal formado se
// retorna domain.ErrInvalidInput; nunca se asume un valor por defecto.

// ParseText recorta espacios; cualquier texto es válido.
func ParseText(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ParseInt entero con signo (códigos de producto, cantidades).
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q no es un número entero", domain.ErrInvalidInput, s)
	}
	return n, nil
}

// ParseIndex índice base cero (≥0). El rango contra la venta lo valida el dominio.
func ParseIndex(s string) (int, error) {
	n, err := ParseInt(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: el índice %d no puede ser negativo", domain.ErrInvalidInput, n)
	}
	return n, nil
}

// ParseDecimal monto decimal; acepta coma como separador decimal ("5,5").
func ParseDecimal(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	if strings.Contains(v, ",") && !strings.Contains(v, ".") {
		v = strings.Replace(v, ",", ".", 1)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q no es un valor numérico", domain.ErrInvalidInput, s)
	}
	return d, nil
}

// DateParser convierte fechas de calendario con un layout fijo.
type DateParser struct {
	Layout string
}

// Parse interpreta s con el layout; la fecha resultante está en UTC a medianoche.
func (p DateParser) Parse(s string) (time.Time, error) {
	t, err := time.Parse(p.Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q no es una fecha válida (formato %s)", domain.ErrInvalidInput, s, p.Hint())
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Hint descripción legible del layout para los mensajes de la consola.
func (p DateParser) Hint() string {
	r := strings.NewReplacer("2006", "AAAA", "01", "MM", "02", "DD")
	return r.Replace(p.Layout)
}

// ParseYesNo respuesta S/N (sin distinguir mayúsculas).
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "si", "sí", "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: responda 'S' para sí o 'N' para no", domain.ErrInvalidInput)
	}
}
