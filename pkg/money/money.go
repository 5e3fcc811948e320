// Package money formatea montos decimales según moneda (ISO 4217) y locale.
package money

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter convierte decimal.Decimal a texto legible ("R$ 15,50").
type Formatter struct {
	unit    currency.Unit
	symbol  string
	scale   int
	group   string
	decimal string
}

// NewFormatter construye el formateador. isoCode: "BRL", "COP", "USD"...; locale: "pt-BR", "es-CO"...
func NewFormatter(isoCode, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(isoCode)
	if err != nil {
		return nil, fmt.Errorf("money: moneda %q: %w", isoCode, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("money: locale %q: %w", locale, err)
	}
	p := message.NewPrinter(tag)
	scale, _ := currency.Standard.Rounding(unit)
	group, dec := separators(p)
	return &Formatter{
		unit:    unit,
		symbol:  p.Sprint(currency.Symbol(unit)),
		scale:   scale,
		group:   group,
		decimal: dec,
	}, nil
}

// separators obtiene los separadores de miles y de decimales que usa el locale
// del printer. Sin agrupación en el locale, group queda vacío.
func separators(p *message.Printer) (group, dec string) {
	var seps []string
	var cur strings.Builder
	for _, r := range p.Sprintf("%.1f", 1234567.5) {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				seps = append(seps, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	switch len(seps) {
	case 0:
		return "", "."
	case 1:
		return "", seps[0]
	default:
		return seps[0], seps[len(seps)-1]
	}
}

// Currency código ISO de la moneda.
func (f *Formatter) Currency() string { return f.unit.String() }

// Symbol símbolo de la moneda en el locale configurado.
func (f *Formatter) Symbol() string { return f.symbol }

// Format redondea a la escala estándar de la moneda y aplica separadores del locale.
func (f *Formatter) Format(amount decimal.Decimal) string {
	return f.symbol + " " + f.Number(amount)
}

// Number igual que Format pero sin símbolo. Trabaja sobre el texto del decimal,
// sin pasar por float64.
func (f *Formatter) Number(amount decimal.Decimal) string {
	s := amount.StringFixed(int32(f.scale))
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	out := sign + groupDigits(intPart, f.group)
	if frac != "" {
		out += f.decimal + frac
	}
	return out
}

func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
