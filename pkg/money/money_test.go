package money_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/venta-consola/pkg/money"
)

func TestFormatter_DosDecimales(t *testing.T) {
	f, err := money.NewFormatter("USD", "en")
	require.NoError(t, err)

	assert.Equal(t, "12.00", f.Number(decimal.RequireFromString("12")))
	assert.Equal(t, "15.50", f.Number(decimal.RequireFromString("15.5")))
	assert.Equal(t, "7.25", f.Number(decimal.RequireFromString("7.25")))
	assert.Equal(t, "-6.00", f.Number(decimal.NewFromInt(-6)))
	assert.True(t, strings.HasSuffix(f.Format(decimal.RequireFromString("12")), " 12.00"),
		"Format antepone el símbolo: %s", f.Format(decimal.RequireFromString("12")))
	assert.Equal(t, "USD", f.Currency())
	assert.NotEmpty(t, f.Symbol())
}

func TestFormatter_Redondeo(t *testing.T) {
	f, err := money.NewFormatter("USD", "en")
	require.NoError(t, err)

	assert.Equal(t, "0.13", f.Number(decimal.RequireFromString("0.125")))
}

func TestNewFormatter_Errores(t *testing.T) {
	_, err := money.NewFormatter("nope", "pt-BR")
	assert.Error(t, err, "moneda inválida")

	_, err = money.NewFormatter("BRL", "no es un locale")
	assert.Error(t, err, "locale inválido")
}

func TestFormatter_MontosGrandesSinPerderPrecision(t *testing.T) {
	f, err := money.NewFormatter("USD", "en")
	require.NoError(t, err)

	assert.Equal(t, "12,345,678,901,234,567.89", f.Number(decimal.RequireFromString("12345678901234567.89")))
	assert.Equal(t, "-1,000,000.00", f.Number(decimal.RequireFromString("-1000000")))
	assert.Equal(t, "100.00", f.Number(decimal.NewFromInt(100)))
}

func TestFormatter_SeparadoresDelLocale(t *testing.T) {
	f, err := money.NewFormatter("BRL", "pt-BR")
	require.NoError(t, err)

	assert.Equal(t, "1.234,50", f.Number(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "15,50", f.Number(decimal.RequireFromString("15.5")))
}

func TestFormatter_MonedaSinDecimales(t *testing.T) {
	f, err := money.NewFormatter("JPY", "en")
	require.NoError(t, err)

	assert.Equal(t, "1,235", f.Number(decimal.RequireFromString("1234.5")))
}
