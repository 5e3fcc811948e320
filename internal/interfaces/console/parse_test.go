package console_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/venta-consola/internal/domain"
	"github.com/jhoicas/venta-consola/internal/interfaces/console"
)

func TestParseIndex(t *testing.T) {
	n, err := console.ParseIndex(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, in := range []string{"", "abc", "-1", "1.5"} {
		_, err := console.ParseIndex(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %q", in)
	}
}

func TestParseInt_PermiteNegativos(t *testing.T) {
	n, err := console.ParseInt("-4")
	require.NoError(t, err)
	assert.Equal(t, -4, n)

	_, err = console.ParseInt("cuatro")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "5.5", want: "5.5"},
		{in: "5,5", want: "5.5"},
		{in: " 10 ", want: "10"},
		{in: "-0.25", want: "-0.25"},
	}
	for _, tt := range tests {
		got, err := console.ParseDecimal(tt.in)
		require.NoError(t, err, "entrada %q", tt.in)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "entrada %q: obtenido %s", tt.in, got)
	}

	_, err := console.ParseDecimal("diez")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDateParser(t *testing.T) {
	p := console.DateParser{Layout: "2006-01-02"}

	got, err := p.Parse("1990-05-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, time.May, 3, 0, 0, 0, 0, time.UTC), got)

	for _, in := range []string{"03/05/1990", "1990-13-01", "1990-02-30", ""} {
		_, err := p.Parse(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %q", in)
	}
	assert.Equal(t, "AAAA-MM-DD", p.Hint())
	assert.Equal(t, "DD/MM/AAAA", console.DateParser{Layout: "02/01/2006"}.Hint())
}

func TestParseYesNo(t *testing.T) {
	for _, in := range []string{"S", "s", "sí", "Si", "y"} {
		ok, err := console.ParseYesNo(in)
		require.NoError(t, err, "entrada %q", in)
		assert.True(t, ok)
	}
	for _, in := range []string{"N", "no"} {
		ok, err := console.ParseYesNo(in)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	_, err := console.ParseYesNo("tal vez")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
