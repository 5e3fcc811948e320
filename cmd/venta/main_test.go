package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ErrorDeConfiguracionDejaElLogEscrito(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "venta.log")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_FILE", logFile)
	t.Setenv("CURRENCY", "nope")

	err := run()
	require.Error(t, err, "una moneda inválida se retorna como error, sin os.Exit")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "iniciando aplicación")
	assert.Contains(t, string(data), "formato de moneda")
}
