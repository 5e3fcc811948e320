package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/venta-consola/pkg/logger"
)

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.WithFields(map[string]interface{}{"sale_number": 3}).
		Info().Str("event", "prueba").Msg("cliente registrado")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "production debe emitir JSON")
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "cliente registrado", entry["message"])
	assert.EqualValues(t, 3, entry["sale_number"])
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Info().Msg("no debe aparecer")
	assert.Zero(t, buf.Len(), "info se descarta con nivel warn")

	log.Warn().Msg("sí aparece")
	assert.Contains(t, buf.String(), "sí aparece")
}

func TestNew_DevelopmentLegible(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "development", Level: "debug", Out: &buf})

	log.Debug().Int("index", 2).Msg("índice inválido")
	assert.Contains(t, buf.String(), "índice inválido")
	assert.Contains(t, buf.String(), "index=2")
}
