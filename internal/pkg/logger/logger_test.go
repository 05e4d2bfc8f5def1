package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbearia/internal/pkg/logger"
)

func TestLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "debug")

	log.Info("Venda registrada.", map[string]interface{}{"venda_id": "abc", "itens": 2})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Venda registrada.", entry["message"])
	assert.Equal(t, "abc", entry["venda_id"])
	assert.Contains(t, entry, "time")
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "error")

	log.Debug("ignorado", nil)
	log.Info("ignorado", nil)
	log.Warn("ignorado", nil)
	assert.Empty(t, buf.String())

	log.Error("Falha ao enviar WhatsApp.", errors.New("timeout"))
	assert.True(t, strings.Contains(buf.String(), "timeout"))
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "verbose")

	log.Debug("ignorado", nil)
	assert.Empty(t, buf.String())

	log.Info("visível", nil)
	assert.Contains(t, buf.String(), "visível")
}
