package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lasso/internal/gateway"
)

func TestPrintOutcomeText(t *testing.T) {
	var buf bytes.Buffer

	err := printOutcome(&buf, gateway.TextOutcome("pong"))

	require.NoError(t, err)
	assert.Equal(t, "pong\n", buf.String())
}

func TestPrintOutcomeJSONCompactWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	value := map[string]any{"data": []any{1.0, 2.0, 3.0}}

	err := printOutcome(&buf, gateway.JSONOutcome(value))

	require.NoError(t, err)
	assert.Equal(t, "{\"data\":[1,2,3]}\n", buf.String())
}
