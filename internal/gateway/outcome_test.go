package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONOutcome(t *testing.T) {
	value := map[string]any{"data": []any{1.0, 2.0, 3.0}}
	outcome := JSONOutcome(value)

	assert.Equal(t, KindJSON, outcome.Kind())
	assert.True(t, outcome.IsJSON())
	assert.False(t, outcome.IsText())
	assert.Equal(t, value, outcome.JSON())
	assert.Empty(t, outcome.Text())
}

func TestTextOutcome(t *testing.T) {
	outcome := TextOutcome("pong")

	assert.Equal(t, KindText, outcome.Kind())
	assert.True(t, outcome.IsText())
	assert.False(t, outcome.IsJSON())
	assert.Equal(t, "pong", outcome.Text())
	assert.Nil(t, outcome.JSON())
}
