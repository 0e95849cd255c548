package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lasso/internal/gateway"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		expected gateway.Params
	}{
		{
			name:     "no_flags",
			flags:    nil,
			expected: nil,
		},
		{
			name:     "single_pair",
			flags:    []string{"title=berserk"},
			expected: gateway.Params{"title": "berserk"},
		},
		{
			name:     "repeated_key_forms_sequence",
			flags:    []string{"ids=a", "ids=b", "ids=c"},
			expected: gateway.Params{"ids": []string{"a", "b", "c"}},
		},
		{
			name:     "empty_value",
			flags:    []string{"q="},
			expected: gateway.Params{"q": ""},
		},
		{
			name:     "bare_key_is_null",
			flags:    []string{"skip"},
			expected: gateway.Params{"skip": nil},
		},
		{
			name:     "value_with_equals_sign",
			flags:    []string{"filter=a=b"},
			expected: gateway.Params{"filter": "a=b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := parseParams(tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestParseParamsRejectsEmptyKey(t *testing.T) {
	_, err := parseParams([]string{"=value"})
	assert.Error(t, err)
}

func TestParseHeaders(t *testing.T) {
	headers, err := parseHeaders([]string{
		"Accept: application/json",
		"X-Trace:abc",
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Accept":  "application/json",
		"X-Trace": "abc",
	}, headers)
}

func TestParseHeadersRejectsMalformed(t *testing.T) {
	for _, flag := range []string{"no-colon", ": empty-key"} {
		_, err := parseHeaders([]string{flag})
		assert.Error(t, err, "header %q must be rejected", flag)
	}
}
