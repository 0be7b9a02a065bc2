package jsoncanonicalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Members sorted",
			input:    `{"b": 2, "a": 1}`,
			expected: `{"a":1,"b":2}`,
		},
		{
			name:     "Nested objects and arrays",
			input:    `{"z": {"y": [3, 2, {"b": false, "a": null}]}, "a": "x"}`,
			expected: `{"a":"x","z":{"y":[3,2,{"a":null,"b":false}]}}`,
		},
		{
			name:     "Whitespace removed",
			input:    "{\n  \"id\" : \"did:hedera:testnet:abc\"\n}",
			expected: `{"id":"did:hedera:testnet:abc"}`,
		},
		{
			name:     "Control characters escaped",
			input:    `{"memo": "line1\nline2\ttab"}`,
			expected: `{"memo":"line1\nline2\ttab"}`,
		},
		{
			name:     "Integer-valued floats lose the fraction",
			input:    `{"n": 2.0}`,
			expected: `{"n":2}`,
		},
		{
			name:     "Top level array",
			input:    `[ "b", "a" ]`,
			expected: `["b","a"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Transform([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestTransformOrderIndependent(t *testing.T) {
	a, err := Transform([]byte(`{"controller": "did:hedera:testnet:x", "id": "did:hedera:testnet:y", "@context": ["https://www.w3.org/ns/did/v1"]}`))
	require.NoError(t, err)

	b, err := Transform([]byte(`{"@context": ["https://www.w3.org/ns/did/v1"], "id": "did:hedera:testnet:y", "controller": "did:hedera:testnet:x"}`))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestTransformIdempotent(t *testing.T) {
	once, err := Transform([]byte(`{"b": [1, 2], "a": {"d": 4, "c": 3}}`))
	require.NoError(t, err)

	twice, err := Transform(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestTransformRejectsInvalidInput(t *testing.T) {
	_, err := Transform([]byte(`{"a": }`))
	assert.Error(t, err)

	_, err = Transform([]byte(`{"a": 1} trailing`))
	assert.Error(t, err)
}
