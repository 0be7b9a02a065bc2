package did

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndParseIdentifier(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	id, err := BuildIdentifier("testnet", pub, "0.0.29613327")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id.String(), "did:hedera:testnet:z"))
	assert.True(t, strings.HasSuffix(id.String(), "_0.0.29613327"))

	parsed, err := ParseIdentifier(id.String())
	require.NoError(t, err)
	assert.Equal(t, id.Network, parsed.Network)
	assert.Equal(t, id.KeyID, parsed.KeyID)
	assert.Equal(t, id.TopicID, parsed.TopicID)

	recovered, err := parsed.PublicKey()
	require.NoError(t, err)
	assert.Equal(t, []byte(pub), recovered)
}

func TestBuildIdentifierWithoutTopic(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	id, err := BuildIdentifier("mainnet", pub, "")
	require.NoError(t, err)
	assert.NotContains(t, id.String(), "_")

	parsed, err := ParseIdentifier(id.String())
	require.NoError(t, err)
	assert.Empty(t, parsed.TopicID)
}

func TestBuildIdentifierValidation(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	_, err = BuildIdentifier("", pub, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network")

	_, err = BuildIdentifier("testnet", pub[:16], "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}

func TestParseIdentifierRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		errorMsg string
	}{
		{
			name:     "Not a DID",
			input:    "hedera:testnet:zabc",
			errorMsg: "must have the form",
		},
		{
			name:     "Wrong method",
			input:    "did:web:example.com:zabc",
			errorMsg: "unsupported DID method",
		},
		{
			name:     "Empty network",
			input:    "did:hedera::z6Mkabc",
			errorMsg: "network must not be empty",
		},
		{
			name:     "Missing multibase prefix",
			input:    "did:hedera:testnet:6Mkabc",
			errorMsg: "must be base58btc multibase",
		},
		{
			name:     "Invalid base58",
			input:    "did:hedera:testnet:z0OIl",
			errorMsg: "not valid base58",
		},
		{
			name:     "Wrong payload length",
			input:    "did:hedera:testnet:z6abc",
			errorMsg: "multicodec-prefixed ed25519",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIdentifier(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}
