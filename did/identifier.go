package did

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/HbarSuite/hashgraph-types-sub004/common/multibase"
)

// Method is the DID method name for hashgraph identifiers.
const Method = "hedera"

// Identifier is a parsed did:hedera identifier: the ledger network, the
// base58btc multibase form of the ed25519 public key, and an optional
// appnet topic the DID document lives on.
type Identifier struct {
	Network string
	KeyID   string
	TopicID string
}

// BuildIdentifier derives a DID identifier from a network name and an
// ed25519 public key. The key id is the base58btc multibase of the
// multicodec-prefixed key, the same form did:key uses.
func BuildIdentifier(network string, publicKey []byte, topicID string) (*Identifier, error) {
	if network == "" {
		return nil, &ValidationError{Field: "network", Reason: "is required"}
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return nil, &ValidationError{
			Field:  "publicKey",
			Reason: fmt.Sprintf("ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, len(publicKey)),
		}
	}

	prefixed := append(append([]byte(nil), ed25519PubMulticodec...), publicKey...)
	keyID, err := multibase.Encode(multibase.Base58BTC, prefixed)
	if err != nil {
		return nil, err
	}

	return &Identifier{Network: network, KeyID: keyID, TopicID: topicID}, nil
}

// ParseIdentifier splits and validates a did:hedera identifier string.
func ParseIdentifier(s string) (*Identifier, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 || parts[0] != "did" {
		return nil, &ValidationError{Field: "did", Reason: "must have the form did:hedera:<network>:<key>"}
	}
	if parts[1] != Method {
		return nil, &ValidationError{Field: "did", Reason: fmt.Sprintf("unsupported DID method %q", parts[1])}
	}
	if parts[2] == "" {
		return nil, &ValidationError{Field: "did", Reason: "network must not be empty"}
	}

	keyID, topicID, _ := strings.Cut(parts[3], "_")
	if !strings.HasPrefix(keyID, "z") {
		return nil, &ValidationError{Field: "did", Reason: "key identifier must be base58btc multibase"}
	}

	raw, err := base58.Decode(keyID[1:])
	if err != nil {
		return nil, &ValidationError{Field: "did", Reason: "key identifier is not valid base58", Err: err}
	}
	if len(raw) != ed25519.PublicKeySize+len(ed25519PubMulticodec) || raw[0] != ed25519PubMulticodec[0] || raw[1] != ed25519PubMulticodec[1] {
		return nil, &ValidationError{Field: "did", Reason: "key identifier must encode a multicodec-prefixed ed25519 public key"}
	}

	return &Identifier{Network: parts[2], KeyID: keyID, TopicID: topicID}, nil
}

// PublicKey returns the ed25519 public key the identifier encodes.
func (i *Identifier) PublicKey() ([]byte, error) {
	raw, err := multibase.Decode(i.KeyID)
	if err != nil {
		return nil, err
	}
	if len(raw) != ed25519.PublicKeySize+len(ed25519PubMulticodec) {
		return nil, &ValidationError{Field: "did", Reason: "key identifier must encode a multicodec-prefixed ed25519 public key"}
	}

	return raw[len(ed25519PubMulticodec):], nil
}

// String renders the identifier in its did:hedera form.
func (i *Identifier) String() string {
	s := fmt.Sprintf("did:%s:%s:%s", Method, i.Network, i.KeyID)
	if i.TopicID != "" {
		s += "_" + i.TopicID
	}
	return s
}
