// Package keys models cryptographic key material and threshold key lists
// as exposed by the hashgraph mirror and DID layers.
//
// Keys and key lists are validated once at construction and are immutable
// afterwards; callers reject the originating request on a validation error
// and build a fresh value instead of mutating an existing one.
package keys

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// KeyType identifies the cryptographic algorithm of a key.
//
// The set is closed: an unrecognized tag is a validation failure everywhere,
// never a pass-through. Adding a variant is a breaking schema change.
type KeyType string

// Supported key types.
const (
	KeyTypeEcdsaSecp256K1  KeyType = "EcdsaSecp256K1"
	KeyTypeEd25519         KeyType = "Ed25519"
	KeyTypeProtobufEncoded KeyType = "ProtobufEncoded"
)

// IsSupported reports whether tag names a key type this module understands.
func IsSupported(tag string) bool {
	switch KeyType(tag) {
	case KeyTypeEcdsaSecp256K1, KeyTypeEd25519, KeyTypeProtobufEncoded:
		return true
	default:
		return false
	}
}

// Expected byte lengths for key material with a known algorithm.
const (
	secp256k1CompressedLen   = 33
	secp256k1UncompressedLen = 65
)

// Key is a single key as returned by the mirror API: an optional algorithm
// tag plus optional hex-encoded material. Either field may be absent ("type
// known, material pending" or the reverse); when both are present the
// material must be consistent with the algorithm.
type Key struct {
	keyType  KeyType
	hasType  bool
	material string
}

// NewKey builds a key from an algorithm tag and hex-encoded material.
// An empty typ means "type unspecified, validate format only"; an empty
// material means the key bytes are not known yet.
func NewKey(typ KeyType, material string) (*Key, error) {
	k := &Key{keyType: typ, hasType: typ != "", material: material}
	if err := k.validate(); err != nil {
		return nil, err
	}
	return k, nil
}

// ParseKey decodes and validates a {type?, key?} JSON object.
func ParseKey(data []byte) (*Key, error) {
	var raw struct {
		Type string `json:"type"`
		Key  string `json:"key"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal key: %w", err)
	}

	return NewKey(KeyType(raw.Type), raw.Key)
}

// Type returns the algorithm tag and whether one was set.
func (k *Key) Type() (KeyType, bool) {
	return k.keyType, k.hasType
}

// Material returns the hex-encoded key material, which may be empty.
func (k *Key) Material() string {
	return k.material
}

// Bytes decodes the key material. It returns nil when no material is set.
func (k *Key) Bytes() ([]byte, error) {
	if k.material == "" {
		return nil, nil
	}

	return hex.DecodeString(strings.TrimPrefix(k.material, "0x"))
}

// MarshalJSON serializes the key as a {type?, key?} object.
func (k *Key) MarshalJSON() ([]byte, error) {
	raw := struct {
		Type string `json:"type,omitempty"`
		Key  string `json:"key,omitempty"`
	}{Key: k.material}
	if k.hasType {
		raw.Type = string(k.keyType)
	}

	return json.Marshal(raw)
}

// UnmarshalJSON decodes and validates the key in place, so a Key embedded in
// a larger record is never left partially constructed.
func (k *Key) UnmarshalJSON(data []byte) error {
	parsed, err := ParseKey(data)
	if err != nil {
		return err
	}
	*k = *parsed

	return nil
}

func (k *Key) validate() error {
	if k.hasType && !IsSupported(string(k.keyType)) {
		return &UnsupportedKeyTypeError{Type: string(k.keyType)}
	}

	if k.material == "" {
		return nil
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(k.material, "0x"))
	if err != nil {
		return &FormatError{Field: "key", Reason: "must be a hexadecimal string"}
	}
	if len(raw) == 0 {
		return &FormatError{Field: "key", Reason: "must not be empty"}
	}

	if !k.hasType {
		// Without an algorithm tag there is nothing to check lengths against.
		return nil
	}

	switch k.keyType {
	case KeyTypeEd25519:
		if len(raw) != ed25519.PublicKeySize {
			return &FormatError{
				Field:  "key",
				Reason: fmt.Sprintf("ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, len(raw)),
			}
		}
	case KeyTypeEcdsaSecp256K1:
		if len(raw) != secp256k1CompressedLen && len(raw) != secp256k1UncompressedLen {
			return &FormatError{
				Field:  "key",
				Reason: fmt.Sprintf("secp256k1 public key must be %d or %d bytes, got %d", secp256k1CompressedLen, secp256k1UncompressedLen, len(raw)),
			}
		}
		if _, err := secp256k1.ParsePubKey(raw); err != nil {
			return &FormatError{Field: "key", Reason: "not a valid secp256k1 point"}
		}
	case KeyTypeProtobufEncoded:
		// Opaque serialized key; any non-empty payload is acceptable.
	}

	return nil
}
