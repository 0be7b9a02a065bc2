// Package did models the identity layer on top of the key types: DID
// identifiers, documents, verification methods, services, and ownership
// claims. Every entity is validated when constructed from external input
// and a validation failure rejects the whole value.
package did

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HbarSuite/hashgraph-types-sub004/common/multibase"
	"github.com/HbarSuite/hashgraph-types-sub004/keys"
)

// VerificationMethodType is the closed set of verification method key types
// a DID document may carry. Unrecognized tags are rejected at the type
// boundary rather than deep inside validation.
type VerificationMethodType string

// Supported verification method types.
const (
	Ed25519VerificationKey2018        VerificationMethodType = "Ed25519VerificationKey2018"
	Ed25519VerificationKey2020        VerificationMethodType = "Ed25519VerificationKey2020"
	EcdsaSecp256k1VerificationKey2019 VerificationMethodType = "EcdsaSecp256k1VerificationKey2019"
)

// Multicodec prefixes carried by did:key style multibase material.
var (
	ed25519PubMulticodec   = []byte{0xed, 0x01}
	secp256k1PubMulticodec = []byte{0xe7, 0x01}
)

// IsSupported reports whether the tag is in the closed set.
func (t VerificationMethodType) IsSupported() bool {
	switch t {
	case Ed25519VerificationKey2018, Ed25519VerificationKey2020, EcdsaSecp256k1VerificationKey2019:
		return true
	default:
		return false
	}
}

// KeyType maps the verification method type to its key algorithm.
func (t VerificationMethodType) KeyType() keys.KeyType {
	switch t {
	case Ed25519VerificationKey2018, Ed25519VerificationKey2020:
		return keys.KeyTypeEd25519
	case EcdsaSecp256k1VerificationKey2019:
		return keys.KeyTypeEcdsaSecp256K1
	default:
		return ""
	}
}

// VerificationMethod binds a DID URL to public key material usable for
// authentication or assertion.
type VerificationMethod struct {
	ID                 string                 `json:"id"`
	Type               VerificationMethodType `json:"type"`
	Controller         string                 `json:"controller"`
	PublicKeyMultibase string                 `json:"publicKeyMultibase"`
}

// NewVerificationMethod validates and builds a verification method. The id
// must be a DID URL with a fragment, the controller a DID, the type one of
// the supported set, and the key material valid multibase whose decoded
// length matches the type.
func NewVerificationMethod(id, controller string, typ VerificationMethodType, publicKeyMultibase string) (*VerificationMethod, error) {
	m := &VerificationMethod{
		ID:                 id,
		Type:               typ,
		Controller:         controller,
		PublicKeyMultibase: publicKeyMultibase,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseVerificationMethod decodes and validates a verification method from
// its JSON form.
func ParseVerificationMethod(data []byte) (*VerificationMethod, error) {
	var m VerificationMethod
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verification method: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Fragment returns the part of the id after the '#' delimiter. Fragment
// uniqueness is scoped to the owning document, which enforces it on insert.
func (m *VerificationMethod) Fragment() string {
	_, fragment, _ := strings.Cut(m.ID, "#")
	return fragment
}

// PublicKeyBytes decodes the key material, stripping a multicodec prefix
// when one is present.
func (m *VerificationMethod) PublicKeyBytes() ([]byte, error) {
	raw, err := multibase.Decode(m.PublicKeyMultibase)
	if err != nil {
		return nil, err
	}

	for _, prefix := range [][]byte{ed25519PubMulticodec, secp256k1PubMulticodec} {
		if bytes.HasPrefix(raw, prefix) {
			return raw[len(prefix):], nil
		}
	}

	return raw, nil
}

func (m *VerificationMethod) validate() error {
	if m.ID == "" {
		return &ValidationError{Field: "id", Reason: "is required"}
	}
	if m.Fragment() == "" {
		return &ValidationError{Field: "id", Reason: "must be a DID URL with a fragment"}
	}

	if m.Controller == "" {
		return &ValidationError{Field: "controller", Reason: "is required"}
	}
	if !strings.HasPrefix(m.Controller, "did:") {
		return &ValidationError{Field: "controller", Reason: "must be a DID"}
	}

	if m.Type == "" {
		return &ValidationError{Field: "type", Reason: "is required"}
	}
	if !m.Type.IsSupported() {
		return &keys.UnsupportedKeyTypeError{Type: string(m.Type)}
	}

	if m.PublicKeyMultibase == "" {
		return &ValidationError{Field: "publicKeyMultibase", Reason: "is required"}
	}
	raw, err := multibase.Decode(m.PublicKeyMultibase)
	if err != nil {
		return &ValidationError{Field: "publicKeyMultibase", Reason: "must be a valid multibase string", Err: err}
	}

	return m.validateKeyLength(raw)
}

// validateKeyLength checks the decoded material against the length the type
// expects, accepting both raw keys and did:key material carrying the
// algorithm's multicodec prefix.
func (m *VerificationMethod) validateKeyLength(raw []byte) error {
	switch m.Type.KeyType() {
	case keys.KeyTypeEd25519:
		if len(raw) == ed25519.PublicKeySize {
			return nil
		}
		if len(raw) == ed25519.PublicKeySize+len(ed25519PubMulticodec) && bytes.HasPrefix(raw, ed25519PubMulticodec) {
			return nil
		}
		return &ValidationError{
			Field:  "publicKeyMultibase",
			Reason: fmt.Sprintf("ed25519 public key must decode to %d bytes, got %d", ed25519.PublicKeySize, len(raw)),
		}
	case keys.KeyTypeEcdsaSecp256K1:
		const compressedLen = 33
		if len(raw) == compressedLen {
			return nil
		}
		if len(raw) == compressedLen+len(secp256k1PubMulticodec) && bytes.HasPrefix(raw, secp256k1PubMulticodec) {
			return nil
		}
		return &ValidationError{
			Field:  "publicKeyMultibase",
			Reason: fmt.Sprintf("secp256k1 public key must decode to %d bytes, got %d", compressedLen, len(raw)),
		}
	}

	return nil
}
