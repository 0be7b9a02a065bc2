// Package multibase validates and converts multibase-prefixed key material.
// The first character of a multibase string selects the base used for the
// remainder; base58btc (prefix 'z') is what DID key material uses in
// practice, but any base registered with the multiformats table decodes.
package multibase

import (
	"errors"
	"fmt"

	mb "github.com/multiformats/go-multibase"
)

// Base58BTC is the multibase prefix for base58btc, the encoding used by
// publicKeyMultibase and privateKeyMultibase fields.
const Base58BTC = mb.Base58BTC

var (
	// ErrEmptyInput is returned when the input string has no content at all.
	ErrEmptyInput = errors.New("multibase string is empty")
	// ErrEmptyPayload is returned when the prefix decodes to zero bytes.
	ErrEmptyPayload = errors.New("multibase payload is empty")
)

// Decode inspects the leading prefix character of input and decodes the
// remainder under that base. Unknown prefixes, malformed alphabets, and
// zero-length payloads are rejected.
func Decode(input string) ([]byte, error) {
	if input == "" {
		return nil, ErrEmptyInput
	}

	_, payload, err := mb.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("failed to decode multibase string: %w", err)
	}
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	return payload, nil
}

// Encode writes data under the given base with its prefix character, such
// that Decode(Encode(base, data)) round-trips for any non-empty data.
func Encode(base mb.Encoding, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyPayload
	}

	encoded, err := mb.Encode(base, data)
	if err != nil {
		return "", fmt.Errorf("failed to encode multibase string: %w", err)
	}

	return encoded, nil
}
