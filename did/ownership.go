package did

import (
	"encoding/json"
	"fmt"

	"github.com/HbarSuite/hashgraph-types-sub004/common/multibase"
)

// OwnershipClaim asserts control of a DID by presenting multibase-encoded
// private key material. The claim carries this single field; callers must
// never serialize it into a public document.
type OwnershipClaim struct {
	PrivateKeyMultibase string `json:"privateKeyMultibase"`
}

// NewOwnershipClaim validates the key material and builds a claim.
func NewOwnershipClaim(privateKeyMultibase string) (*OwnershipClaim, error) {
	if privateKeyMultibase == "" {
		return nil, &ValidationError{Field: "privateKeyMultibase", Reason: "is required"}
	}
	if _, err := multibase.Decode(privateKeyMultibase); err != nil {
		return nil, &ValidationError{Field: "privateKeyMultibase", Reason: "must be a valid multibase string", Err: err}
	}

	return &OwnershipClaim{PrivateKeyMultibase: privateKeyMultibase}, nil
}

// ParseOwnershipClaim decodes and validates a {privateKeyMultibase} object.
func ParseOwnershipClaim(data []byte) (*OwnershipClaim, error) {
	var raw OwnershipClaim
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ownership claim: %w", err)
	}

	return NewOwnershipClaim(raw.PrivateKeyMultibase)
}

// PrivateKeyBytes decodes the claimed private key material.
func (c *OwnershipClaim) PrivateKeyBytes() ([]byte, error) {
	return multibase.Decode(c.PrivateKeyMultibase)
}

// OwnershipRegistration registers an ownership claim with the surrounding
// system. It validates identically to the claim; any persistence the
// registration triggers is the caller's concern.
type OwnershipRegistration struct {
	OwnershipClaim
}

// NewOwnershipRegistration validates the key material and builds a
// registration.
func NewOwnershipRegistration(privateKeyMultibase string) (*OwnershipRegistration, error) {
	claim, err := NewOwnershipClaim(privateKeyMultibase)
	if err != nil {
		return nil, err
	}

	return &OwnershipRegistration{OwnershipClaim: *claim}, nil
}
