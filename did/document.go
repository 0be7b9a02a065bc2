package did

import (
	"encoding/json"
	"fmt"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/HbarSuite/hashgraph-types-sub004/common/canonical"
	"github.com/HbarSuite/hashgraph-types-sub004/common/jsoncanonicalizer"
)

// DefaultContexts are the JSON-LD contexts a freshly built document declares.
var DefaultContexts = []string{
	"https://w3id.org/security/v1",
	"https://www.w3.org/ns/did/v1",
}

// Document is a DID document: the identifier, its verification methods and
// service entries, and at most one ownership claim. Fragment uniqueness of
// verification methods and services is enforced here, on insert, because it
// is scoped to the owning document rather than the entities themselves.
type Document struct {
	Context            []string              `json:"@context"`
	ID                 string                `json:"id"`
	Controller         string                `json:"controller,omitempty"`
	VerificationMethod []*VerificationMethod `json:"verificationMethod,omitempty"`
	Authentication     []string              `json:"authentication,omitempty"`
	AssertionMethod    []string              `json:"assertionMethod,omitempty"`
	Service            []*Service            `json:"service,omitempty"`

	// Private key material never serializes with the public document.
	ownership *OwnershipClaim
}

// DocumentOpt configures document parsing.
type DocumentOpt func(*documentOptions)

type documentOptions struct {
	disableSchemaValidation bool
}

// WithDisableValidation skips the JSON-schema shape check when parsing.
// Field-level validation of the embedded entities still runs.
func WithDisableValidation() DocumentOpt {
	return func(opts *documentOptions) {
		opts.disableSchemaValidation = true
	}
}

// NewDocument builds an empty document for the given DID.
func NewDocument(id, controller string) (*Document, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "is required"}
	}
	if !strings.HasPrefix(id, "did:") {
		return nil, &ValidationError{Field: "id", Reason: "must be a DID"}
	}

	return &Document{
		Context:    append([]string(nil), DefaultContexts...),
		ID:         id,
		Controller: controller,
	}, nil
}

// ParseDocument decodes and validates a DID document payload. The shape is
// checked against the document schema first unless disabled, then every
// verification method and service is validated and fragment uniqueness
// enforced. No partially valid document is returned.
func ParseDocument(data []byte, opts ...DocumentOpt) (*Document, error) {
	options := &documentOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if !options.disableSchemaValidation {
		if err := validateDocumentJSON(data); err != nil {
			return nil, err
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DID document: %w", err)
	}

	if doc.ID == "" {
		return nil, &ValidationError{Field: "id", Reason: "is required"}
	}

	fragments := make(map[string]struct{}, len(doc.VerificationMethod))
	for _, method := range doc.VerificationMethod {
		if err := method.validate(); err != nil {
			return nil, err
		}
		if _, exists := fragments[method.Fragment()]; exists {
			return nil, &ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate verification method fragment %q", method.Fragment())}
		}
		fragments[method.Fragment()] = struct{}{}
	}

	serviceFragments := make(map[string]struct{}, len(doc.Service))
	for _, service := range doc.Service {
		if err := service.validate(); err != nil {
			return nil, err
		}
		if _, exists := serviceFragments[service.Fragment()]; exists {
			return nil, &ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate service fragment %q", service.Fragment())}
		}
		serviceFragments[service.Fragment()] = struct{}{}
	}

	return &doc, nil
}

// AddVerificationMethod validates the method and appends it, rejecting a
// fragment already present in the document.
func (d *Document) AddVerificationMethod(method *VerificationMethod) error {
	if err := method.validate(); err != nil {
		return err
	}
	for _, existing := range d.VerificationMethod {
		if existing.Fragment() == method.Fragment() {
			return &ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate verification method fragment %q", method.Fragment())}
		}
	}

	d.VerificationMethod = append(d.VerificationMethod, method)

	return nil
}

// AddService validates the service entry and appends it, rejecting a
// fragment already present in the document.
func (d *Document) AddService(service *Service) error {
	if err := service.validate(); err != nil {
		return err
	}
	for _, existing := range d.Service {
		if existing.Fragment() == service.Fragment() {
			return &ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate service fragment %q", service.Fragment())}
		}
	}

	d.Service = append(d.Service, service)

	return nil
}

// SetOwnership attaches the document's ownership claim, replacing any
// previous one. The claim stays out of the serialized document.
func (d *Document) SetOwnership(claim *OwnershipClaim) {
	d.ownership = claim
}

// Ownership returns the attached ownership claim, if any.
func (d *Document) Ownership() *OwnershipClaim {
	return d.ownership
}

// Hash computes the Keccak256 digest of the document's canonical JSON form.
// Two documents with the same content hash identically regardless of member
// order in their source payloads.
func (d *Document) Hash() (string, error) {
	docJSON, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to marshal DID document: %w", err)
	}

	docToHash, err := jsoncanonicalizer.Transform(docJSON)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize DID document: %w", err)
	}

	hash := ethcrypto.Keccak256Hash(docToHash)

	return strings.ToLower(hash.Hex()), nil
}

// Normalize returns the canonical RDF dataset of the document for JSON-LD
// aware consumers.
func (d *Document) Normalize(opts ...canonical.Opt) ([]byte, error) {
	docJSON, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal DID document: %w", err)
	}

	var asMap map[string]interface{}
	if err := json.Unmarshal(docJSON, &asMap); err != nil {
		return nil, fmt.Errorf("failed to rebuild DID document: %w", err)
	}

	return canonical.Normalize(asMap, opts...)
}
