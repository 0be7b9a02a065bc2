package did

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocumentJSON() []byte {
	return []byte(`{
		"@context": ["https://w3id.org/security/v1", "https://www.w3.org/ns/did/v1"],
		"id": "` + testDID + `",
		"controller": "` + testDID + `",
		"verificationMethod": [{
			"id": "` + testDID + `#did-root-key",
			"type": "Ed25519VerificationKey2020",
			"controller": "` + testDID + `",
			"publicKeyMultibase": "` + ed25519Multibase + `"
		}],
		"authentication": ["` + testDID + `#did-root-key"],
		"service": [{
			"id": "` + testDID + `#service-1",
			"type": "DIDCommMessaging",
			"serviceEndpoint": "https://agent.example.com/didcomm"
		}]
	}`)
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(validDocumentJSON())
	require.NoError(t, err)

	assert.Equal(t, testDID, doc.ID)
	require.Len(t, doc.VerificationMethod, 1)
	assert.Equal(t, "did-root-key", doc.VerificationMethod[0].Fragment())
	require.Len(t, doc.Service, 1)
	assert.Equal(t, ServiceTypeDIDCommMessaging, doc.Service[0].Type)
}

func TestParseDocumentSchemaViolations(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "Missing id",
			input: `{"@context": ["https://www.w3.org/ns/did/v1"]}`,
		},
		{
			name:  "Id not a DID",
			input: `{"@context": ["https://www.w3.org/ns/did/v1"], "id": "not-a-did"}`,
		},
		{
			name:  "Missing context",
			input: `{"id": "` + testDID + `"}`,
		},
		{
			name: "Verification method missing key material",
			input: `{
				"@context": ["https://www.w3.org/ns/did/v1"],
				"id": "` + testDID + `",
				"verificationMethod": [{"id": "` + testDID + `#k", "type": "Ed25519VerificationKey2020", "controller": "` + testDID + `"}]
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.input))
			require.Error(t, err)
			assert.IsType(t, &ValidationError{}, err)
		})
	}
}

func TestParseDocumentWithDisableValidation(t *testing.T) {
	// Shape check skipped, but entity validation still runs.
	minimal := []byte(`{"id": "` + testDID + `"}`)
	doc, err := ParseDocument(minimal, WithDisableValidation())
	require.NoError(t, err)
	assert.Equal(t, testDID, doc.ID)

	badMethod := []byte(`{
		"id": "` + testDID + `",
		"verificationMethod": [{
			"id": "` + testDID + `#k",
			"type": "Ed25519VerificationKey2020",
			"controller": "` + testDID + `",
			"publicKeyMultibase": "z0OIl"
		}]
	}`)
	_, err = ParseDocument(badMethod, WithDisableValidation())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multibase")
}

func TestParseDocumentDuplicateFragments(t *testing.T) {
	duplicate := []byte(`{
		"@context": ["https://www.w3.org/ns/did/v1"],
		"id": "` + testDID + `",
		"verificationMethod": [
			{
				"id": "` + testDID + `#did-root-key",
				"type": "Ed25519VerificationKey2020",
				"controller": "` + testDID + `",
				"publicKeyMultibase": "` + ed25519Multibase + `"
			},
			{
				"id": "` + testDID + `#did-root-key",
				"type": "Ed25519VerificationKey2018",
				"controller": "` + testDID + `",
				"publicKeyMultibase": "` + ed25519Multibase + `"
			}
		]
	}`)

	_, err := ParseDocument(duplicate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate verification method fragment "did-root-key"`)
}

func TestAddVerificationMethod(t *testing.T) {
	doc, err := NewDocument(testDID, testDID)
	require.NoError(t, err)

	method, err := NewVerificationMethod(testDID+"#key-1", testDID, Ed25519VerificationKey2020, ed25519Multibase)
	require.NoError(t, err)
	require.NoError(t, doc.AddVerificationMethod(method))

	// Same fragment, different type: still a collision.
	clash, err := NewVerificationMethod(testDID+"#key-1", testDID, Ed25519VerificationKey2018, ed25519Multibase)
	require.NoError(t, err)
	err = doc.AddVerificationMethod(clash)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate verification method fragment")

	other, err := NewVerificationMethod(testDID+"#key-2", testDID, Ed25519VerificationKey2020, ed25519Multibase)
	require.NoError(t, err)
	assert.NoError(t, doc.AddVerificationMethod(other))
}

func TestAddService(t *testing.T) {
	doc, err := NewDocument(testDID, "")
	require.NoError(t, err)

	service, err := NewService(testDID+"#vcs", ServiceTypeLinkedDomains, "https://example.com")
	require.NoError(t, err)
	require.NoError(t, doc.AddService(service))

	err = doc.AddService(service)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate service fragment")
}

func TestNewServiceValidation(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		typ         ServiceType
		endpoint    string
		expectError string
	}{
		{
			name:     "Valid LinkedDomains",
			id:       testDID + "#domains",
			typ:      ServiceTypeLinkedDomains,
			endpoint: "https://example.com",
		},
		{
			name:        "Unsupported type",
			id:          testDID + "#x",
			typ:         ServiceType("CredentialRegistry"),
			endpoint:    "https://example.com",
			expectError: `unsupported service type "CredentialRegistry"`,
		},
		{
			name:        "Missing fragment",
			id:          testDID,
			typ:         ServiceTypeLinkedDomains,
			endpoint:    "https://example.com",
			expectError: "must be a DID URL with a fragment",
		},
		{
			name:        "Relative endpoint",
			id:          testDID + "#x",
			typ:         ServiceTypeLinkedDomains,
			endpoint:    "example.com/path",
			expectError: "must be an absolute URI",
		},
		{
			name:        "Empty endpoint",
			id:          testDID + "#x",
			typ:         ServiceTypeLinkedDomains,
			expectError: "invalid serviceEndpoint: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewService(tt.id, tt.typ, tt.endpoint)

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Nil(t, service)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestDocumentOwnership(t *testing.T) {
	doc, err := NewDocument(testDID, "")
	require.NoError(t, err)
	assert.Nil(t, doc.Ownership())

	claim, err := NewOwnershipClaim(ed25519Multibase)
	require.NoError(t, err)
	doc.SetOwnership(claim)
	assert.Equal(t, claim, doc.Ownership())

	// The claim must never leak into the serialized document.
	docJSON, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(docJSON), "privateKeyMultibase")
}

func TestDocumentHashStable(t *testing.T) {
	first, err := ParseDocument(validDocumentJSON())
	require.NoError(t, err)

	second, err := ParseDocument(validDocumentJSON())
	require.NoError(t, err)

	hashA, err := first.Hash()
	require.NoError(t, err)
	hashB, err := second.Hash()
	require.NoError(t, err)
	assert.Equal(t, hashA, hashB)

	second.Controller = "did:hedera:testnet:zother"
	hashC, err := second.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashC)
}

func TestNewDocumentValidation(t *testing.T) {
	_, err := NewDocument("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id: is required")

	_, err = NewDocument("example.com", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a DID")

	doc, err := NewDocument(testDID, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultContexts, doc.Context)
}
