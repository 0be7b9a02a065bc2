package did

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema is the JSON Schema inbound DID document payloads are
// checked against before field-level validation runs. It pins the shape
// only; semantic rules (multibase decoding, key lengths, fragment
// uniqueness) are enforced by the entity constructors.
const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["@context", "id"],
	"properties": {
		"@context": {
			"type": "array",
			"items": {"type": "string"},
			"minItems": 1
		},
		"id": {"type": "string", "pattern": "^did:"},
		"controller": {"type": "string"},
		"verificationMethod": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "type", "controller", "publicKeyMultibase"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"type": {"type": "string", "minLength": 1},
					"controller": {"type": "string", "pattern": "^did:"},
					"publicKeyMultibase": {"type": "string", "minLength": 1}
				}
			}
		},
		"authentication": {"type": "array", "items": {"type": "string"}},
		"assertionMethod": {"type": "array", "items": {"type": "string"}},
		"service": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "type", "serviceEndpoint"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"type": {"type": "string", "minLength": 1},
					"serviceEndpoint": {"type": "string", "minLength": 1}
				}
			}
		}
	}
}`

var documentSchemaLoader = gojsonschema.NewStringLoader(documentSchema)

// validateDocumentJSON checks an inbound payload against the document
// schema and reports the first violation with its field path.
func validateDocumentJSON(data []byte) error {
	result, err := gojsonschema.Validate(documentSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to validate document against schema: %w", err)
	}

	if !result.Valid() {
		first := result.Errors()[0]
		return &ValidationError{Field: first.Field(), Reason: first.Description()}
	}

	return nil
}
