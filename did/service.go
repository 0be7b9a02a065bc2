package did

import (
	"fmt"
	"net/url"
	"strings"
)

// ServiceType is the closed set of service endpoint types a DID document
// may declare.
type ServiceType string

// Supported service types.
const (
	ServiceTypeLinkedDomains    ServiceType = "LinkedDomains"
	ServiceTypeDIDCommMessaging ServiceType = "DIDCommMessaging"
)

// IsSupported reports whether the tag is in the closed set.
func (t ServiceType) IsSupported() bool {
	switch t {
	case ServiceTypeLinkedDomains, ServiceTypeDIDCommMessaging:
		return true
	default:
		return false
	}
}

// Service is a DID document service entry pointing at an endpoint URI.
type Service struct {
	ID              string      `json:"id"`
	Type            ServiceType `json:"type"`
	ServiceEndpoint string      `json:"serviceEndpoint"`
}

// NewService validates and builds a service entry.
func NewService(id string, typ ServiceType, endpoint string) (*Service, error) {
	s := &Service{ID: id, Type: typ, ServiceEndpoint: endpoint}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Fragment returns the part of the id after the '#' delimiter.
func (s *Service) Fragment() string {
	_, fragment, _ := strings.Cut(s.ID, "#")
	return fragment
}

func (s *Service) validate() error {
	if s.ID == "" {
		return &ValidationError{Field: "id", Reason: "is required"}
	}
	if s.Fragment() == "" {
		return &ValidationError{Field: "id", Reason: "must be a DID URL with a fragment"}
	}

	if !s.Type.IsSupported() {
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unsupported service type %q", string(s.Type))}
	}

	if s.ServiceEndpoint == "" {
		return &ValidationError{Field: "serviceEndpoint", Reason: "is required"}
	}
	parsed, err := url.Parse(s.ServiceEndpoint)
	if err != nil || parsed.Scheme == "" {
		return &ValidationError{Field: "serviceEndpoint", Reason: "must be an absolute URI"}
	}

	return nil
}
