// Package canonical normalizes JSON-LD documents, used to compute a stable
// RDF view of a DID document before digesting or comparing it.
package canonical

import (
	"errors"
	"fmt"
	"strings"

	"github.com/piprate/json-gold/ld"
)

const (
	format             = "application/n-quads"
	defaultAlgorithm   = "URDNA2015"
	handleNormalizeErr = "error while parsing N-Quads; invalid quad. line:"
)

// ErrInvalidRDFFound is returned when the normalized view contains invalid RDF.
var ErrInvalidRDFFound = errors.New("invalid JSON-LD context")

// Options holds configuration for JSON-LD normalization.
type Options struct {
	RemoveInvalidRDF bool
	ValidateRDF      bool
	DocumentLoader   ld.DocumentLoader
	Algorithm        string
}

// Opt configures a normalization run.
type Opt func(*Options)

// WithDocumentLoader passes a custom JSON-LD document loader, letting callers
// cache or pin remote contexts.
func WithDocumentLoader(loader ld.DocumentLoader) Opt {
	return func(opts *Options) {
		opts.DocumentLoader = loader
	}
}

// WithAlgorithm overrides the RDF dataset normalization algorithm.
func WithAlgorithm(algorithm string) Opt {
	return func(opts *Options) {
		opts.Algorithm = algorithm
	}
}

// WithValidateRDF fails normalization if the view contains invalid RDF.
func WithValidateRDF() Opt {
	return func(opts *Options) {
		opts.ValidateRDF = true
	}
}

// WithRemoveAllInvalidRDF drops invalid RDF from the normalized view instead
// of failing.
func WithRemoveAllInvalidRDF() Opt {
	return func(opts *Options) {
		opts.RemoveInvalidRDF = true
	}
}

// Processor is a JSON-LD processor for DID documents.
type Processor struct {
	algorithm string
}

// NewProcessor returns a processor using the given algorithm, or the default
// when empty.
func NewProcessor(algorithm string) *Processor {
	if algorithm == "" {
		return Default()
	}
	return &Processor{algorithm}
}

// Default returns a processor with the default RDF dataset algorithm.
func Default() *Processor {
	return &Processor{defaultAlgorithm}
}

func prepareOptions(opts []Opt) *Options {
	prepared := &Options{
		DocumentLoader: ld.NewDefaultDocumentLoader(nil),
		Algorithm:      defaultAlgorithm,
	}
	for _, opt := range opts {
		opt(prepared)
	}
	return prepared
}

// Normalize returns the canonical RDF dataset of a JSON-LD document.
func Normalize(doc map[string]interface{}, opts ...Opt) ([]byte, error) {
	prepared := prepareOptions(opts)

	return NewProcessor(prepared.Algorithm).GetCanonicalDocument(doc, opts...)
}

// GetCanonicalDocument returns the canonized form of the given JSON-LD.
func (p *Processor) GetCanonicalDocument(doc map[string]interface{}, opts ...Opt) ([]byte, error) {
	prepared := prepareOptions(opts)

	ldOptions := ld.NewJsonLdOptions("")
	ldOptions.ProcessingMode = ld.JsonLd_1_1
	ldOptions.Algorithm = p.algorithm
	ldOptions.Format = format
	ldOptions.ProduceGeneralizedRdf = true
	ldOptions.DocumentLoader = prepared.DocumentLoader

	proc := ld.NewJsonLdProcessor()

	view, err := proc.Normalize(doc, ldOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize JSON-LD document: %w", err)
	}

	result, ok := view.(string)
	if !ok {
		return nil, errors.New("failed to normalize JSON-LD document, invalid view")
	}

	result, err = p.removeMatchingInvalidRDFs(result, prepared)
	if err != nil {
		return nil, err
	}

	return []byte(result), nil
}

// removeMatchingInvalidRDFs validates the normalized view to find any invalid
// RDF and returns the filtered view after removing the invalid lines.
func (p *Processor) removeMatchingInvalidRDFs(view string, opts *Options) (string, error) {
	if !opts.RemoveInvalidRDF && !opts.ValidateRDF {
		return view, nil
	}

	views := strings.Split(view, "\n")
	var filteredViews []string
	var foundInvalid bool

	for _, v := range views {
		if _, err := ld.ParseNQuads(v); err != nil {
			if !strings.Contains(err.Error(), handleNormalizeErr) {
				return "", err
			}
			foundInvalid = true
			continue
		}
		filteredViews = append(filteredViews, v)
	}

	if !foundInvalid {
		return view, nil
	} else if opts.ValidateRDF {
		return "", ErrInvalidRDFFound
	}

	return p.normalizeFilteredDataset(strings.Join(filteredViews, "\n"))
}

// normalizeFilteredDataset recreates JSON-LD from the RDF view and returns
// the normalized RDF dataset of the recreated document.
func (p *Processor) normalizeFilteredDataset(view string) (string, error) {
	ldOptions := ld.NewJsonLdOptions("")
	ldOptions.ProcessingMode = ld.JsonLd_1_1
	ldOptions.Algorithm = p.algorithm
	ldOptions.Format = format

	proc := ld.NewJsonLdProcessor()
	filteredJSONLd, err := proc.FromRDF(view, ldOptions)
	if err != nil {
		return "", err
	}

	result, err := proc.Normalize(filteredJSONLd, ldOptions)
	if err != nil {
		return "", err
	}

	return result.(string), nil
}
