// Package export writes a registry model as a machine readable document.
package export

import (
	"fmt"
	"io"

	"clay/internal/domain"
	"clay/internal/registry"
)

// Exporter writes a model document to w
type Exporter interface {
	Export(w io.Writer, model *registry.Model) error
}

// Document is the exported form of a model
type Document struct {
	Root       string          `json:"root" yaml:"root"`
	SuiteCount int             `json:"suite_count" yaml:"suite_count"`
	TestCount  int             `json:"test_count" yaml:"test_count"`
	Suites     []SuiteDocument `json:"suites" yaml:"suites"`
}

// SuiteDocument is the exported form of one suite
type SuiteDocument struct {
	Name       string                 `json:"name" yaml:"name"`
	Initialize *domain.CallbackEntry  `json:"initialize,omitempty" yaml:"initialize,omitempty"`
	Cleanup    *domain.CallbackEntry  `json:"cleanup,omitempty" yaml:"cleanup,omitempty"`
	Offset     int                    `json:"offset" yaml:"offset"`
	Tests      []domain.CallbackEntry `json:"tests" yaml:"tests"`
}

// NewDocument converts a model
func NewDocument(model *registry.Model) Document {
	suites := model.Suites()
	doc := Document{
		Root:       model.Root(),
		SuiteCount: len(suites),
		TestCount:  model.TestCount(),
		Suites:     make([]SuiteDocument, 0, len(suites)),
	}
	for i, suite := range suites {
		doc.Suites = append(doc.Suites, SuiteDocument{
			Name:       suite.CleanName,
			Initialize: suite.Initialize,
			Cleanup:    suite.Cleanup,
			Offset:     suite.Offset,
			Tests:      model.SuiteCallbacks(i),
		})
	}
	return doc
}

// New returns the exporter for a format name ("json" or "yaml")
func New(format string) (Exporter, error) {
	switch format {
	case "json":
		return NewJSONExporter(), nil
	case "yaml", "yml":
		return NewYAMLExporter(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (expected json or yaml)", format)
	}
}
