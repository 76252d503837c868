package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"clay/internal/registry"
)

// YAMLExporter writes YAML
type YAMLExporter struct{}

// NewYAMLExporter creates a new YAMLExporter
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Export writes the model as YAML
func (e *YAMLExporter) Export(w io.Writer, model *registry.Model) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(model)); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return enc.Close()
}
