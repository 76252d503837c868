package export

import (
	"encoding/json"
	"fmt"
	"io"

	"clay/internal/registry"
)

// JSONExporter writes indented JSON
type JSONExporter struct{}

// NewJSONExporter creates a new JSONExporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export writes the model as JSON
func (e *JSONExporter) Export(w io.Writer, model *registry.Model) error {
	data, err := json.MarshalIndent(NewDocument(model), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}
