package ui

import "clay/internal/registry"

// Viewer displays a registry model interactively
type Viewer interface {
	View(model *registry.Model) error
}
