// Package templates loads the harness templates and support modules that
// the generated registry is rendered into.
package templates

import (
	"bytes"
	"compress/zlib"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

//go:generate go run mkbundle.go

const (
	// MainTemplate is the template of the generated test runner
	MainTemplate = "clay.c"
	// HeaderTemplate is the template of the generated declarations header
	HeaderTemplate = "clay.h"
)

// bundle holds the zlib-compressed copies of the files under src/
//
//go:embed bundle/*.z
var bundle embed.FS

// Source provides template files by name
type Source interface {
	Load(name string) (string, error)
}

// New returns a Dir source when dir is set, the bundled source otherwise
func New(dir string) Source {
	if dir != "" {
		return NewDir(dir)
	}
	return NewBundled()
}

// Bundled serves the templates compiled into the binary
type Bundled struct{}

// NewBundled creates a new Bundled source
func NewBundled() *Bundled {
	return &Bundled{}
}

// Load decompresses the bundled copy of name
func (b *Bundled) Load(name string) (string, error) {
	compressed, err := bundle.ReadFile("bundle/" + name + ".z")
	if err != nil {
		return "", fmt.Errorf("bundled template %s: %w", name, err)
	}

	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", fmt.Errorf("decompress template %s: %w", name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decompress template %s: %w", name, err)
	}
	return string(data), nil
}

// Dir serves templates from a directory on disk
type Dir struct {
	path string
}

// NewDir creates a Dir source rooted at path
func NewDir(path string) *Dir {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Dir{path: path}
}

// Load reads name from the directory
func (d *Dir) Load(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(d.path, name))
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(data), nil
}

// LoadModules loads the named support modules and joins them with newlines
func LoadModules(src Source, names []string) (string, error) {
	modules := make([]string, 0, len(names))
	for _, name := range names {
		content, err := src.Load(name)
		if err != nil {
			return "", err
		}
		modules = append(modules, content)
	}
	return strings.Join(modules, "\n"), nil
}
