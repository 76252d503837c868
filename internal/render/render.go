// Package render turns a registry model into the generated harness sources.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"clay/internal/registry"
	"clay/internal/templates"
)

// Options controls how a model is rendered
type Options struct {
	PrintMethod string   // C expression used for clay_print(...)
	Modules     []string // Support modules appended to the main template
	MainFile    string   // Output name of the rendered main template
	HeaderFile  string   // Output name of the rendered header template
}

// Output holds the rendered sources
type Output struct {
	Main   string
	Header string
}

// Renderer renders models with templates from a Source
type Renderer struct {
	source  templates.Source
	options Options
}

// NewRenderer creates a new Renderer
func NewRenderer(source templates.Source, options Options) *Renderer {
	return &Renderer{
		source:  source,
		options: options,
	}
}

// Render substitutes the model into the main and header templates
func (r *Renderer) Render(model *registry.Model) (*Output, error) {
	modules, err := templates.LoadModules(r.source, r.options.Modules)
	if err != nil {
		return nil, err
	}

	mainTemplate, err := r.source.Load(templates.MainTemplate)
	if err != nil {
		return nil, err
	}
	headerTemplate, err := r.source.Load(templates.HeaderTemplate)
	if err != nil {
		return nil, err
	}

	mainText, err := Substitute(mainTemplate, map[string]string{
		"clay_print":     r.options.PrintMethod,
		"clay_modules":   modules,
		"suites_str":     strings.Join(model.SuiteNames(), ", "),
		"test_callbacks": callbackTable(model.Callbacks()),
		"cb_count":       strconv.Itoa(model.TestCount()),
		"test_suites":    suiteTable(model.Suites()),
		"suite_count":    strconv.Itoa(len(model.Suites())),
	})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", templates.MainTemplate, err)
	}

	headerText, err := Substitute(headerTemplate, map[string]string{
		"extern_declarations": strings.Join(model.Declarations(), "\n"),
	})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", templates.HeaderTemplate, err)
	}

	return &Output{Main: mainText, Header: headerText}, nil
}

// Write renders the model and writes both sources into the model's root,
// replacing existing files. Both sources are staged in temp files first and
// only renamed into place once both were written. It returns the written
// paths.
func (r *Renderer) Write(model *registry.Model) ([]string, error) {
	output, err := r.Render(model)
	if err != nil {
		return nil, err
	}

	files := []struct {
		name    string
		content string
	}{
		{r.options.MainFile, output.Main},
		{r.options.HeaderFile, output.Header},
	}

	var staged []string
	defer func() {
		// Clean up temp files left by a failed write
		for _, tempPath := range staged {
			os.Remove(tempPath)
		}
	}()

	for _, file := range files {
		finalPath := filepath.Join(model.Root(), file.name)
		if info, err := os.Stat(finalPath); err == nil && info.IsDir() {
			return nil, fmt.Errorf("write %s: is a directory", finalPath)
		}

		tempPath := filepath.Join(model.Root(), "."+file.name+".tmp")
		if err := os.WriteFile(tempPath, []byte(file.content), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", finalPath, err)
		}
		staged = append(staged, tempPath)
	}

	var written []string
	for i, file := range files {
		finalPath := filepath.Join(model.Root(), file.name)
		if err := os.Rename(staged[i], finalPath); err != nil {
			return written, fmt.Errorf("write %s: %w", finalPath, err)
		}
		written = append(written, finalPath)
	}
	return written, nil
}
