package config

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ErrInvalidReportMode is returned for an unknown report mode
var ErrInvalidReportMode = errors.New("invalid report mode")

// Config holds all configuration for the application
type Config struct {
	// Template settings
	TemplateDir string   `mapstructure:"template_dir"`
	Modules     []string `mapstructure:"modules"`

	// Output settings
	ReportTo   string `mapstructure:"report_to"`
	MainFile   string `mapstructure:"main_file"`
	HeaderFile string `mapstructure:"header_file"`

	// Discovery settings
	Extension string   `mapstructure:"extension"`
	Exclude   []string `mapstructure:"exclude"`

	// Console settings
	Quiet    bool `mapstructure:"quiet"`
	Progress bool `mapstructure:"progress"`

	// Command flags
	Flags Flags `mapstructure:"-"`
}

// Flags holds command-line flags
type Flags struct {
	ClayPath  string
	ReportTo  string
	Exclude   []string
	Quiet     bool
	Progress  bool
	Format    string
	ShowTests bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Modules:    slices.Clone(DefaultSupportModules),
		ReportTo:   DefaultReportTo,
		MainFile:   DefaultMainFile,
		HeaderFile: DefaultHeaderFile,
		Extension:  DefaultExtension,
	}
}

// Apply stores flags and lets the ones that were set override the config
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.ClayPath != "" {
		c.TemplateDir = flags.ClayPath
	}
	if flags.ReportTo != "" {
		c.ReportTo = flags.ReportTo
	}
	if len(flags.Exclude) > 0 {
		c.Exclude = append(c.Exclude, flags.Exclude...)
	}
	if flags.Quiet {
		c.Quiet = true
	}
	if flags.Progress {
		c.Progress = true
	}
}

// PrintMethod returns the C print expression for the configured report mode
func (c *Config) PrintMethod() (string, error) {
	return PrintMethod(c.ReportTo)
}

// Reserved returns the output names that must never be scanned as input
func (c *Config) Reserved() []string {
	return []string{c.MainFile, c.HeaderFile}
}

// PrintMethod returns the C print expression for a report mode
func PrintMethod(mode string) (string, error) {
	method, ok := printMethods[mode]
	if !ok {
		return "", fmt.Errorf("%w %q (expected one of %s)", ErrInvalidReportMode, mode, strings.Join(ReportModes(), ", "))
	}
	return method, nil
}

// ReportModes returns the recognized report modes
func ReportModes() []string {
	modes := make([]string, 0, len(printMethods))
	for mode := range printMethods {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	return modes
}
