package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"clay/internal/config"
	"clay/internal/export"
	"clay/internal/registry"
	"clay/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config) *ListCommand {
	return &ListCommand{config: cfg}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	var exporter export.Exporter
	if format := lc.config.Flags.Format; format != "" {
		var err error
		if exporter, err = export.New(format); err != nil {
			return err
		}
	}

	collector, err := newCollector(lc.config, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	formatter := ui.NewFormatterWithWriter(out, false)
	for _, dir := range args {
		model, err := collector.Collect(dir)
		if errors.Is(err, registry.ErrNoTests) {
			color.New(color.FgYellow).Fprintf(out, "No tests found in %s\n", dir)
			continue
		}
		if err != nil {
			return err
		}

		if exporter != nil {
			if err := exporter.Export(out, model); err != nil {
				return err
			}
			continue
		}
		formatter.PrintSuiteTree(model, lc.config.Flags.ShowTests)
	}
	return nil
}
