package commands

import (
	"github.com/spf13/cobra"

	"clay/internal/config"
	"clay/internal/ui"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	config *config.Config
	viewer ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(cfg *config.Config) *BrowseCommand {
	return &BrowseCommand{
		config: cfg,
		viewer: ui.NewSuiteBrowser(),
	}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	collector, err := newCollector(bc.config, nil)
	if err != nil {
		return err
	}

	model, err := collector.Collect(args[0])
	if err != nil {
		return err
	}

	return bc.viewer.View(model)
}
