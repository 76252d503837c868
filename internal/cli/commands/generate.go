package commands

import (
	"os"

	"clay/internal/config"
	"clay/internal/render"
	"clay/internal/templates"
	"clay/internal/ui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	config *config.Config
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(cfg *config.Config) *GenerateCommand {
	return &GenerateCommand{config: cfg}
}

// Execute runs the command. Directories are processed in order and the
// first failure aborts the run.
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	printMethod, err := gc.config.PrintMethod()
	if err != nil {
		return err
	}

	formatter := ui.NewFormatterWithWriter(cmd.OutOrStdout(), gc.config.Quiet)
	collector, err := newCollector(gc.config, ui.NewReporter(formatter, gc.showProgress()))
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(templates.New(gc.config.TemplateDir), render.Options{
		PrintMethod: printMethod,
		Modules:     gc.config.Modules,
		MainFile:    gc.config.MainFile,
		HeaderFile:  gc.config.HeaderFile,
	})

	for _, dir := range args {
		model, err := collector.Collect(dir)
		if err != nil {
			return err
		}
		if _, err := renderer.Write(model); err != nil {
			return err
		}
		formatter.Written(model.Root())
	}
	return nil
}

func (gc *GenerateCommand) showProgress() bool {
	return gc.config.Progress && !gc.config.Quiet && term.IsTerminal(int(os.Stderr.Fd()))
}
