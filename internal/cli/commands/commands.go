package commands

import (
	"fmt"
	"os"

	"clay/internal/cli"
	"clay/internal/config"
	"clay/internal/discovery"
	"clay/internal/registry"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
	Browse   *BrowseCommand
}

// NewCommands creates all commands. cfg is filled in before any of them runs.
func NewCommands(cfg *config.Config) *Commands {
	return &Commands{
		Generate: NewGenerateCommand(cfg),
		List:     NewListCommand(cfg),
		Browse:   NewBrowseCommand(cfg),
	}
}

// Register registers all commands with cobra. The root command itself
// generates, so `clay <dirs>` and `clay generate <dirs>` are equivalent.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		loaded, err := config.NewLoader(wd).Load()
		if err != nil {
			return err
		}
		*cfg = *loaded

		// Update config with flags after parsing
		cfg.Apply(flags.ToConfigFlags())
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return nil
	}
	rootCmd.PersistentFlags().StringArrayVarP(&flags.Exclude, "exclude", "x", nil, "Skip source files and directories matching a glob pattern (repeatable, e.g. 'core/*' or '*_slow.c')")
	rootCmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Only report errors")

	rootCmd.Args = cobra.MinimumNArgs(1)
	rootCmd.RunE = c.Generate.Execute
	addGenerateFlags(rootCmd, flags)

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate [dirs...]",
		Short: "Generate the test harness of each directory",
		Long:  "Scan each directory for test functions and write clay_main.c and clay.h into it",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.Generate.Execute,
	}
	addGenerateFlags(generateCmd, flags)
	rootCmd.AddCommand(generateCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [dirs...]",
		Short: "List discovered suites",
		Long:  "Scan each directory and print its suites without writing any file",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.List.Execute,
	}
	listCmd.Flags().BoolVarP(&flags.ShowTests, "tests", "t", false, "Show the tests and hooks of every suite")
	listCmd.Flags().StringVarP(&flags.Format, "format", "f", "", "Print the model as json or yaml instead of a tree")
	rootCmd.AddCommand(listCmd)

	// Browse command
	browseCmd := &cobra.Command{
		Use:   "browse <dir>",
		Short: "Browse discovered suites interactively",
		Long:  "Display the suites, tests and hooks of a directory in an interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Browse.Execute,
	}
	rootCmd.AddCommand(browseCmd)
}

func addGenerateFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.ClayPath, "clay-path", "c", "", "Directory holding the clay templates (bundled templates when empty)")
	cmd.Flags().StringVarP(&flags.ReportTo, "report-to", "v", "", "Where the harness prints results: stdout, stderr or silent (default \"stdout\")")
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while loading suites")
}

// newCollector wires the discovery pipeline for the current configuration
func newCollector(cfg *config.Config, observer registry.Observer) (*registry.Collector, error) {
	filter, err := discovery.NewFilter(cfg.Exclude)
	if err != nil {
		return nil, err
	}
	scanner := discovery.NewScanner(cfg.Extension, filter, cfg.Reserved()...)
	return registry.NewCollector(scanner, discovery.NewMatcher(), observer), nil
}
