package main

import (
	"fmt"
	"os"

	"clay/internal/cli"
	"clay/internal/cli/commands"
	"clay/internal/config"

	"github.com/spf13/cobra"
)

var version = "0.8.0"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "clay [dirs...]",
		Short:   "Clay test suite generator",
		Long:    `Scans directories of C test files for test_<suite>__<name> functions and writes the clay_main.c and clay.h harness that registers them.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
