package main

import (
	"errors"
	"fmt"
	"os"

	"isolate/internal/cli"
	"isolate/internal/cli/commands"
	"isolate/internal/config"
	"isolate/internal/extract"
	"isolate/internal/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Short: "Isolate Solidity test cases into individual files",
		Long: `Extracts the Solidity sources embedded in C++ tests (raw string literals) or,
with the "docs" argument, the 4-space indented samples of documentation files,
and writes each one to test_<sha256>_<source>.sol, e.g. to seed a fuzzer.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config from defaults, .env and environment
	cfg := config.Load(config.Flags{})

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		var indentErr *extract.IndentationError
		if errors.As(err, &indentErr) {
			ui.NewFormatter().PrintIndentationError(indentErr)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
