package commands

import (
	"isolate/internal/cli"
	"isolate/internal/config"
	"isolate/internal/discovery"
	"isolate/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Isolate *IsolateCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	filter := discovery.NewFilter()
	formatter := ui.NewFormatter()

	return &Commands{
		Isolate: NewIsolateCommand(cfg, filter, formatter),
	}
}

// Register wires the isolate command into the root command. The root
// command itself takes <path> [docs].
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Use = "isolate <path> [docs]"
	rootCmd.Args = cobra.RangeArgs(1, 2)
	rootCmd.RunE = c.Isolate.Execute
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		flags.SetArgs(args)
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}

	rootCmd.Flags().StringVarP(&flags.OutputDir, "out", "o", "", "Directory to write test case files to (default: current directory)")
	rootCmd.Flags().StringArrayVar(&flags.Exclude, "exclude", nil, "Directory name to skip while walking; repeatable, replaces the defaults (_build, compilationTests)")
	rootCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Only process files whose name matches a pattern (supports wildcards, e.g., '*.cpp' or '*Parser*')")
	rootCmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "List the files that would be written without writing them")
	rootCmd.Flags().StringVar(&flags.ManifestPath, "manifest", "", "Also write a JSON manifest of the written test cases to this file")
	rootCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while processing a directory")
	rootCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print a summary when done")
}
