package commands

import (
	"fmt"

	"isolate/internal/config"
	"isolate/internal/discovery"
	"isolate/internal/domain"
	"isolate/internal/execution"
	"isolate/internal/storage"
	"isolate/internal/ui"
	"isolate/internal/writer"

	"github.com/spf13/cobra"
)

// IsolateCommand extracts test cases from a file or directory tree
type IsolateCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewIsolateCommand creates a new IsolateCommand
func NewIsolateCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *IsolateCommand {
	return &IsolateCommand{
		config:    cfg,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (ic *IsolateCommand) Execute(cmd *cobra.Command, args []string) error {
	result, err := ic.Run(ic.config.Flags.Path)
	if err != nil {
		return err
	}

	if ic.config.Flags.DryRun {
		ic.formatter.PrintCaseList(result.Cases)
	}
	if ic.config.Flags.Verbose {
		ic.formatter.PrintSummary(result, ic.config.OutputDir)
	}
	return nil
}

// Run processes path, a single file or a directory tree, and writes the
// manifest when one was requested
func (ic *IsolateCommand) Run(path string) (*domain.RunResult, error) {
	// Discover sources
	scanner := discovery.NewScanner(ic.config.ExcludeDirs)
	files, err := scanner.Scan(path)
	if err != nil {
		return nil, err
	}

	// Filter sources
	files = ic.filter.FilterByName(files, ic.config.Flags.NameFilter)

	mode := ic.config.Mode()
	w := writer.New(ic.config.OutputDir, ic.config.Flags.DryRun)
	executor := execution.NewSequential(execution.NewRunner(w, mode), mode)
	if ic.config.Flags.Progress && len(files) > 1 {
		executor.SetProgress(ui.NewProgressBar(len(files)))
	}

	result, err := executor.Execute(files)
	if err != nil {
		return result, err
	}

	if ic.config.ManifestPath != "" && !ic.config.Flags.DryRun {
		var st storage.Storage = storage.NewJSONStorage(ic.config.ManifestPath)
		if err := st.Save(result); err != nil {
			return result, fmt.Errorf("failed to save manifest: %w", err)
		}
	}

	return result, nil
}
