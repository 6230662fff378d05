package cli

import (
	"isolate/internal/config"
	"isolate/internal/domain"
)

// Flags holds command-line flags and positional arguments
type Flags struct {
	Path         string
	ModeArg      string
	OutputDir    string
	Exclude      []string
	NameFilter   string
	DryRun       bool
	ManifestPath string
	Progress     bool
	Verbose      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Path:         f.Path,
		Mode:         domain.ParseMode(f.ModeArg),
		OutputDir:    f.OutputDir,
		Exclude:      f.Exclude,
		NameFilter:   f.NameFilter,
		DryRun:       f.DryRun,
		ManifestPath: f.ManifestPath,
		Progress:     f.Progress,
		Verbose:      f.Verbose,
	}
}

// SetArgs stores the positional arguments: <path> [docs]
func (f *Flags) SetArgs(args []string) {
	f.Path = ""
	f.ModeArg = ""
	if len(args) > 0 {
		f.Path = args[0]
	}
	if len(args) > 1 {
		f.ModeArg = args[1]
	}
}
