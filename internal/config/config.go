package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"isolate/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	// Output settings
	OutputDir    string
	ManifestPath string

	// Directories to skip when walking
	ExcludeDirs []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Path         string
	Mode         domain.Mode
	OutputDir    string
	Exclude      []string
	NameFilter   string
	DryRun       bool
	ManifestPath string
	Progress     bool
	Verbose      bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		OutputDir: DefaultOutputDir,
	}
	// Copy default excludes
	cfg.ExcludeDirs = make([]string, len(DefaultExcludeDirs))
	copy(cfg.ExcludeDirs, DefaultExcludeDirs)
	return cfg
}

// Load creates a config from defaults, the optional .env file, the
// environment and finally the flags
func Load(flags Flags) *Config {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(DefaultEnvFile)

	cfg := New()
	cfg.applyEnv()
	cfg.Apply(flags)
	return cfg
}

// Apply stores the flags and lets the ones that were set override defaults
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if len(flags.Exclude) > 0 {
		c.ExcludeDirs = append([]string(nil), flags.Exclude...)
	}
	if flags.ManifestPath != "" {
		c.ManifestPath = flags.ManifestPath
	}
}

func (c *Config) applyEnv() {
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.OutputDir = dir
	}
	if exclude := os.Getenv(EnvExclude); exclude != "" {
		c.ExcludeDirs = splitList(exclude)
	}
}

// Mode returns the extraction mode selected on the command line
func (c *Config) Mode() domain.Mode {
	return c.Flags.Mode
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
