package config

const (
	// DefaultOutputDir is where test case files are written
	DefaultOutputDir = "."
	// DefaultEnvFile is the optional dotenv file read on startup
	DefaultEnvFile = ".env"

	// EnvOutputDir overrides DefaultOutputDir
	EnvOutputDir = "ISOLATE_OUT_DIR"
	// EnvExclude overrides DefaultExcludeDirs (comma separated)
	EnvExclude = "ISOLATE_EXCLUDE"
)

// DefaultExcludeDirs are the directories never descended into when walking
var DefaultExcludeDirs = []string{
	"_build",
	"compilationTests",
}
