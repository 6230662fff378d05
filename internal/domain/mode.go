package domain

// DocsArg is the positional argument that switches extraction to documentation mode
const DocsArg = "docs"

// Mode selects how source files are turned into test cases
type Mode int

const (
	// ModeRaw extracts raw-string literals from sources, or passes .sol files through
	ModeRaw Mode = iota
	// ModeDocs extracts indented code blocks from documentation files
	ModeDocs
)

// ParseMode maps the optional second CLI argument to a Mode.
// Anything other than exactly "docs" is raw mode.
func ParseMode(arg string) Mode {
	if arg == DocsArg {
		return ModeDocs
	}
	return ModeRaw
}

func (m Mode) String() string {
	if m == ModeDocs {
		return "docs"
	}
	return "raw"
}
