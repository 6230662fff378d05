package domain

import "path/filepath"

// SourceFile represents an input file and the mode used to extract from it
type SourceFile struct {
	Path string // Path as found by the scanner
	Name string // Just the filename, used to name output files
	Mode Mode
}

// NewSourceFile builds a SourceFile from a path
func NewSourceFile(path string, mode Mode) SourceFile {
	return SourceFile{
		Path: path,
		Name: filepath.Base(path),
		Mode: mode,
	}
}

// TestCase is a single extracted snippet. Content holds every line of the
// snippet terminated by a newline.
type TestCase struct {
	Source  string
	Content string
}
