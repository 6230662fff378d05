package execution

import (
	"fmt"
	"os"

	"isolate/internal/domain"
	"isolate/internal/extract"
	"isolate/internal/writer"
)

// Runner isolates the test cases of a single source file
type Runner struct {
	writer *writer.Writer
	mode   domain.Mode
}

// NewRunner creates a new Runner
func NewRunner(w *writer.Writer, mode domain.Mode) *Runner {
	return &Runner{writer: w, mode: mode}
}

// Run reads path, extracts its test cases and writes them out
func (r *Runner) Run(path string) ([]domain.CaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}

	file := domain.NewSourceFile(path, r.mode)
	cases, err := extract.ForFile(file, data)
	if err != nil {
		return nil, err
	}

	return r.writer.Write(file.Name, cases, r.mode)
}
