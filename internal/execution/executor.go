package execution

import (
	"time"

	"isolate/internal/domain"
)

// Executor processes source files and returns a summary
type Executor interface {
	Execute(files []string) (*domain.RunResult, error)
}

// Progress is told about every processed file; ui.ProgressBar implements it
type Progress interface {
	FileDone(cases int)
	Finish()
	Abort()
}

var _ Executor = (*Sequential)(nil)

// Sequential processes files one at a time and stops on the first error
type Sequential struct {
	runner   *Runner
	mode     domain.Mode
	progress Progress
}

// NewSequential creates a new Sequential executor
func NewSequential(runner *Runner, mode domain.Mode) *Sequential {
	return &Sequential{runner: runner, mode: mode}
}

// SetProgress sets the progress bar updated after every file
func (s *Sequential) SetProgress(progress Progress) {
	s.progress = progress
}

// Execute runs every file through the runner. The result gathered so far is
// returned alongside an error.
func (s *Sequential) Execute(files []string) (*domain.RunResult, error) {
	start := time.Now()
	result := &domain.RunResult{Mode: s.mode}

	for _, path := range files {
		written, err := s.runner.Run(path)
		if err != nil {
			if s.progress != nil {
				s.progress.Abort()
			}
			result.Duration = time.Since(start)
			return result, err
		}

		result.FilesScanned++
		if len(written) > 0 {
			result.FilesWithCases++
			result.Cases = append(result.Cases, written...)
		}
		if s.progress != nil {
			s.progress.FileDone(len(written))
		}
	}

	if s.progress != nil {
		s.progress.Finish()
	}
	result.Duration = time.Since(start)
	return result, nil
}
