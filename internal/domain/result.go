package domain

import "time"

// CaseFile describes one written (or, in dry-run, planned) output file
type CaseFile struct {
	Source string `json:"source"`
	Name   string `json:"name"`
	Digest string `json:"sha256"`
	Size   int    `json:"size"`
}

// RunResult summarizes one invocation
type RunResult struct {
	Mode           Mode
	FilesScanned   int
	FilesWithCases int
	Cases          []CaseFile
	Duration       time.Duration
}

// CasesWritten returns the number of output files produced
func (r *RunResult) CasesWritten() int {
	return len(r.Cases)
}

// ManifestMeta contains metadata about a run
type ManifestMeta struct {
	Mode            string  `json:"mode"`
	FilesScanned    int     `json:"files_scanned"`
	FilesWithCases  int     `json:"files_with_cases"`
	CasesWritten    int     `json:"cases_written"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// Manifest is the complete JSON manifest structure
type Manifest struct {
	Meta  ManifestMeta `json:"meta"`
	Cases []CaseFile   `json:"cases"`
}
