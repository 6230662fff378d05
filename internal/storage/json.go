package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"isolate/internal/domain"
)

// Save writes the run summary and every written case to the manifest file.
func (s *JSONStorage) Save(result *domain.RunResult) error {
	cases := result.Cases
	if cases == nil {
		cases = []domain.CaseFile{}
	}

	output := domain.Manifest{
		Meta: domain.ManifestMeta{
			Mode:            result.Mode.String(),
			FilesScanned:    result.FilesScanned,
			FilesWithCases:  result.FilesWithCases,
			CasesWritten:    result.CasesWritten(),
			Duration:        result.Duration.String(),
			DurationSeconds: result.Duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Cases: cases,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Load reads a manifest written by Save.
func (s *JSONStorage) Load() (*domain.Manifest, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var output domain.Manifest
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &output, nil
}
