package storage

import (
	"isolate/internal/domain"
)

// Storage persists and loads the manifest of a run
type Storage interface {
	Save(result *domain.RunResult) error
	Load() (*domain.Manifest, error)
}

// JSONStorage stores the manifest in a JSON file
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a Storage that reads/writes the manifest at path
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}
