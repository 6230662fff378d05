// Package writer stores extracted test cases as individual files.
package writer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"isolate/internal/domain"
)

// indentRe matches the single 4-space indent removed from docs samples
var indentRe = regexp.MustCompile(`(?m)^ {4}`)

var nameReplacer = strings.NewReplacer(".", "_", "-", "_", " ", "_")

// Writer writes test cases into a directory
type Writer struct {
	dir    string
	dryRun bool
}

// New creates a Writer for the given output directory. With dryRun set,
// Write computes names without touching the filesystem.
func New(dir string, dryRun bool) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, dryRun: dryRun}
}

// Dir returns the output directory
func (w *Writer) Dir() string {
	return w.dir
}

// Sanitize turns a source filename into the token used in output names
func Sanitize(name string) string {
	return strings.ToLower(nameReplacer.Replace(name))
}

// Digest returns the hex sha256 of content
func Digest(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Write stores every non-blank case under test_<sha256>_<source>.sol,
// overwriting files of the same name. Docs samples lose one level of 4-space
// indentation; the digest is always taken over the unstripped case.
func (w *Writer) Write(source string, cases []domain.TestCase, mode domain.Mode) ([]domain.CaseFile, error) {
	if len(cases) == 0 {
		return nil, nil
	}

	if !w.dryRun {
		if err := os.MkdirAll(w.dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	var written []domain.CaseFile
	for _, tc := range cases {
		if strings.TrimSpace(tc.Content) == "" {
			continue
		}

		content := tc.Content
		if mode == domain.ModeDocs {
			content = indentRe.ReplaceAllString(content, "")
		}

		digest := Digest(tc.Content)
		name := fmt.Sprintf("test_%s_%s.sol", digest, Sanitize(source))

		if !w.dryRun {
			if err := os.WriteFile(filepath.Join(w.dir, name), []byte(content), 0644); err != nil {
				return written, fmt.Errorf("write %s: %w", name, err)
			}
		}

		written = append(written, domain.CaseFile{
			Source: tc.Source,
			Name:   name,
			Digest: digest,
			Size:   len(content),
		})
	}

	return written, nil
}
