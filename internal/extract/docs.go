package extract

import (
	"fmt"
	"regexp"
	"strings"

	"isolate/internal/domain"
)

// codeStart recognizes the first line of a Solidity sample
const codeStart = `(pragma solidity|contract.*\{|library.*\{|interface.*\{)`

var (
	underIndentedRe = regexp.MustCompile(`(?m)^\s{0,3}` + codeStart)
	indentedRe      = regexp.MustCompile(`(?m)^\s{4}` + codeStart)
)

// IndentationError reports a documentation code block whose declaration is
// indented by fewer than 4 spaces.
type IndentationError struct {
	Path  string
	Block string
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("indentation error in %s", e.Path)
}

// DocBlocks extracts Solidity samples from a documentation file. Samples are
// runs of lines starting with a space; empty lines inside a run are kept.
// Only runs whose declaration sits at exactly 4 spaces are returned. The
// first run with an under-indented declaration aborts extraction with an
// *IndentationError.
func DocBlocks(path string, data []byte) ([]domain.TestCase, error) {
	var blocks []*strings.Builder
	inside := false

	for _, line := range splitLines(data) {
		if line != "" {
			indented := strings.HasPrefix(line, " ")
			if !inside && indented {
				blocks = append(blocks, &strings.Builder{})
			}
			inside = indented
		}
		if inside {
			current := blocks[len(blocks)-1]
			current.WriteString(line)
			current.WriteByte('\n')
		}
	}

	var cases []domain.TestCase
	for _, b := range blocks {
		block := b.String()
		if underIndentedRe.MatchString(block) {
			return nil, &IndentationError{Path: path, Block: block}
		}
		if indentedRe.MatchString(block) {
			cases = append(cases, domain.TestCase{Source: path, Content: block})
		}
	}

	return cases, nil
}
