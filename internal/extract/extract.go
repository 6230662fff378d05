// Package extract turns the raw bytes of a source file into test cases.
package extract

import (
	"strings"

	"isolate/internal/domain"
)

// SolidityExt marks files that are already a single test case
const SolidityExt = ".sol"

// ForFile picks the extractor for a file: docs mode always uses the
// indented-block extractor, .sol files pass through whole, everything else
// goes through the raw-string extractor.
func ForFile(file domain.SourceFile, data []byte) ([]domain.TestCase, error) {
	if file.Mode == domain.ModeDocs {
		return DocBlocks(file.Path, data)
	}
	if strings.HasSuffix(file.Name, SolidityExt) {
		return []domain.TestCase{{Source: file.Path, Content: string(data)}}, nil
	}
	cases := RawStrings(data)
	for i := range cases {
		cases[i].Source = file.Path
	}
	return cases, nil
}

// splitLines treats \n, \r\n and \r as line terminators. A trailing
// terminator does not produce an empty last line.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
