package extract

import (
	"regexp"
	"strings"

	"isolate/internal/domain"
)

// rawOpenRe matches a line ending in a raw-string opener such as R"ABC(
var rawOpenRe = regexp.MustCompile(`R"([^(]*)\($`)

// RawStrings collects the bodies of multi-line raw-string literals.
//
//	char const* text = R"DELIMITER(
//	    contract C {}
//	)DELIMITER";
//
// A block closes on the first trimmed line ending in )DELIMITER"; and that
// line is not part of the case. A literal left open at end of file is
// returned as it stands.
func RawStrings(data []byte) []domain.TestCase {
	var cases []domain.TestCase
	var buf strings.Builder
	inside := false
	delimiter := ""

	for _, line := range splitLines(data) {
		trimmed := strings.TrimSpace(line)
		if inside {
			if strings.HasSuffix(trimmed, ")"+delimiter+`";`) {
				cases = append(cases, domain.TestCase{Content: buf.String()})
				buf.Reset()
				inside = false
				continue
			}
			buf.WriteString(line)
			buf.WriteByte('\n')
			continue
		}

		if m := rawOpenRe.FindStringSubmatch(trimmed); m != nil {
			inside = true
			delimiter = m[1]
			buf.Reset()
		}
	}

	if inside {
		cases = append(cases, domain.TestCase{Content: buf.String()})
	}

	return cases
}
