package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"isolate/internal/domain"
	"isolate/internal/extract"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter() *Formatter {
	return &Formatter{out: os.Stdout}
}

// NewFormatterTo creates a new Formatter writing to w
func NewFormatterTo(w io.Writer) *Formatter {
	return &Formatter{out: w}
}

// PrintIndentationError prints the offending file and block in the form
//
//	Indentation error in docs/contracts.rst:
//	   contract Foo {
//	   }
func (f *Formatter) PrintIndentationError(err *extract.IndentationError) {
	color.New(color.FgRed).Fprintf(f.out, "Indentation error in %s:", err.Path)
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, err.Block)
}

// PrintCaseList prints the files a dry run would write, grouped by source.
func (f *Formatter) PrintCaseList(cases []domain.CaseFile) {
	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "No test cases found")
		return
	}

	color.New(color.FgGreen).Fprintf(f.out, "Found %d test case(s):\n\n", len(cases))

	// Group consecutive cases by source; the runner emits them file by file
	var groups [][]domain.CaseFile
	for i, c := range cases {
		if i == 0 || cases[i-1].Source != c.Source {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], c)
	}

	cyan := color.New(color.FgCyan)
	for i, group := range groups {
		isLastFile := i == len(groups)-1
		if isLastFile {
			cyan.Fprintf(f.out, "└── %s\n", group[0].Source)
		} else {
			cyan.Fprintf(f.out, "├── %s\n", group[0].Source)
		}

		for j, c := range group {
			isLastCase := j == len(group)-1

			var prefix string
			if isLastFile {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}
			fmt.Fprintf(f.out, "%s%s\n", prefix, color.YellowString(c.Name))
		}
	}
}

// PrintSummary prints statistics for a finished run
func (f *Formatter) PrintSummary(result *domain.RunResult, outputDir string) {
	cyan := color.New(color.FgCyan)
	white := color.New(color.FgWhite)

	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	rows := []struct {
		label string
		value string
	}{
		{"Mode", result.Mode.String()},
		{"Files Scanned", fmt.Sprint(result.FilesScanned)},
		{"Files With Cases", fmt.Sprint(result.FilesWithCases)},
		{"Cases Written", fmt.Sprint(result.CasesWritten())},
		{"Output Directory", outputDir},
		{"Duration", fmt.Sprintf("%.2fs", result.Duration.Seconds())},
	}
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row.label)
		white.Fprintf(f.out, "%-27s │\n", row.value)
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if result.CasesWritten() == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "No test cases found")
		return
	}
	cyan.Fprintf(f.out, "✓ %d test case(s) isolated\n", result.CasesWritten())
}
