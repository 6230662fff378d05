package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar reports how many source files have been processed
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	cases int
}

// NewProgressBar creates a new progress bar for count files
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// FileDone advances the bar by one file that produced cases test cases
func (p *ProgressBar) FileDone(cases int) {
	p.cases += cases
	p.bar.Describe(describe(p.cases))
	p.bar.Add(1)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

// Abort removes the unfinished bar so that following output starts on a
// clean line
func (p *ProgressBar) Abort() {
	p.bar.Clear()
}

func describe(cases int) string {
	return color.CyanString("Isolating: ") + color.GreenString("[cases: %d]", cases)
}
