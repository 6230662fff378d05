package extract

import (
	"testing"

	"isolate/internal/domain"
)

func TestForFile(t *testing.T) {
	raw := []byte("x = R\"(\ncontract A {}\n)\";\n")

	t.Run("raw mode extracts raw strings", func(t *testing.T) {
		file := domain.NewSourceFile("test/libsolidity/Parser.cpp", domain.ModeRaw)
		cases, err := ForFile(file, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cases) != 1 || cases[0].Content != "contract A {}\n" {
			t.Fatalf("unexpected cases: %q", cases)
		}
		if cases[0].Source != file.Path {
			t.Errorf("expected source %q, got %q", file.Path, cases[0].Source)
		}
	})

	t.Run("sol files pass through whole", func(t *testing.T) {
		file := domain.NewSourceFile("test/cases/a.sol", domain.ModeRaw)
		content := []byte("contract A {}\n")
		cases, err := ForFile(file, content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cases) != 1 || cases[0].Content != string(content) {
			t.Fatalf("unexpected cases: %q", cases)
		}
	})

	t.Run("docs mode ignores the extension", func(t *testing.T) {
		file := domain.NewSourceFile("docs/a.sol", domain.ModeDocs)
		cases, err := ForFile(file, []byte("contract A {}\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cases) != 0 {
			t.Fatalf("expected no cases, got %q", cases)
		}
	})

	t.Run("docs mode on a raw-string source finds nothing", func(t *testing.T) {
		file := domain.NewSourceFile("test/Parser.cpp", domain.ModeDocs)
		cases, err := ForFile(file, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cases) != 0 {
			t.Fatalf("expected no cases, got %q", cases)
		}
	})
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single newline", input: "\n", expected: []string{""}},
		{name: "no trailing newline", input: "a\nb", expected: []string{"a", "b"}},
		{name: "trailing newline", input: "a\nb\n", expected: []string{"a", "b"}},
		{name: "mixed terminators", input: "a\r\nb\rc\n", expected: []string{"a", "b", "c"}},
		{name: "blank lines kept", input: "a\n\nb\n", expected: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := splitLines([]byte(tt.input))
			if len(lines) != len(tt.expected) {
				t.Fatalf("expected %q, got %q", tt.expected, lines)
			}
			for i := range lines {
				if lines[i] != tt.expected[i] {
					t.Errorf("line %d: expected %q, got %q", i, tt.expected[i], lines[i])
				}
			}
		})
	}
}
