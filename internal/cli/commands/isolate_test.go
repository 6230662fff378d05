package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"isolate/internal/cli"
	"isolate/internal/config"
	"isolate/internal/extract"
	"isolate/internal/storage"
	"isolate/internal/writer"

	"github.com/spf13/cobra"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func newRoot(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{Use: "isolate", SilenceUsage: true, SilenceErrors: true}
	var flags cli.Flags
	NewCommands(cfg).Register(rootCmd, &flags, cfg)
	return rootCmd
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd := newRoot(config.New())
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func outputNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read %s: %v", dir, err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestIsolate_SingleFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "ex.cpp")
	writeFile(t, src, "R\"ABC(\nline1\nline2\n)ABC\";\n")
	out := t.TempDir()

	if err := run(t, src, "--out", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := outputNames(t, out)
	expected := "test_" + writer.Digest("line1\nline2\n") + "_ex_cpp.sol"
	if len(names) != 1 || names[0] != expected {
		t.Fatalf("expected [%s], got %v", expected, names)
	}
	data, _ := os.ReadFile(filepath.Join(out, expected))
	if string(data) != "line1\nline2\n" {
		t.Errorf("unexpected content %q", string(data))
	}
}

func TestIsolate_DirectoryWalk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "libsolidity", "Parser.cpp"), "R\"(\ncontract A {}\n)\";\n")
	writeFile(t, filepath.Join(root, "libsolidity", "cases", "b.sol"), "contract B {}\n")
	writeFile(t, filepath.Join(root, "compilationTests", "c.sol"), "contract C {}\n")
	writeFile(t, filepath.Join(root, "docs", "_build", "d.sol"), "contract D {}\n")
	out := t.TempDir()

	if err := run(t, root, "--out", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[string]bool{
		"test_" + writer.Digest("contract A {}\n") + "_parser_cpp.sol": true,
		"test_" + writer.Digest("contract B {}\n") + "_b_sol.sol":      true,
	}
	names := outputNames(t, out)
	if len(names) != len(expected) {
		t.Fatalf("expected %d files, got %v", len(expected), names)
	}
	for _, name := range names {
		if !expected[name] {
			t.Errorf("unexpected output file %s", name)
		}
	}
}

func TestIsolate_DocsMode(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "intro.rst"), "Intro\n\n    pragma solidity ^0.4.0;\n    contract A {\n    }\n")
	out := t.TempDir()

	if err := run(t, root, "docs", "-o", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	original := "    pragma solidity ^0.4.0;\n    contract A {\n    }\n"
	name := "test_" + writer.Digest(original) + "_intro_rst.sol"
	data, err := os.ReadFile(filepath.Join(out, name))
	if err != nil {
		t.Fatalf("expected %s: %v", name, err)
	}
	if string(data) != "pragma solidity ^0.4.0;\ncontract A {\n}\n" {
		t.Errorf("unexpected content %q", string(data))
	}
}

func TestIsolate_UnknownModeArgumentIsRaw(t *testing.T) {
	src := filepath.Join(t.TempDir(), "intro.rst")
	writeFile(t, src, "Intro\n\n    contract A {\n    }\n")
	out := t.TempDir()

	if err := run(t, src, "documentation", "-o", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names := outputNames(t, out); len(names) != 0 {
		t.Errorf("expected no output in raw mode, got %v", names)
	}
}

func TestIsolate_IndentationError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a_good.rst"), "Good\n\n    contract Good {\n    }\n")
	writeFile(t, filepath.Join(root, "b_bad.rst"), "Bad\n\n   contract Foo {\n   }\n")
	out := t.TempDir()

	err := run(t, root, "docs", "-o", out)
	var indentErr *extract.IndentationError
	if !errors.As(err, &indentErr) {
		t.Fatalf("expected *IndentationError, got %v", err)
	}
	if indentErr.Path != filepath.Join(root, "b_bad.rst") {
		t.Errorf("unexpected path %s", indentErr.Path)
	}
}

func TestIsolate_DryRunAndManifest(t *testing.T) {
	src := filepath.Join(t.TempDir(), "a.sol")
	writeFile(t, src, "contract A {}\n")

	t.Run("dry run writes nothing", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out")
		manifest := filepath.Join(t.TempDir(), "manifest.json")
		if err := run(t, src, "-o", out, "--dry-run", "--manifest", manifest); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Errorf("expected no output dir, got %v", err)
		}
		if _, err := os.Stat(manifest); !os.IsNotExist(err) {
			t.Errorf("expected no manifest, got %v", err)
		}
	})

	t.Run("manifest lists written cases", func(t *testing.T) {
		out := t.TempDir()
		manifest := filepath.Join(t.TempDir(), "manifest.json")
		if err := run(t, src, "-o", out, "--manifest", manifest); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m, err := storage.NewJSONStorage(manifest).Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Meta.CasesWritten != 1 || len(m.Cases) != 1 {
			t.Fatalf("unexpected manifest: %+v", m)
		}
		if m.Cases[0].Digest != writer.Digest("contract A {}\n") {
			t.Errorf("unexpected digest %s", m.Cases[0].Digest)
		}
	})
}

func TestIsolate_FilterAndExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.sol"), "contract A {}\n")
	writeFile(t, filepath.Join(root, "b.cpp"), "R\"(\ncontract B {}\n)\";\n")
	writeFile(t, filepath.Join(root, "vendor", "c.sol"), "contract C {}\n")
	writeFile(t, filepath.Join(root, "compilationTests", "d.sol"), "contract D {}\n")

	t.Run("filter by name", func(t *testing.T) {
		out := t.TempDir()
		if err := run(t, root, "-o", out, "--filter", "*.cpp"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if names := outputNames(t, out); len(names) != 1 {
			t.Errorf("expected 1 file, got %v", names)
		}
	})

	t.Run("exclude replaces defaults", func(t *testing.T) {
		out := t.TempDir()
		if err := run(t, root, "-o", out, "--exclude", "vendor"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// a.sol, b.cpp and compilationTests/d.sol
		if names := outputNames(t, out); len(names) != 3 {
			t.Errorf("expected 3 files, got %v", names)
		}
	})
}

func TestIsolate_Arguments(t *testing.T) {
	t.Run("path is required", func(t *testing.T) {
		if err := run(t); err == nil {
			t.Error("expected error without arguments")
		}
	})

	t.Run("at most two arguments", func(t *testing.T) {
		if err := run(t, "a", "docs", "extra"); err == nil {
			t.Error("expected error for three arguments")
		}
	})

	t.Run("missing path", func(t *testing.T) {
		if err := run(t, "/non/existent/path"); err == nil {
			t.Error("expected error for missing path")
		}
	})
}

func TestIsolate_SymlinkedDirectoryIsSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "real", "a.cpp"), "R\"(\ncontract A {}\n)\";\n")
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	out := t.TempDir()

	if err := run(t, root, "-o", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names := outputNames(t, out); len(names) != 1 {
		t.Errorf("expected 1 file, got %v", names)
	}
}
