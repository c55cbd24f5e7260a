package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/yaklabco/gocst/pkg/runner"
)

var sourceExtensions = []string{".css", ".json", ".md"}

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func relPaths(t *testing.T, dir string, files []string) []string {
	t.Helper()

	out := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestDiscover_SingleFileAnyExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"styles.pcss": "a {}"})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"styles.pcss"},
		WorkingDir: dir,
		Extensions: sourceExtensions,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 || files[0] != filepath.Join(dir, "styles.pcss") {
		t.Errorf("expected explicit file to be kept, got %v", files)
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"readme.md":         "# x",
		"web/site.css":      "a {}",
		"web/data.JSON":     "{}",
		"src/main.go":       "package main",
		"notes.txt":         "x",
		".hidden.css":       "a {}",
		".git/config.json":  "{}",
		"docs/.private.css": "a {}",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Extensions: sourceExtensions,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"readme.md", "web/data.JSON", "web/site.css"}
	if got := relPaths(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscover_Globs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.css":                 "",
		"a.min.css":             "",
		"vendor/lib.css":        "",
		"pkg/vendor/deep.css":   "",
		"docs/guide.md":         "",
		"docs/api/reference.md": "",
		"data/x.json":           "",
	})

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{
			name:    "exclude base name pattern",
			exclude: []string{"*.min.css"},
			want:    []string{"a.css", "data/x.json", "docs/api/reference.md", "docs/guide.md", "pkg/vendor/deep.css", "vendor/lib.css"},
		},
		{
			name:    "exclude directory anywhere",
			exclude: []string{"**/vendor/**"},
			want:    []string{"a.css", "a.min.css", "data/x.json", "docs/api/reference.md", "docs/guide.md"},
		},
		{
			name:    "exclude named directory",
			exclude: []string{"docs"},
			want:    []string{"a.css", "a.min.css", "data/x.json", "pkg/vendor/deep.css", "vendor/lib.css"},
		},
		{
			name:    "include recursive markdown",
			include: []string{"docs/**/*.md"},
			want:    []string{"docs/api/reference.md", "docs/guide.md"},
		},
		{
			name:    "include and exclude",
			include: []string{"**/*.css"},
			exclude: []string{"vendor/**"},
			want:    []string{"a.css", "a.min.css", "pkg/vendor/deep.css"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			files, err := runner.Discover(context.Background(), runner.Options{
				WorkingDir:   dir,
				Extensions:   sourceExtensions,
				IncludeGlobs: tt.include,
				ExcludeGlobs: tt.exclude,
			})
			if err != nil {
				t.Fatalf("Discover() error = %v", err)
			}
			if got := relPaths(t, dir, files); !slices.Equal(got, tt.want) {
				t.Errorf("Discover() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiscover_DeduplicatesAndSorts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"b.css": "", "a.css": "", "sub/c.json": ""})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"sub", ".", "a.css"},
		WorkingDir: dir,
		Extensions: sourceExtensions,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"a.css", "b.css", "sub/c.json"}
	if got := relPaths(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"missing"},
		WorkingDir: t.TempDir(),
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"real/doc.md": "x"})

	externalDir := t.TempDir()
	writeTree(t, externalDir, map[string]string{"external.css": "a {}"})

	if err := os.Symlink(externalDir, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	opts := runner.Options{WorkingDir: dir, Extensions: sourceExtensions}

	discovered, err := runner.Discover(context.Background(), opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(discovered) != 1 || !strings.HasSuffix(discovered[0], "doc.md") {
		t.Errorf("expected only real/doc.md without FollowSymlinks, got %v", discovered)
	}

	opts.FollowSymlinks = true
	discovered, err = runner.Discover(context.Background(), opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(discovered) != 2 {
		t.Errorf("expected 2 files with FollowSymlinks, got %v", discovered)
	}
}
