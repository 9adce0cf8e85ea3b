package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid simple path", "results.json", false},
		{"valid relative path", "reports/results.json", false},
		{"path traversal attempt", "../../../etc/passwd", true},
		{"path traversal with clean", "reports/../../../etc/passwd", true},
		{"valid absolute path", "/tmp/results.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilePath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSafePath(t *testing.T) {
	tests := []struct {
		name     string
		baseDir  string
		filename string
		wantErr  bool
	}{
		{"valid file in base dir", "/tmp", "results.json", false},
		{"path traversal attempt", "/tmp", "../../../etc/passwd", true},
		{"path traversal with clean", "/tmp", "reports/../../../etc/passwd", true},
		{"valid subdirectory", "/tmp", "reports/results.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SafePath(tt.baseDir, tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("SafePath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveTarget(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "target.txt")
	if err := os.WriteFile(file, []byte("data"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("file", func(t *testing.T) {
		path, isDir, err := ResolveTarget(file)
		if err != nil {
			t.Fatalf("ResolveTarget() error = %v", err)
		}
		if isDir {
			t.Error("ResolveTarget() reported a file as directory")
		}
		if path != file {
			t.Errorf("ResolveTarget() path = %q, want %q", path, file)
		}
	})

	t.Run("directory", func(t *testing.T) {
		_, isDir, err := ResolveTarget(dir)
		if err != nil {
			t.Fatalf("ResolveTarget() error = %v", err)
		}
		if !isDir {
			t.Error("ResolveTarget() reported a directory as file")
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, _, err := ResolveTarget(filepath.Join(dir, "missing"))
		if !errors.Is(err, types.ErrTargetNotFound) {
			t.Errorf("ResolveTarget() error = %v, want TargetNotFound", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, _, err := ResolveTarget("")
		if !errors.Is(err, types.ErrTargetNotFound) {
			t.Errorf("ResolveTarget() error = %v, want TargetNotFound", err)
		}
	})
}

func TestTotalSize(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "tree")
	if err := os.MkdirAll(filepath.Join(root, "nested"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "a.bin"), make([]byte, 1000), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "nested", "b.bin"), make([]byte, 500), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("file", func(t *testing.T) {
		size, err := TotalSize(filepath.Join(root, "a.bin"))
		if err != nil {
			t.Fatalf("TotalSize() error = %v", err)
		}
		if size != 1000 {
			t.Errorf("TotalSize() = %d, want 1000", size)
		}
	})

	t.Run("directory", func(t *testing.T) {
		size, err := TotalSize(root)
		if err != nil {
			t.Fatalf("TotalSize() error = %v", err)
		}
		if size != 1500 {
			t.Errorf("TotalSize() = %d, want 1500", size)
		}
	})
}
