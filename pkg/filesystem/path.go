package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

// SafePath validates and constructs a safe file path within a base directory.
func SafePath(baseDir, filename string) (string, error) {
	cleanFilename := filepath.Clean(filename)
	if strings.Contains(cleanFilename, "..") {
		return "", fmt.Errorf("invalid filename: path traversal not allowed")
	}

	fullPath := filepath.Join(baseDir, cleanFilename)

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for base directory: %w", err)
	}

	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase) {
		return "", fmt.Errorf("path outside base directory not allowed")
	}

	return fullPath, nil
}

// ValidateFilePath validates a file path for security concerns.
func ValidateFilePath(filePath string) error {
	cleanPath := filepath.Clean(filePath)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("invalid file path: path traversal not allowed")
	}

	return nil
}

// ResolveTarget verifies that the benchmark target exists and returns its
// cleaned path together with whether it is a directory. A missing target is
// reported as TargetNotFound before anything is read.
func ResolveTarget(path string) (string, bool, error) {
	if path == "" {
		return "", false, fmt.Errorf("%w: empty path", types.ErrTargetNotFound)
	}

	clean := filepath.Clean(path)
	info, err := os.Stat(clean)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, fmt.Errorf("%w: %s", types.ErrTargetNotFound, path)
		}
		return "", false, fmt.Errorf("stat %s: %w", path, err)
	}

	return clean, info.IsDir(), nil
}

// TotalSize returns the byte size of a file, or the sum of all regular file
// sizes under a directory.
func TotalSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return info.Size(), nil
	}

	var total int64
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			fi, err := d.Info()
			if err != nil {
				return err
			}
			total += fi.Size()
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walk %s: %w", path, err)
	}

	return total, nil
}

// EnsureDir creates a directory (and parents) if it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
