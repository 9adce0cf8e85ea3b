package codec

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/flate"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

// zipCodec measures the zip container format with deflate entries.
type zipCodec struct {
	level int
}

func (c *zipCodec) Name() string { return Zip }

func (c *zipCodec) Compress(path string) (int64, time.Duration, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: stat: %w", types.ErrCompressionFailed, Zip, err)
	}

	counter := &countingWriter{}
	start := time.Now()

	zw := zip.NewWriter(counter)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, c.level)
	})

	if info.IsDir() {
		root := filepath.Dir(path)
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}
			return addZipEntry(zw, filepath.ToSlash(rel), p)
		})
	} else {
		err = addZipEntry(zw, filepath.Base(path), path)
	}
	if err != nil {
		zw.Close()
		return 0, 0, fmt.Errorf("%w: %s: %w", types.ErrCompressionFailed, Zip, err)
	}

	if err := zw.Close(); err != nil {
		return 0, 0, fmt.Errorf("%w: %s: close: %w", types.ErrCompressionFailed, Zip, err)
	}

	return counter.n, time.Since(start), nil
}

func addZipEntry(zw *zip.Writer, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	entry, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return err
	}

	if _, err := io.Copy(entry, f); err != nil {
		return fmt.Errorf("copy %s: %w", path, err)
	}
	return nil
}

// tarCodec measures plain tar archiving with no compression. It exists as the
// baseline container: its "compressed" size is the archive size.
type tarCodec struct{}

func (c *tarCodec) Name() string { return Tar }

func (c *tarCodec) Compress(path string) (int64, time.Duration, error) {
	counter := &countingWriter{}

	start := time.Now()
	if err := writeTarTree(counter, path); err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %w", types.ErrCompressionFailed, Tar, err)
	}

	return counter.n, time.Since(start), nil
}
