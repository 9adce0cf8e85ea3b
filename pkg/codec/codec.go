// Package codec wraps each supported compression capability behind one
// uniform operation: compress a file or directory and report the compressed
// size and the elapsed wall-clock time. The compressed artifact itself is
// never kept; output flows through a counting writer and is discarded.
package codec

import (
	"time"
)

// Codec is one compression capability. Implementations must be safe to call
// repeatedly; a failed pass is never retried.
type Codec interface {
	// Name returns the algorithm name the codec is registered under.
	Name() string

	// Compress runs one compression pass over the target path and returns
	// the compressed size in bytes and the elapsed wall-clock time. For
	// plain files timing wraps only the compression copy; for directories
	// the tree walk is interleaved with compression and its cost is
	// included in the measurement.
	Compress(path string) (int64, time.Duration, error)
}

// countingWriter discards everything written to it, keeping only the count.
type countingWriter struct {
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}
