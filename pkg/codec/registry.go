package codec

import (
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/dsnet/compress/bzip2"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

// Algorithm names. These are the values accepted by --algorithm and stored in
// every result.
const (
	Gzip   = "gzip"
	Bzip2  = "bzip2"
	Lzma   = "lzma"
	Zip    = "zip"
	Tar    = "tar"
	Zstd   = "zstd"
	LZ4    = "lz4"
	Brotli = "brotli"
	Snappy = "snappy"
)

// Names returns the canonical algorithm order without building a registry.
func Names() []string {
	return []string{Gzip, Bzip2, Lzma, Zip, Tar, Zstd, LZ4, Brotli, Snappy}
}

// Registry is the immutable set of codecs available to a run. It is built
// once at startup and passed into the runner; lookup order is fixed so "all"
// always expands the same way.
type Registry struct {
	names  []string
	codecs map[string]Codec
}

// NewRegistry constructs the full capability set. Level applies to the codecs
// that accept a gzip-scale level; the rest use their library defaults.
func NewRegistry(level int) *Registry {
	codecs := map[string]Codec{
		Gzip:   &streamCodec{name: Gzip, newWriter: gzipWriter(level)},
		Bzip2:  &streamCodec{name: Bzip2, newWriter: bzip2Writer(level)},
		Lzma:   &streamCodec{name: Lzma, newWriter: xzWriter()},
		Zip:    &zipCodec{level: clampLevel(level, 1, 9)},
		Tar:    &tarCodec{},
		Zstd:   &streamCodec{name: Zstd, newWriter: zstdWriter(level)},
		LZ4:    &streamCodec{name: LZ4, newWriter: lz4Writer()},
		Brotli: &streamCodec{name: Brotli, newWriter: brotliWriter(level)},
		Snappy: &streamCodec{name: Snappy, newWriter: snappyWriter()},
	}

	return &Registry{
		names:  Names(),
		codecs: codecs,
	}
}

// Names returns the registered algorithm names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Lookup resolves an algorithm name to its codec. Unknown names report
// CodecUnavailable; the runner records that per algorithm instead of aborting.
func (r *Registry) Lookup(name string) (Codec, error) {
	c, ok := r.codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrCodecUnavailable, name)
	}
	return c, nil
}

func gzipWriter(level int) writerFactory {
	return func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriterLevel(w, clampLevel(level, gzip.BestSpeed, gzip.BestCompression))
	}
}

func bzip2Writer(level int) writerFactory {
	return func(w io.Writer) (io.WriteCloser, error) {
		return bzip2.NewWriter(w, &bzip2.WriterConfig{
			Level: clampLevel(level, bzip2.BestSpeed, bzip2.BestCompression),
		})
	}
}

// xzWriter produces the xz container, the same stream the original lzma
// tooling emits by default.
func xzWriter() writerFactory {
	return func(w io.Writer) (io.WriteCloser, error) {
		return xz.NewWriter(w)
	}
}

func zstdWriter(level int) writerFactory {
	return func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(clampLevel(level, 1, 22))))
	}
}

func lz4Writer() writerFactory {
	return func(w io.Writer) (io.WriteCloser, error) {
		return lz4.NewWriter(w), nil
	}
}

func brotliWriter(level int) writerFactory {
	return func(w io.Writer) (io.WriteCloser, error) {
		return brotli.NewWriterLevel(w, clampLevel(level, brotli.BestSpeed, brotli.BestCompression)), nil
	}
}

func snappyWriter() writerFactory {
	return func(w io.Writer) (io.WriteCloser, error) {
		return snappy.NewBufferedWriter(w), nil
	}
}

func clampLevel(level, min, max int) int {
	if level < min {
		return min
	}
	if level > max {
		return max
	}
	return level
}
