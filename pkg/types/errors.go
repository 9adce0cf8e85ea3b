package types

import "errors"

// Error taxonomy for the benchmark pipeline. TargetNotFound, UnsupportedFormat
// and InvalidConfig are fatal and detected before any measurement starts.
// CodecUnavailable and CompressionFailed are recorded per algorithm and the run
// continues. ExportIO only fails the export step; measured results are still
// rendered on the console.
var (
	ErrTargetNotFound    = errors.New("target path not found")
	ErrCodecUnavailable  = errors.New("codec unavailable")
	ErrCompressionFailed = errors.New("compression failed")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrExportIO          = errors.New("export write failed")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
