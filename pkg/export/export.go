// Package export serializes a ResultSet into the supported report formats.
// JSON, CSV and XML are round-trippable; HTML is presentation only.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

// Format is one of the supported report formats.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

// Formats lists the supported formats in presentation order.
func Formats() []Format {
	return []Format{FormatJSON, FormatXML, FormatCSV, FormatHTML}
}

// ParseFormat validates a format name. Anything outside the enumerated set is
// rejected with UnsupportedFormat before any file is touched.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatXML, FormatCSV, FormatHTML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, s)
	}
}

// Exporter serializes a result set into one format.
type Exporter interface {
	Export(rs *types.ResultSet, w io.Writer) error
}

// New returns the exporter for a format.
func New(f Format) (Exporter, error) {
	switch f {
	case FormatJSON:
		return &jsonExporter{}, nil
	case FormatXML:
		return &xmlExporter{}, nil
	case FormatCSV:
		return &csvExporter{}, nil
	case FormatHTML:
		return &htmlExporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, string(f))
	}
}

// DefaultFilename derives the output name used when --export is given without
// --output: "<target base>-results.<ext>" in the working directory.
func DefaultFilename(target string, f Format) string {
	base := filepath.Base(filepath.Clean(target))
	return fmt.Sprintf("%s-results.%s", base, string(f))
}

// WriteFile exports the result set to path atomically: the report is written
// to a temporary file in the destination directory and renamed into place, so
// an interrupt or write failure never leaves a partial export behind.
func WriteFile(rs *types.ResultSet, f Format, path string) error {
	exporter, err := New(f)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".weissman-export-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", types.ErrExportIO, path, err)
	}
	tmpName := tmp.Name()

	if err := exporter.Export(rs, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", types.ErrExportIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", types.ErrExportIO, path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", types.ErrExportIO, path, err)
	}

	return nil
}
