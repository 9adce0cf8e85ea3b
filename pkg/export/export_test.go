package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

func testResultSet() *types.ResultSet {
	return &types.ResultSet{
		RunID:     "11111111-2222-3333-4444-555555555555",
		Target:    "/data/corpus.txt",
		TotalSize: 1_000_000,
		Alpha:     1.0,
		Reference: "gzip",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Results: []types.ScoredResult{
			{
				Algorithm:        "gzip",
				OriginalSize:     1_000_000,
				CompressedSize:   300_000,
				CompressionRatio: 1_000_000.0 / 300_000.0,
				CompressionTime:  0.05,
				WeissmanScore:    1.0,
			},
			{
				Algorithm:        "bzip2",
				OriginalSize:     1_000_000,
				CompressedSize:   250_000,
				CompressionRatio: 4.0,
				CompressionTime:  0.1337,
				WeissmanScore:    0.8123456789,
			},
			{
				Algorithm:     "bogus-algorithm",
				OriginalSize:  1_000_000,
				Failed:        true,
				FailureReason: "codec unavailable: bogus-algorithm",
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"json", "json", FormatJSON, false},
		{"xml", "xml", FormatXML, false},
		{"csv", "csv", FormatCSV, false},
		{"html", "html", FormatHTML, false},
		{"yaml rejected", "yaml", "", true},
		{"empty rejected", "", "", true},
		{"case sensitive", "JSON", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, types.ErrUnsupportedFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	rs := testResultSet()

	tests := []struct {
		name   string
		format Format
		read   func(r *bytes.Buffer) ([]types.ScoredResult, error)
	}{
		{"json", FormatJSON, func(b *bytes.Buffer) ([]types.ScoredResult, error) { return ReadJSON(b) }},
		{"csv", FormatCSV, func(b *bytes.Buffer) ([]types.ScoredResult, error) { return ReadCSV(b) }},
		{"xml", FormatXML, func(b *bytes.Buffer) ([]types.ScoredResult, error) { return ReadXML(b) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, err := New(tt.format)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, exporter.Export(rs, &buf))

			recovered, err := tt.read(&buf)
			require.NoError(t, err)
			assert.Equal(t, rs.Results, recovered)
		})
	}
}

func TestHTMLExport(t *testing.T) {
	exporter, err := New(FormatHTML)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, exporter.Export(testResultSet(), &buf))
	html := buf.String()

	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "gzip")
	assert.Contains(t, html, "bzip2")
	assert.Contains(t, html, "bogus-algorithm")
	assert.Contains(t, html, "failed:")
	// Best score first: gzip (1.0) before bzip2 (0.81).
	assert.Less(t, strings.Index(html, "<td>gzip</td>"), strings.Index(html, "<td>bzip2</td>"))
}

func TestDefaultFilename(t *testing.T) {
	assert.Equal(t, "corpus.txt-results.json", DefaultFilename("/data/corpus.txt", FormatJSON))
	assert.Equal(t, "photos-results.html", DefaultFilename("./photos/", FormatHTML))
}

func TestWriteFile(t *testing.T) {
	rs := testResultSet()
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, WriteFile(rs, FormatJSON, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	recovered, err := ReadJSON(f)
	require.NoError(t, err)
	assert.Equal(t, rs.Results, recovered)

	// No stray temp files left next to the report.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.json", entries[0].Name())
}

func TestWriteFile_UnsupportedFormatWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	err := WriteFile(testResultSet(), Format("yaml"), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUnsupportedFormat))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "deeper", "out.json")

	err := WriteFile(testResultSet(), FormatJSON, path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrExportIO))
}
