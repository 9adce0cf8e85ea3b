package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

var csvHeader = []string{
	"algorithm",
	"original_size",
	"compressed_size",
	"compression_ratio",
	"compression_time",
	"weissman_score",
	"failed",
	"failure_reason",
}

// csvExporter writes a header row followed by one row per result. Floats use
// the shortest exact representation so a reader recovers them bit for bit.
type csvExporter struct{}

func (e *csvExporter) Export(rs *types.ResultSet, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range rs.Results {
		row := []string{
			r.Algorithm,
			strconv.FormatInt(r.OriginalSize, 10),
			strconv.FormatInt(r.CompressedSize, 10),
			strconv.FormatFloat(r.CompressionRatio, 'g', -1, 64),
			strconv.FormatFloat(r.CompressionTime, 'g', -1, 64),
			strconv.FormatFloat(r.WeissmanScore, 'g', -1, 64),
			strconv.FormatBool(r.Failed),
			r.FailureReason,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", r.Algorithm, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ReadCSV parses a CSV report back into its results.
func ReadCSV(r io.Reader) ([]types.ScoredResult, error) {
	cr := csv.NewReader(r)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read csv: missing header row")
	}

	results := make([]types.ScoredResult, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("read csv: row %d has %d columns, want %d", i+1, len(row), len(csvHeader))
		}

		originalSize, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("read csv: row %d original_size: %w", i+1, err)
		}
		compressedSize, err := strconv.ParseInt(row[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("read csv: row %d compressed_size: %w", i+1, err)
		}
		ratio, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("read csv: row %d compression_ratio: %w", i+1, err)
		}
		elapsed, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, fmt.Errorf("read csv: row %d compression_time: %w", i+1, err)
		}
		weissman, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			return nil, fmt.Errorf("read csv: row %d weissman_score: %w", i+1, err)
		}
		failed, err := strconv.ParseBool(row[6])
		if err != nil {
			return nil, fmt.Errorf("read csv: row %d failed: %w", i+1, err)
		}

		results = append(results, types.ScoredResult{
			Algorithm:        row[0],
			OriginalSize:     originalSize,
			CompressedSize:   compressedSize,
			CompressionRatio: ratio,
			CompressionTime:  elapsed,
			WeissmanScore:    weissman,
			Failed:           failed,
			FailureReason:    row[7],
		})
	}

	return results, nil
}
