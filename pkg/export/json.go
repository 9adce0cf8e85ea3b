package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

// jsonExporter writes the results as an indented array of objects, one per
// algorithm, in run order.
type jsonExporter struct{}

func (e *jsonExporter) Export(rs *types.ResultSet, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rs.Results); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// ReadJSON parses a JSON report back into its results. Every field written by
// the exporter is recovered exactly.
func ReadJSON(r io.Reader) ([]types.ScoredResult, error) {
	var results []types.ScoredResult
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return results, nil
}
