package export

import (
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

const htmlReport = `<!DOCTYPE html>
<html>
<head>
  <title>Compression Benchmark Results</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 20px; }
    h1 { color: #333; }
    table { border-collapse: collapse; width: 100%; margin-top: 20px; }
    th, td { padding: 8px; text-align: left; border-bottom: 1px solid #ddd; }
    th { background-color: #f2f2f2; }
    tr:hover { background-color: #f5f5f5; }
    .failed { color: #b00020; }
    .container { max-width: 1200px; margin: 0 auto; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Compression Benchmark Results</h1>
    <p>Target: {{.Target}} ({{.TotalSize}}) &mdash; alpha {{.Alpha}}, reference {{.Reference}}</p>
    <table>
      <thead>
        <tr>
          <th>Algorithm</th>
          <th>Original Size</th>
          <th>Compressed Size</th>
          <th>Compression Ratio</th>
          <th>Compression Time (s)</th>
          <th>Weissman Score</th>
        </tr>
      </thead>
      <tbody>
{{- range .Rows}}
{{- if .Failed}}
        <tr class="failed">
          <td>{{.Algorithm}}</td>
          <td colspan="5">failed: {{.FailureReason}}</td>
        </tr>
{{- else}}
        <tr>
          <td>{{.Algorithm}}</td>
          <td>{{.OriginalSize}}</td>
          <td>{{.CompressedSize}}</td>
          <td>{{.Ratio}}</td>
          <td>{{.Time}}</td>
          <td>{{.Score}}</td>
        </tr>
{{- end}}
{{- end}}
      </tbody>
    </table>
  </div>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlReport))

type htmlRow struct {
	Algorithm      string
	OriginalSize   string
	CompressedSize string
	Ratio          string
	Time           string
	Score          string
	Failed         bool
	FailureReason  string
}

// htmlExporter renders a styled table sorted by Weissman score, failures
// last. Presentation only; there is no HTML reader.
type htmlExporter struct{}

func (e *htmlExporter) Export(rs *types.ResultSet, w io.Writer) error {
	sorted := make([]types.ScoredResult, len(rs.Results))
	copy(sorted, rs.Results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Failed != sorted[j].Failed {
			return !sorted[i].Failed
		}
		return sorted[i].WeissmanScore > sorted[j].WeissmanScore
	})

	rows := make([]htmlRow, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, htmlRow{
			Algorithm:      r.Algorithm,
			OriginalSize:   humanize.IBytes(uint64(r.OriginalSize)),
			CompressedSize: humanize.IBytes(uint64(r.CompressedSize)),
			Ratio:          fmt.Sprintf("%.2f", r.CompressionRatio),
			Time:           fmt.Sprintf("%.4f", r.CompressionTime),
			Score:          fmt.Sprintf("%.4f", r.WeissmanScore),
			Failed:         r.Failed,
			FailureReason:  r.FailureReason,
		})
	}

	data := struct {
		Target    string
		TotalSize string
		Alpha     float64
		Reference string
		Rows      []htmlRow
	}{
		Target:    rs.Target,
		TotalSize: humanize.IBytes(uint64(rs.TotalSize)),
		Alpha:     rs.Alpha,
		Reference: rs.Reference,
		Rows:      rows,
	}

	if err := htmlTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
