// Package present renders a ResultSet as a console table. Output here is for
// humans only; exports carry the machine-readable data.
package present

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	failColor   = color.New(color.FgRed)
	scoreColor  = color.New(color.FgGreen)
)

// RenderTable writes the benchmark results sorted by Weissman score, best
// first, with failed algorithms at the bottom.
func RenderTable(w io.Writer, rs *types.ResultSet) {
	fmt.Fprintf(w, "Benchmark results for %s\n", rs.Target)
	fmt.Fprintf(w, "Original size: %s  alpha: %g  reference: %s  run: %s\n\n",
		humanize.IBytes(uint64(rs.TotalSize)), rs.Alpha, rs.Reference, rs.RunID)

	sorted := make([]types.ScoredResult, len(rs.Results))
	copy(sorted, rs.Results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Failed != sorted[j].Failed {
			return !sorted[i].Failed
		}
		return sorted[i].WeissmanScore > sorted[j].WeissmanScore
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerColor.Sprint("ALGORITHM\tORIGINAL\tCOMPRESSED\tRATIO\tTIME (S)\tWEISSMAN"))

	for _, r := range sorted {
		if r.Failed {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.Algorithm, "-", "-", "-", "-",
				failColor.Sprintf("failed: %s", truncate(r.FailureReason, reasonWidth())))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%.4f\t%s\n",
			r.Algorithm,
			humanize.IBytes(uint64(r.OriginalSize)),
			humanize.IBytes(uint64(r.CompressedSize)),
			r.CompressionRatio,
			r.CompressionTime,
			scoreColor.Sprintf("%.4f", r.WeissmanScore))
	}

	tw.Flush()
}

// reasonWidth bounds the failure-reason column by the terminal width so long
// wrapped errors do not break the table.
func reasonWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 120
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 80 {
		return 60
	}
	return width - 60
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
