package types

import (
	"time"
)

// Measurement is the raw outcome of a single compression pass. It is created
// once by a codec and never mutated afterwards.
type Measurement struct {
	Algorithm      string
	OriginalSize   int64
	CompressedSize int64
	Elapsed        time.Duration
}

// Ratio returns the compression ratio, original size over compressed size.
func (m Measurement) Ratio() float64 {
	if m.CompressedSize <= 0 {
		return 0
	}
	return float64(m.OriginalSize) / float64(m.CompressedSize)
}

// ScoredResult is a Measurement enriched with the derived ratio and Weissman
// score, or a recorded failure for the algorithm. Times are serialized as
// seconds so every export format shares one schema.
type ScoredResult struct {
	Algorithm        string  `json:"algorithm" xml:"algorithm"`
	OriginalSize     int64   `json:"original_size" xml:"original_size"`
	CompressedSize   int64   `json:"compressed_size" xml:"compressed_size"`
	CompressionRatio float64 `json:"compression_ratio" xml:"compression_ratio"`
	CompressionTime  float64 `json:"compression_time" xml:"compression_time"`
	WeissmanScore    float64 `json:"weissman_score" xml:"weissman_score"`
	Failed           bool    `json:"failed" xml:"failed"`
	FailureReason    string  `json:"failure_reason,omitempty" xml:"failure_reason,omitempty"`
}

// Elapsed returns the compression time as a duration.
func (r ScoredResult) Elapsed() time.Duration {
	return time.Duration(r.CompressionTime * float64(time.Second))
}

// NewScoredResult builds a successful entry from a measurement and its score.
func NewScoredResult(m Measurement, score float64) ScoredResult {
	return ScoredResult{
		Algorithm:        m.Algorithm,
		OriginalSize:     m.OriginalSize,
		CompressedSize:   m.CompressedSize,
		CompressionRatio: m.Ratio(),
		CompressionTime:  m.Elapsed.Seconds(),
		WeissmanScore:    score,
	}
}

// NewFailedResult records a per-algorithm failure without aborting the run.
func NewFailedResult(algorithm string, originalSize int64, reason string) ScoredResult {
	return ScoredResult{
		Algorithm:     algorithm,
		OriginalSize:  originalSize,
		Failed:        true,
		FailureReason: reason,
	}
}

// ResultSet is the ordered outcome of one benchmark invocation. Entries appear
// in request order and the set is treated as read-only once the runner hands
// it to the presentation and export layers.
type ResultSet struct {
	RunID     string         `json:"run_id"`
	Target    string         `json:"target"`
	TotalSize int64          `json:"total_size"`
	Alpha     float64        `json:"alpha"`
	Reference string         `json:"reference"`
	CreatedAt time.Time      `json:"created_at"`
	Results   []ScoredResult `json:"results"`
}

// Succeeded reports how many entries carry a real measurement.
func (rs *ResultSet) Succeeded() int {
	n := 0
	for _, r := range rs.Results {
		if !r.Failed {
			n++
		}
	}
	return n
}

// Failed reports how many entries are recorded failures.
func (rs *ResultSet) Failed() int {
	return len(rs.Results) - rs.Succeeded()
}
