// Package score computes the Weissman score, a comparative metric combining
// compression ratio and speed against a reference algorithm:
//
//	W = alpha * (r / r0) * (log(T0) / log(T))
//
// where r is the achieved compression ratio, r0 the reference ratio, T the
// elapsed time and T0 the reference time, both expressed in milliseconds.
package score

import (
	"fmt"
	"math"
	"time"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

// Reference is the baseline measurement supplying r0 and T0.
type Reference struct {
	Algorithm string
	Ratio     float64
	Elapsed   time.Duration
}

// ReferenceFrom derives the baseline from a raw measurement.
func ReferenceFrom(m types.Measurement) Reference {
	return Reference{Algorithm: m.Algorithm, Ratio: m.Ratio(), Elapsed: m.Elapsed}
}

// Calculator computes Weissman scores. It holds no hidden state: identical
// inputs always produce the identical score.
type Calculator struct {
	// Alpha is the scaling constant. A self-referenced measurement scores
	// exactly Alpha.
	Alpha float64

	// FloorMillis clamps both T and T0 before the logarithms are taken.
	// Must be greater than 1 so log stays positive; runs faster than the
	// floor are all scored as if they took FloorMillis.
	FloorMillis float64
}

// NewCalculator returns a calculator with the given alpha and time floor.
func NewCalculator(alpha, floorMillis float64) Calculator {
	return Calculator{Alpha: alpha, FloorMillis: floorMillis}
}

// Score computes the Weissman score for a measurement against the reference.
// Invalid or degenerate inputs are reported as errors, never silently scored
// as zero.
func (c Calculator) Score(m types.Measurement, ref Reference) (float64, error) {
	if m.OriginalSize <= 0 || m.CompressedSize <= 0 {
		return 0, fmt.Errorf("sizes must be positive: original=%d compressed=%d", m.OriginalSize, m.CompressedSize)
	}
	if m.Elapsed < 0 {
		return 0, fmt.Errorf("elapsed time must be non-negative: %v", m.Elapsed)
	}
	if ref.Ratio <= 0 {
		return 0, fmt.Errorf("reference ratio must be positive: %g", ref.Ratio)
	}
	if c.FloorMillis <= 1 {
		return 0, fmt.Errorf("time floor must be greater than 1ms: %g", c.FloorMillis)
	}

	r := m.Ratio()
	r0 := ref.Ratio
	t := c.floorMillisOf(m.Elapsed)
	t0 := c.floorMillisOf(ref.Elapsed)

	w := c.Alpha * (r / r0) * (math.Log(t0) / math.Log(t))
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("degenerate inputs: ratio=%g ref_ratio=%g time_ms=%g ref_time_ms=%g", r, r0, t, t0)
	}

	return w, nil
}

func (c Calculator) floorMillisOf(d time.Duration) float64 {
	ms := float64(d) / float64(time.Millisecond)
	if ms < c.FloorMillis {
		return c.FloorMillis
	}
	return ms
}
