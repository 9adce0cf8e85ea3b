// Package bench orchestrates benchmark runs: one codec at a time, sequential
// by design so wall-clock timings are not skewed by resource contention.
package bench

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/thealper2/weissman-score-benchmark/pkg/codec"
	"github.com/thealper2/weissman-score-benchmark/pkg/config"
	"github.com/thealper2/weissman-score-benchmark/pkg/filesystem"
	"github.com/thealper2/weissman-score-benchmark/pkg/logger"
	"github.com/thealper2/weissman-score-benchmark/pkg/score"
	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

// AlgorithmAll expands to every registered codec, in registry order.
const AlgorithmAll = "all"

// Runner executes compression benchmarks over a target path.
type Runner struct {
	cfg      *config.Config
	registry *codec.Registry
	calc     score.Calculator
}

// NewRunner builds a runner from an explicit configuration and codec registry.
func NewRunner(cfg *config.Config, registry *codec.Registry) *Runner {
	return &Runner{
		cfg:      cfg,
		registry: registry,
		calc:     score.NewCalculator(cfg.Alpha, cfg.TimeFloorMillis),
	}
}

// Run measures every requested algorithm against the target and returns the
// scored results in request order. A failure in one algorithm is recorded and
// the run continues; only a missing target or an unusable reference baseline
// aborts the whole run.
func (r *Runner) Run(path string, algorithms []string) (*types.ResultSet, error) {
	target, isDir, err := filesystem.ResolveTarget(path)
	if err != nil {
		return nil, err
	}

	originalSize, err := filesystem.TotalSize(target)
	if err != nil {
		return nil, fmt.Errorf("measuring target size: %w", err)
	}
	logger.Debug("Resolved benchmark target", "path", target, "dir", isDir, "size", originalSize)

	requested := r.expand(algorithms)

	ref, refMeasurement, err := r.measureReference(target, originalSize, requested)
	if err != nil {
		return nil, err
	}

	rs := &types.ResultSet{
		RunID:     uuid.NewString(),
		Target:    target,
		TotalSize: originalSize,
		Alpha:     r.cfg.Alpha,
		Reference: r.cfg.Reference,
		CreatedAt: time.Now().UTC(),
		Results:   make([]types.ScoredResult, 0, len(requested)),
	}

	for _, name := range requested {
		rs.Results = append(rs.Results, r.measure(name, target, originalSize, ref, refMeasurement))
	}

	return rs, nil
}

// expand resolves the requested algorithm names, expanding "all" to the full
// registered set and dropping duplicates while keeping request order.
func (r *Runner) expand(algorithms []string) []string {
	if len(algorithms) == 0 || lo.Contains(algorithms, AlgorithmAll) {
		return r.registry.Names()
	}
	return lo.Uniq(algorithms)
}

// measureReference obtains the baseline measurement. The reference algorithm
// is always measured first, even when it was not requested, so every score in
// the run shares the same r0/T0.
func (r *Runner) measureReference(target string, originalSize int64, requested []string) (score.Reference, *types.Measurement, error) {
	c, err := r.registry.Lookup(r.cfg.Reference)
	if err != nil {
		return score.Reference{}, nil, fmt.Errorf("reference algorithm: %w", err)
	}

	if !lo.Contains(requested, r.cfg.Reference) {
		logger.Info("Running reference algorithm out of band", "algorithm", r.cfg.Reference)
	}

	m, err := runCodec(c, target, originalSize)
	if err != nil {
		return score.Reference{}, nil, fmt.Errorf("reference measurement: %w", err)
	}
	logger.Debug("Reference baseline measured",
		"algorithm", m.Algorithm, "compressed", m.CompressedSize, "elapsed", m.Elapsed)

	return score.ReferenceFrom(m), &m, nil
}

// measure runs one algorithm and converts the outcome into a ScoredResult,
// recording failures instead of propagating them.
func (r *Runner) measure(name, target string, originalSize int64, ref score.Reference, refMeasurement *types.Measurement) types.ScoredResult {
	c, err := r.registry.Lookup(name)
	if err != nil {
		logger.Warn("Algorithm not available", "algorithm", name)
		return types.NewFailedResult(name, originalSize, err.Error())
	}

	var m types.Measurement
	if name == ref.Algorithm && refMeasurement != nil {
		// Reuse the baseline pass instead of timing the reference twice.
		m = *refMeasurement
	} else {
		logger.Debug("Benchmarking", "algorithm", name)
		m, err = runCodec(c, target, originalSize)
		if err != nil {
			logger.Error("Compression pass failed", err, "algorithm", name)
			return types.NewFailedResult(name, originalSize, err.Error())
		}
	}

	w, err := r.calc.Score(m, ref)
	if err != nil {
		logger.Error("Score computation failed", err, "algorithm", name)
		return types.NewFailedResult(name, originalSize, fmt.Sprintf("score: %v", err))
	}

	logger.Debug("Algorithm measured",
		"algorithm", name, "compressed", m.CompressedSize, "elapsed", m.Elapsed, "score", w)
	return types.NewScoredResult(m, w)
}

func runCodec(c codec.Codec, target string, originalSize int64) (types.Measurement, error) {
	compressed, elapsed, err := c.Compress(target)
	if err != nil {
		return types.Measurement{}, err
	}
	return types.Measurement{
		Algorithm:      c.Name(),
		OriginalSize:   originalSize,
		CompressedSize: compressed,
		Elapsed:        elapsed,
	}, nil
}
