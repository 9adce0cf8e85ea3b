package bench

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thealper2/weissman-score-benchmark/pkg/codec"
	"github.com/thealper2/weissman-score-benchmark/pkg/config"
	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.HistoryEnabled = false
	return cfg
}

func testTarget(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target.txt")
	data := bytes.Repeat([]byte("benchmark me, please: some repetitive plain text\n"), 400)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func newTestRunner() *Runner {
	cfg := testConfig()
	return NewRunner(cfg, codec.NewRegistry(cfg.Level))
}

func TestRun_TargetNotFound(t *testing.T) {
	runner := newTestRunner()

	_, err := runner.Run(filepath.Join(t.TempDir(), "missing"), []string{codec.Gzip})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrTargetNotFound))
}

func TestRun_SingleAlgorithm(t *testing.T) {
	runner := newTestRunner()
	target := testTarget(t)

	rs, err := runner.Run(target, []string{codec.Gzip})
	require.NoError(t, err)
	require.Len(t, rs.Results, 1)

	r := rs.Results[0]
	assert.Equal(t, codec.Gzip, r.Algorithm)
	assert.False(t, r.Failed)
	assert.Positive(t, r.CompressedSize)
	assert.Less(t, r.CompressedSize, rs.TotalSize)
	assert.Greater(t, r.CompressionRatio, 1.0)
	// gzip referenced against itself scores exactly alpha.
	assert.Equal(t, rs.Alpha, r.WeissmanScore)

	assert.NotEmpty(t, rs.RunID)
	assert.Equal(t, codec.Gzip, rs.Reference)
	assert.False(t, rs.CreatedAt.IsZero())
}

func TestRun_PartialFailure(t *testing.T) {
	runner := newTestRunner()
	target := testTarget(t)

	rs, err := runner.Run(target, []string{codec.Gzip, "bogus-algorithm"})
	require.NoError(t, err)
	require.Len(t, rs.Results, 2)

	assert.False(t, rs.Results[0].Failed)
	assert.Equal(t, codec.Gzip, rs.Results[0].Algorithm)

	assert.True(t, rs.Results[1].Failed)
	assert.Equal(t, "bogus-algorithm", rs.Results[1].Algorithm)
	assert.Contains(t, rs.Results[1].FailureReason, "bogus-algorithm")

	assert.Equal(t, 1, rs.Succeeded())
	assert.Equal(t, 1, rs.Failed())
}

func TestRun_RequestOrderPreserved(t *testing.T) {
	runner := newTestRunner()
	target := testTarget(t)

	requested := []string{codec.Tar, codec.Zstd, codec.Gzip, codec.LZ4}
	rs, err := runner.Run(target, requested)
	require.NoError(t, err)
	require.Len(t, rs.Results, len(requested))

	for i, name := range requested {
		assert.Equal(t, name, rs.Results[i].Algorithm)
	}
}

func TestRun_AllExpandsToRegistry(t *testing.T) {
	runner := newTestRunner()
	target := testTarget(t)

	rs, err := runner.Run(target, []string{AlgorithmAll})
	require.NoError(t, err)
	require.Len(t, rs.Results, len(codec.Names()))

	for i, name := range codec.Names() {
		assert.Equal(t, name, rs.Results[i].Algorithm)
	}
}

func TestRun_ReferenceNotRequested(t *testing.T) {
	// zstd alone still gets a score because gzip runs out of band.
	runner := newTestRunner()
	target := testTarget(t)

	rs, err := runner.Run(target, []string{codec.Zstd})
	require.NoError(t, err)
	require.Len(t, rs.Results, 1)
	assert.False(t, rs.Results[0].Failed)
	assert.NotZero(t, rs.Results[0].WeissmanScore)
}

func TestRun_UnknownReferenceIsFatal(t *testing.T) {
	cfg := testConfig()
	cfg.Reference = "bogus-reference"
	runner := NewRunner(cfg, codec.NewRegistry(cfg.Level))

	_, err := runner.Run(testTarget(t), []string{codec.Gzip})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrCodecUnavailable))
}

func TestRun_DirectoryTarget(t *testing.T) {
	runner := newTestRunner()

	root := filepath.Join(t.TempDir(), "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o750))
	data := bytes.Repeat([]byte("directory content to compress\n"), 200)
	require.NoError(t, os.WriteFile(filepath.Join(root, "one.txt"), data, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "two.txt"), data, 0o600))

	rs, err := runner.Run(root, []string{codec.Gzip, codec.Zip, codec.Tar})
	require.NoError(t, err)
	assert.Equal(t, int64(2*len(data)), rs.TotalSize)
	assert.Equal(t, 3, rs.Succeeded())
}

func TestRun_DuplicatesDropped(t *testing.T) {
	runner := newTestRunner()

	rs, err := runner.Run(testTarget(t), []string{codec.Gzip, codec.Gzip, codec.Tar})
	require.NoError(t, err)
	require.Len(t, rs.Results, 2)
	assert.Equal(t, codec.Gzip, rs.Results[0].Algorithm)
	assert.Equal(t, codec.Tar, rs.Results[1].Algorithm)
}
