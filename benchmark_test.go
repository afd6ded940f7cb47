package lutq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunnerValidation(t *testing.T) {
	_, err := NewRunner(BenchmarkConfig{Trials: 1})
	assert.ErrorIs(t, err, ErrNoQuantizers)

	_, err = NewRunner(BenchmarkConfig{Quantizers: []Quantizer{FusedQuantizer{}}})
	assert.ErrorIs(t, err, ErrBadTrials)

	r, err := NewRunner(BenchmarkConfig{Trials: 1, Quantizers: []Quantizer{FusedQuantizer{}}})
	require.NoError(t, err)
	_, err = r.Run()
	assert.ErrorIs(t, err, ErrNoSizes)
}

func TestRunnerRun(t *testing.T) {
	cfg := BenchmarkConfig{
		Sizes:       []int{100, 257},
		Trials:      5,
		Parallelism: 3,
		Seed:        99,
		Quantizers:  []Quantizer{ReferenceQuantizer{}, FusedQuantizer{}, VekQuantizer{}},
	}
	r, err := NewRunner(cfg)
	require.NoError(t, err)
	var lines []string
	r.SetLogger(func(s string, a ...any) {
		lines = append(lines, s)
	})

	results, err := r.Run()
	require.NoError(t, err)
	require.Len(t, results, 6)
	assert.Len(t, lines, 6)

	assert.Equal(t, "reference_small", results[0].Name())
	assert.Equal(t, "fused_small", results[1].Name())
	assert.Equal(t, "vek_257", results[5].Name())
	for _, res := range results {
		assert.Equal(t, "quantize_15", res.Group)
		assert.Equal(t, 5, res.Trials)
		assert.Positive(t, res.Elapsed)
		assert.Positive(t, res.NsPerOp())
		assert.GreaterOrEqual(t, res.Agreement, 0.99)
		assert.LessOrEqual(t, res.MaxDelta, 1)
		total := 0
		for _, n := range res.Histogram {
			total += n
		}
		assert.Equal(t, res.Size, total)
		assert.True(t, strings.HasPrefix(res.String(), "quantize_15/"+res.Name()))
	}
	assert.Equal(t, 1.0, results[0].Agreement)
	assert.Equal(t, int64(3*5*100+3*5*257), r.sink.Load())
}

func TestRunnerRunLUTEmpty(t *testing.T) {
	r, err := NewRunner(BenchmarkConfig{Trials: 2, Quantizers: []Quantizer{FusedQuantizer{}}})
	require.NoError(t, err)
	results := r.RunLUT("empty", LUT{})
	require.Len(t, results, 1)
	assert.Equal(t, 1.0, results[0].Agreement)
	assert.Equal(t, 0.0, results[0].MBPerSec())
	assert.Equal(t, "fused_empty", results[0].Name())
}

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, "small", SizeLabel(100))
	assert.Equal(t, "medium", SizeLabel(10_000))
	assert.Equal(t, "large", SizeLabel(1_000_000))
	assert.Equal(t, "42", SizeLabel(42))
}

func TestBenchmarkResultRates(t *testing.T) {
	r := BenchmarkResult{Size: 1000, Trials: 10, Elapsed: 1000000}
	assert.Equal(t, 100000.0, r.NsPerOp())
	assert.InDelta(t, 40.0, r.MBPerSec(), 1e-9)
	assert.Equal(t, 0.0, BenchmarkResult{}.NsPerOp())
}
