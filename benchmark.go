package lutq

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/alitto/pond"
)

const benchmarkGroup = "quantize_15"

type PrintfFunc func(string, ...any)

type BenchmarkConfig struct {
	Sizes       []int
	Trials      int
	Parallelism int
	// Seed for the table generator; zero seeds from the clock.
	Seed       int64
	Quantizers []Quantizer
}

func DefaultBenchmarkConfig() BenchmarkConfig {
	return BenchmarkConfig{
		Sizes:       []int{100, 10_000, 1_000_000},
		Trials:      100,
		Parallelism: 1,
		Quantizers:  []Quantizer{ReferenceQuantizer{}, FusedQuantizer{}},
	}
}

type BenchmarkResult struct {
	Group   string
	Variant string
	Label   string
	Size    int
	Trials  int
	Elapsed time.Duration
	// Agreement and MaxDelta compare against the first configured quantizer.
	Agreement float64
	MaxDelta  int
	Histogram [Levels]int
}

func (r BenchmarkResult) Name() string {
	return r.Variant + "_" + r.Label
}

func (r BenchmarkResult) NsPerOp() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Trials)
}

// MBPerSec is the input throughput, counting four bytes per sample.
func (r BenchmarkResult) MBPerSec() float64 {
	secs := r.Elapsed.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(4*r.Size*r.Trials) / 1e6 / secs
}

func (r BenchmarkResult) String() string {
	return fmt.Sprintf("%s/%s: %0.1f ns/op %0.2f MB/s agreement %0.4f", r.Group, r.Name(), r.NsPerOp(), r.MBPerSec(), r.Agreement)
}

// SizeLabel names the table sizes of the standard groups and falls back to
// the number itself.
func SizeLabel(n int) string {
	switch n {
	case 100:
		return "small"
	case 10_000:
		return "medium"
	case 1_000_000:
		return "large"
	}
	return strconv.Itoa(n)
}

// Runner times quantizers against each other on shared tables. Trials run
// on a worker pool; with Parallelism 1 they run back to back.
type Runner struct {
	cfg    BenchmarkConfig
	rng    *rand.Rand
	logger PrintfFunc
	sink   atomic.Int64
}

func NewRunner(cfg BenchmarkConfig) (*Runner, error) {
	if len(cfg.Quantizers) == 0 {
		return nil, ErrNoQuantizers
	}
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadTrials, cfg.Trials)
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = 1
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixMicro()
	}
	return &Runner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}, nil
}

func (r *Runner) SetLogger(printf PrintfFunc) {
	r.logger = printf
}

func (r *Runner) log(s string, a ...any) {
	if r.logger != nil {
		r.logger(s, a...)
	}
}

// Run generates one random table per configured size and benchmarks every
// quantizer on it.
func (r *Runner) Run() ([]BenchmarkResult, error) {
	if len(r.cfg.Sizes) == 0 {
		return nil, ErrNoSizes
	}
	var out []BenchmarkResult
	for _, n := range r.cfg.Sizes {
		if n < 0 {
			return nil, fmt.Errorf("negative table size %d", n)
		}
		lut := NewRandLUT(n, r.rng)
		out = append(out, r.RunLUT(SizeLabel(n), lut)...)
	}
	return out, nil
}

// RunLUT benchmarks every quantizer on lut.
func (r *Runner) RunLUT(label string, lut LUT) []BenchmarkResult {
	pool := pond.New(r.cfg.Parallelism, 0, pond.MinWorkers(r.cfg.Parallelism))
	defer pool.StopAndWait()

	baseline := r.cfg.Quantizers[0].Quantize(lut)
	out := make([]BenchmarkResult, 0, len(r.cfg.Quantizers))
	for _, q := range r.cfg.Quantizers {
		res := q.Quantize(lut)
		levels := NewLevelSet(res)
		br := BenchmarkResult{
			Group:     benchmarkGroup,
			Variant:   q.Name(),
			Label:     label,
			Size:      len(lut),
			Trials:    r.cfg.Trials,
			Agreement: res.Agreement(baseline),
			MaxDelta:  res.MaxCodeDelta(baseline),
			Histogram: levels.Histogram(),
		}

		group := pool.Group()
		start := time.Now()
		for range r.cfg.Trials {
			group.Submit(func() {
				r.sink.Add(int64(q.Quantize(lut).Len()))
			})
		}
		group.Wait()
		br.Elapsed = time.Since(start)

		r.log("%s levels %s", br, levels)
		out = append(out, br)
	}
	return out
}
