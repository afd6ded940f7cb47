package lutq

import "math/rand"

// LUT is a lookup table of float32 samples.
type LUT []float32

func (l LUT) Clone() LUT {
	out := make(LUT, len(l))
	copy(out, l)
	return out
}

func (l LUT) Len() int {
	return len(l)
}

// MinMax returns the smallest and largest finite sample in one traversal.
// ok is false when the table holds no finite sample.
func (l LUT) MinMax() (lo, hi float32, ok bool) {
	lo, hi = minMax(l)
	return lo, hi, lo <= hi
}

// IsFinite reports whether every sample is neither NaN nor infinite.
func (l LUT) IsFinite() bool {
	for _, v := range l {
		if v-v != 0 {
			return false
		}
	}
	return true
}

// minMax folds the running (min, max) pair over lut. NaN fails both
// comparisons and drops out on its own; infinities are only filtered
// on the slow path, once a bound comes back infinite. A table with no
// finite sample returns the inverted pair (+Inf, -Inf), so callers test
// lo > hi.
func minMax(lut []float32) (lo, hi float32) {
	lo, hi = posInf, negInf
	for _, v := range lut {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == negInf || hi == posInf {
		return minMaxFinite(lut)
	}
	return lo, hi
}

func minMaxFinite(lut []float32) (lo, hi float32) {
	lo, hi = posInf, negInf
	for _, v := range lut {
		if v-v != 0 {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

const (
	randLow  = -1000.0
	randHigh = 1000.0
)

// NewRandLUT draws n samples uniformly from [-1000, 1000). A nil rng uses
// the global source.
func NewRandLUT(n int, rng *rand.Rand) LUT {
	out := make(LUT, n)
	for i := range out {
		var f float32
		if rng == nil {
			f = rand.Float32()
		} else {
			f = rng.Float32()
		}
		out[i] = randLow + f*(randHigh-randLow)
	}
	return out
}

func NewRandLUTSet(count, n int, rng *rand.Rand) []LUT {
	out := make([]LUT, count)
	for i := range out {
		out[i] = NewRandLUT(n, rng)
	}
	return out
}
