package lutq

import (
	"fmt"
	"math"
	"strings"
)

const (
	// Levels is the number of distinct codes a 4-bit quantization produces.
	Levels = 16
	// MaxCode is the largest code.
	MaxCode = Levels - 1
)

var (
	posInf = float32(math.Inf(1))
	negInf = float32(math.Inf(-1))
)

// Quantize15 maps lut onto 16 uniform levels, returning the step between
// levels, the value of code 0 and one code per sample, so that each sample
// is approximately code*scale + bias.
//
// min and max come from one fused traversal, and every code is computed by
// multiplying with the reciprocal 15/(max-min) instead of dividing by scale,
// unless the reciprocal overflows.
// Non-finite samples take no part in the bounds: NaN and -Inf map to 0 and
// +Inf maps to 15.
func Quantize15(lut []float32) (scale, bias float32, codes []uint8) {
	return Quantize15Into(nil, lut)
}

// Quantize15Into is Quantize15 writing the codes into dst's storage when it
// is large enough.
func Quantize15Into(dst []uint8, lut []float32) (scale, bias float32, codes []uint8) {
	codes = grow(dst, len(lut))
	if len(lut) == 0 {
		return 0, 0, codes
	}
	lo, hi := minMax(lut)
	if lo > hi {
		clear(codes)
		return 0, 0, codes
	}

	scale = max(hi-lo, 0) / MaxCode
	bias = lo
	if scale == 0 {
		clear(codes)
		return scale, bias, codes
	}

	inv := MaxCode / (hi - lo)
	if inv == posInf {
		// Ranges under ~4e-38 overflow the reciprocal while scale stays
		// positive.
		for i, y := range lut {
			codes[i] = toCode((y - lo) / scale)
		}
		return scale, bias, codes
	}
	for i, y := range lut {
		codes[i] = toCode((y - lo) * inv)
	}
	return scale, bias, codes
}

// Quantize15Reference is the straightforward formulation: one traversal for
// the minimum, another for the maximum, and a division by scale per sample.
func Quantize15Reference(lut []float32) (scale, bias float32, codes []uint8) {
	codes = make([]uint8, len(lut))
	lo := posInf
	for _, v := range lut {
		if v-v == 0 && v < lo {
			lo = v
		}
	}
	hi := negInf
	for _, v := range lut {
		if v-v == 0 && v > hi {
			hi = v
		}
	}
	if lo > hi {
		return 0, 0, codes
	}

	scale = max(hi-lo, 0) / MaxCode
	bias = lo
	if scale == 0 {
		return scale, bias, codes
	}
	for i, y := range lut {
		codes[i] = toCode((y - bias) / scale)
	}
	return scale, bias, codes
}

// toCode truncates a scaled sample. Finite samples always arrive in
// [0, 15] give or take rounding; NaN lands on 0 and +Inf on 15.
func toCode(c float32) uint8 {
	if c >= 0 && c < Levels {
		return uint8(c)
	}
	if c >= Levels {
		return MaxCode
	}
	return 0
}

func grow(dst []uint8, n int) []uint8 {
	if cap(dst) >= n {
		return dst[:n]
	}
	return make([]uint8, n)
}

// Quantized15 is the result of one quantization.
type Quantized15 struct {
	Scale float32
	Bias  float32
	Codes []uint8
}

func (q Quantized15) Len() int {
	return len(q.Codes)
}

// Value returns the level code i stands for.
func (q Quantized15) Value(i int) float32 {
	return float32(q.Codes[i])*q.Scale + q.Bias
}

// Agreement returns the fraction of codes equal to baseline's. Results of
// different lengths agree on nothing; two empty results agree fully.
func (q Quantized15) Agreement(baseline Quantized15) float64 {
	if len(q.Codes) != len(baseline.Codes) {
		return 0
	}
	if len(q.Codes) == 0 {
		return 1
	}
	same := 0
	for i, c := range q.Codes {
		if c == baseline.Codes[i] {
			same++
		}
	}
	return float64(same) / float64(len(q.Codes))
}

// MaxCodeDelta returns the largest per-sample code difference to baseline,
// or -1 if the lengths differ.
func (q Quantized15) MaxCodeDelta(baseline Quantized15) int {
	if len(q.Codes) != len(baseline.Codes) {
		return -1
	}
	worst := 0
	for i, c := range q.Codes {
		d := int(c) - int(baseline.Codes[i])
		if d < 0 {
			d = -d
		}
		worst = max(worst, d)
	}
	return worst
}

func (q Quantized15) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(scale %0.4f bias %0.4f n %d", q.Scale, q.Bias, len(q.Codes))
	if len(q.Codes) <= 32 {
		fmt.Fprintf(&sb, " %v", q.Codes)
	}
	sb.WriteString(")")
	return sb.String()
}
