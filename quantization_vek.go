package lutq

import (
	"github.com/viterin/vek/vek32"
)

// Quantize15Vek computes the same codes as Quantize15, scaling the samples
// with vek32 kernels. The bounds come from the fused traversal so that
// non-finite samples are ignored the same way.
func Quantize15Vek(lut []float32) (scale, bias float32, codes []uint8) {
	codes = make([]uint8, len(lut))
	if len(lut) == 0 {
		return 0, 0, codes
	}
	lo, hi := minMax(lut)
	if lo > hi {
		return 0, 0, codes
	}

	scale = max(hi-lo, 0) / MaxCode
	bias = lo
	if scale == 0 {
		return scale, bias, codes
	}

	inv := MaxCode / (hi - lo)
	if inv == posInf {
		for i, y := range lut {
			codes[i] = toCode((y - lo) / scale)
		}
		return scale, bias, codes
	}
	buf := make([]float32, len(lut))
	vek32.SubNumber_Into(buf, lut, lo)
	vek32.MulNumber_Inplace(buf, inv)
	for i, c := range buf {
		codes[i] = toCode(c)
	}
	return scale, bias, codes
}
