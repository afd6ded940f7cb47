package lutq

import (
	"github.com/x448/float16"
)

// LUTFromFloat16 widens a half-precision table.
func LUTFromFloat16(in []float16.Float16) LUT {
	out := make(LUT, len(in))
	for i, x := range in {
		out[i] = x.Float32()
	}
	return out
}

// ToFloat16 rounds every sample to the nearest half-precision value.
func (l LUT) ToFloat16() []float16.Float16 {
	out := make([]float16.Float16, len(l))
	for i, x := range l {
		out[i] = float16.Fromfloat32(x)
	}
	return out
}

func Quantize15Float16(lut []float16.Float16) (scale, bias float32, codes []uint8) {
	return Quantize15(LUTFromFloat16(lut))
}

// Float16Quantizer quantizes the half-precision rendition of a table with
// Inner, which defaults to FusedQuantizer.
type Float16Quantizer struct {
	Inner Quantizer
}

func (q Float16Quantizer) Quantize(lut LUT) Quantized15 {
	return q.inner().Quantize(LUTFromFloat16(lut.ToFloat16()))
}

func (q Float16Quantizer) Name() string {
	return "float16-" + q.inner().Name()
}

func (q Float16Quantizer) inner() Quantizer {
	if q.Inner == nil {
		return FusedQuantizer{}
	}
	return q.Inner
}
