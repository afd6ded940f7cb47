package lutq

import (
	"fmt"
	"strings"
)

type Quantizer interface {
	Quantize(lut LUT) Quantized15
	Name() string
}

var (
	_ Quantizer = ReferenceQuantizer{}
	_ Quantizer = FusedQuantizer{}
	_ Quantizer = VekQuantizer{}
	_ Quantizer = Float16Quantizer{}
)

type ReferenceQuantizer struct{}

func (q ReferenceQuantizer) Quantize(lut LUT) Quantized15 {
	k, b, codes := Quantize15Reference(lut)
	return Quantized15{Scale: k, Bias: b, Codes: codes}
}

func (q ReferenceQuantizer) Name() string {
	return "reference"
}

type FusedQuantizer struct{}

func (q FusedQuantizer) Quantize(lut LUT) Quantized15 {
	k, b, codes := Quantize15(lut)
	return Quantized15{Scale: k, Bias: b, Codes: codes}
}

func (q FusedQuantizer) Name() string {
	return "fused"
}

type VekQuantizer struct{}

func (q VekQuantizer) Quantize(lut LUT) Quantized15 {
	k, b, codes := Quantize15Vek(lut)
	return Quantized15{Scale: k, Bias: b, Codes: codes}
}

func (q VekQuantizer) Name() string {
	return "vek"
}

// QuantizerByName resolves "reference", "fused", "vek" and the
// "float16-" prefixed form of each.
func QuantizerByName(name string) (Quantizer, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if inner, ok := strings.CutPrefix(n, "float16-"); ok {
		q, err := QuantizerByName(inner)
		if err != nil {
			return nil, err
		}
		return Float16Quantizer{Inner: q}, nil
	}
	switch n {
	case "reference", "original":
		return ReferenceQuantizer{}, nil
	case "fused", "optimized":
		return FusedQuantizer{}, nil
	case "vek", "simd":
		return VekQuantizer{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownQuantizer, name)
}

func QuantizersByName(names []string) ([]Quantizer, error) {
	out := make([]Quantizer, 0, len(names))
	for _, n := range names {
		q, err := QuantizerByName(n)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}
