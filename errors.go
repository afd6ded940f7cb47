package lutq

import (
	"errors"
	"fmt"
)

var (
	ErrNonFinite        = errors.New("Sample is NaN or infinite")
	ErrUnknownQuantizer = errors.New("Unknown quantizer")
	ErrNoQuantizers     = errors.New("No quantizers to benchmark")
	ErrNoSizes          = errors.New("No table sizes to benchmark")
	ErrBadTrials        = errors.New("Trials must be positive")
)

// CheckFinite returns ErrNonFinite for the first NaN or infinite sample.
func CheckFinite(lut []float32) error {
	for i, v := range lut {
		if v-v != 0 {
			return fmt.Errorf("%w: index %d (%v)", ErrNonFinite, i, v)
		}
	}
	return nil
}
