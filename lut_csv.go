package lutq

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// LoadLUTs reads one table per CSV record. Records may differ in length.
func LoadLUTs(r io.Reader) ([]LUT, error) {
	c := csv.NewReader(r)
	c.ReuseRecord = true
	c.FieldsPerRecord = -1
	c.TrimLeadingSpace = true
	var out []LUT
	for {
		rec, err := c.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		lut := make(LUT, len(rec))
		for i, st := range rec {
			x, err := strconv.ParseFloat(st, 32)
			if err != nil {
				return nil, fmt.Errorf("record %d field %d: %w", len(out), i, err)
			}
			lut[i] = float32(x)
		}
		out = append(out, lut)
	}
	return out, nil
}
