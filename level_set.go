package lutq

import (
	"fmt"

	"github.com/kelindar/bitmap"
)

// LevelSet records, for every code, the positions of the samples that
// quantized to it.
type LevelSet struct {
	levels [Levels]bitmap.Bitmap
	n      int
}

func NewLevelSet(q Quantized15) *LevelSet {
	ls := &LevelSet{n: len(q.Codes)}
	for i, c := range q.Codes {
		ls.levels[c&MaxCode].Set(uint32(i))
	}
	return ls
}

func (ls *LevelSet) Len() int {
	return ls.n
}

func (ls *LevelSet) Count(code uint8) int {
	if code > MaxCode {
		return 0
	}
	return ls.levels[code].Count()
}

func (ls *LevelSet) Contains(code uint8, i int) bool {
	if code > MaxCode || i < 0 {
		return false
	}
	return ls.levels[code].Contains(uint32(i))
}

// Positions lists the sample indexes holding code, in ascending order.
func (ls *LevelSet) Positions(code uint8) []uint32 {
	if code > MaxCode {
		return nil
	}
	out := make([]uint32, 0, ls.levels[code].Count())
	ls.levels[code].Range(func(x uint32) {
		out = append(out, x)
	})
	return out
}

func (ls *LevelSet) Histogram() [Levels]int {
	var h [Levels]int
	for i := range ls.levels {
		h[i] = ls.levels[i].Count()
	}
	return h
}

// Occupied returns how many levels hold at least one sample.
func (ls *LevelSet) Occupied() int {
	n := 0
	for i := range ls.levels {
		if ls.levels[i].Count() != 0 {
			n++
		}
	}
	return n
}

func (ls *LevelSet) String() string {
	return fmt.Sprint(ls.Histogram())
}
