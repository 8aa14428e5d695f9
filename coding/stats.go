package coding

import (
	"fmt"
	"math"

	"github.com/arloliu/huffkit/errs"
	"github.com/arloliu/huffkit/format"
)

// Stats summarizes the effect of encoding a symbol stream.
//
// Sizes are logical bit counts: PreBits assumes format.SymbolWidth bits per
// symbol and PostBits is the sum of code word lengths.
type Stats struct {
	Symbols  uint64
	PreBits  uint64
	PostBits uint64
}

// Add accounts for one encoded symbol.
func (s *Stats) Add(c Code) {
	s.Symbols++
	s.PreBits += format.SymbolWidth
	s.PostBits += uint64(c.Len()) //nolint:gosec
}

// Saved returns PreBits - PostBits. It is negative when encoding inflates the input.
func (s Stats) Saved() int64 {
	return int64(s.PreBits) - int64(s.PostBits) //nolint:gosec
}

// AverageLength returns the mean code word length in bits per symbol, or 0 for no symbols.
func (s Stats) AverageLength() float64 {
	if s.Symbols == 0 {
		return 0
	}

	return float64(s.PostBits) / float64(s.Symbols)
}

// Ratio returns PostBits / PreBits, or 0 for no symbols.
func (s Stats) Ratio() float64 {
	if s.PreBits == 0 {
		return 0
	}

	return float64(s.PostBits) / float64(s.PreBits)
}

// Measure computes the statistics of encoding the input t was counted from with book.
//
// Returns errs.ErrInvalidFrequency if a bit count does not fit in a uint64.
func Measure[S Symbol](t *FrequencyTable[S], book *CodeBook[S]) (Stats, error) {
	if t.Total() > math.MaxUint64/format.SymbolWidth {
		return Stats{}, fmt.Errorf("%w: %d symbols overflow the pre-encoding bit count", errs.ErrInvalidFrequency, t.Total())
	}
	post, ok := book.WeightedLength(t)
	if !ok {
		return Stats{}, fmt.Errorf("%w: post-encoding bit count overflows", errs.ErrInvalidFrequency)
	}

	return Stats{
		Symbols:  t.Total(),
		PreBits:  t.Total() * format.SymbolWidth,
		PostBits: post,
	}, nil
}
