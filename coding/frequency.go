package coding

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/arloliu/huffkit/errs"
)

// Symbol is the set of types that can be coded. Floating-point types are
// excluded because NaN keys would break the one-entry-per-symbol invariant.
type Symbol interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~string
}

// FrequencyTable maps each distinct symbol to its number of occurrences.
//
// A FrequencyTable is immutable after construction and safe for concurrent reads.
type FrequencyTable[S Symbol] struct {
	counts  map[S]uint64
	symbols []S // ascending
	total   uint64
}

// NewFrequencyTable counts the occurrences of every symbol in symbols.
// An empty input produces an empty table.
func NewFrequencyTable[S Symbol](symbols []S) *FrequencyTable[S] {
	return CountSeq(slices.Values(symbols))
}

// CountSeq counts the occurrences of every symbol produced by seq.
func CountSeq[S Symbol](seq iter.Seq[S]) *FrequencyTable[S] {
	counts := make(map[S]uint64)
	var total uint64
	for s := range seq {
		counts[s]++
		total++
	}

	return newFrequencyTable(counts, total)
}

// FrequencyTableFromCounts builds a table from precomputed counts, e.g. counts
// transmitted out-of-band or read back from a container.
//
// Returns errs.ErrInvalidFrequency if any count is zero.
func FrequencyTableFromCounts[S Symbol](counts map[S]uint64) (*FrequencyTable[S], error) {
	owned := make(map[S]uint64, len(counts))
	var total uint64
	for s, n := range counts {
		if n == 0 {
			return nil, fmt.Errorf("%w: symbol %v has zero count", errs.ErrInvalidFrequency, s)
		}
		if total+n < total {
			return nil, fmt.Errorf("%w: total count overflows", errs.ErrInvalidFrequency)
		}
		owned[s] = n
		total += n
	}

	return newFrequencyTable(owned, total), nil
}

func newFrequencyTable[S Symbol](counts map[S]uint64, total uint64) *FrequencyTable[S] {
	return &FrequencyTable[S]{
		counts:  counts,
		symbols: slices.Sorted(maps.Keys(counts)),
		total:   total,
	}
}

// Count returns the number of occurrences of s, or 0 if s was never observed.
func (t *FrequencyTable[S]) Count(s S) uint64 {
	return t.counts[s]
}

// Len returns the number of distinct symbols.
func (t *FrequencyTable[S]) Len() int {
	return len(t.symbols)
}

// Total returns the sum of all counts, i.e. the length of the counted input.
func (t *FrequencyTable[S]) Total() uint64 {
	return t.total
}

// Symbols returns the distinct symbols in ascending order.
func (t *FrequencyTable[S]) Symbols() []S {
	return slices.Clone(t.symbols)
}

// All iterates over (symbol, count) pairs in ascending symbol order.
func (t *FrequencyTable[S]) All() iter.Seq2[S, uint64] {
	return func(yield func(S, uint64) bool) {
		for _, s := range t.symbols {
			if !yield(s, t.counts[s]) {
				return
			}
		}
	}
}
