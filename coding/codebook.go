package coding

import (
	"fmt"
	"iter"
	"maps"
	"math/bits"
	"slices"

	"github.com/arloliu/huffkit/errs"
)

// CodeBook maps every symbol of a code tree to its code word.
//
// No code word is a prefix of another. A CodeBook is immutable after
// construction and safe for concurrent use.
type CodeBook[S Symbol] struct {
	codes   map[S]Code
	symbols []S // ascending
}

// NewCodeBook derives the code book of t by depth-first traversal, appending 0
// for every left edge and 1 for every right edge.
//
// A nil tree yields an empty code book. The symbol of a single-leaf tree is
// assigned the code "0".
func NewCodeBook[S Symbol](t *Tree[S]) *CodeBook[S] {
	book := &CodeBook[S]{codes: make(map[S]Code)}
	if t == nil {
		return book
	}

	if t.root.IsLeaf() {
		book.codes[t.root.symbol] = Code{bits: "0"}
	} else {
		assignCodes(t.root, "", book.codes)
	}
	book.symbols = slices.Sorted(maps.Keys(book.codes))

	return book
}

func assignCodes[S Symbol](n *Node[S], prefix string, codes map[S]Code) {
	if n.IsLeaf() {
		codes[n.symbol] = Code{bits: prefix}
		return
	}
	assignCodes(n.left, prefix+"0", codes)
	assignCodes(n.right, prefix+"1", codes)
}

// CodeBookFromCodes builds a code book from explicit code words.
//
// Returns errs.ErrInvalidCodeBook if any code word is empty or is a prefix of
// another code word.
func CodeBookFromCodes[S Symbol](codes map[S]Code) (*CodeBook[S], error) {
	book := &CodeBook[S]{
		codes:   maps.Clone(codes),
		symbols: slices.Sorted(maps.Keys(codes)),
	}
	if book.codes == nil {
		book.codes = make(map[S]Code)
	}

	// Sorting the words lexicographically places any prefix directly before a word it prefixes.
	words := make([]string, 0, len(codes))
	for s, c := range codes {
		if c.Len() == 0 {
			return nil, fmt.Errorf("%w: empty code word for symbol %v", errs.ErrInvalidCodeBook, s)
		}
		words = append(words, c.bits)
	}
	slices.Sort(words)
	for i := 1; i < len(words); i++ {
		prev, cur := Code{bits: words[i-1]}, Code{bits: words[i]}
		if cur.HasPrefix(prev) {
			return nil, fmt.Errorf("%w: code %s is a prefix of %s", errs.ErrInvalidCodeBook, prev, cur)
		}
	}

	return book, nil
}

// Code returns the code word of s. ok is false if s has no code word.
func (b *CodeBook[S]) Code(s S) (c Code, ok bool) {
	c, ok = b.codes[s]
	return c, ok
}

// Len returns the number of symbols in the code book.
func (b *CodeBook[S]) Len() int {
	return len(b.symbols)
}

// Symbols returns the symbols of the code book in ascending order.
func (b *CodeBook[S]) Symbols() []S {
	return slices.Clone(b.symbols)
}

// All iterates over (symbol, code) pairs in ascending symbol order.
func (b *CodeBook[S]) All() iter.Seq2[S, Code] {
	return func(yield func(S, Code) bool) {
		for _, s := range b.symbols {
			if !yield(s, b.codes[s]) {
				return
			}
		}
	}
}

// WeightedLength returns the sum of count x code length over all symbols of t,
// i.e. the encoded size in bits of the input t was counted from.
//
// ok is false if the sum does not fit in a uint64, which only happens for
// counts that were not taken from a real input.
func (b *CodeBook[S]) WeightedLength(t *FrequencyTable[S]) (total uint64, ok bool) {
	for s, n := range t.All() {
		hi, lo := bits.Mul64(n, uint64(b.codes[s].Len())) //nolint:gosec
		if hi != 0 {
			return 0, false
		}
		var carry uint64
		total, carry = bits.Add64(total, lo, 0)
		if carry != 0 {
			return 0, false
		}
	}

	return total, true
}

// Encode lazily maps every symbol of seq to its code word, in input order.
//
// If a symbol has no code word the sequence yields an error wrapping
// errs.ErrSymbolNotInCodebook and stops.
func (b *CodeBook[S]) Encode(seq iter.Seq[S]) iter.Seq2[Code, error] {
	return func(yield func(Code, error) bool) {
		var pos int
		for s := range seq {
			c, ok := b.codes[s]
			if !ok {
				yield(Code{}, fmt.Errorf("%w: symbol %v at position %d", errs.ErrSymbolNotInCodebook, s, pos))
				return
			}
			if !yield(c, nil) {
				return
			}
			pos++
		}
	}
}

// EncodeTo writes the code word of every symbol of seq to sink and returns the
// statistics of the encoded stream.
func (b *CodeBook[S]) EncodeTo(sink BitSink, seq iter.Seq[S]) (Stats, error) {
	var stats Stats
	for c, err := range b.Encode(seq) {
		if err != nil {
			return stats, err
		}
		if err := sink.WriteCode(c); err != nil {
			return stats, err
		}
		stats.Add(c)
	}

	return stats, nil
}

// Encode builds the code book of symbols and returns it together with the
// concatenated encoded bit sequence and its statistics.
func Encode[S Symbol](symbols []S) (*CodeBook[S], Code, Stats, error) {
	book := NewCodeBook(BuildTree(NewFrequencyTable(symbols)))

	var (
		codes = make([]Code, 0, len(symbols))
		stats Stats
	)
	for c, err := range book.Encode(slices.Values(symbols)) {
		if err != nil {
			return nil, Code{}, Stats{}, err
		}
		codes = append(codes, c)
		stats.Add(c)
	}

	return book, Join(codes...), stats, nil
}
