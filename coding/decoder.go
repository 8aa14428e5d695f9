package coding

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/huffkit/errs"
)

// trieNode is a node of the decoding tree. Unlike Node it may have a single
// child, which happens for the one-symbol code book {s: "0"}.
type trieNode[S Symbol] struct {
	child  [2]*trieNode[S]
	leaf   bool
	symbol S
}

// Decoder decodes bit sequences produced with a CodeBook.
//
// A Decoder is immutable and safe for concurrent use.
type Decoder[S Symbol] struct {
	root *trieNode[S]
}

// NewDecoder builds the decoding tree of book.
//
// Returns errs.ErrInvalidCodeBook if the code words of book are not prefix-free.
func NewDecoder[S Symbol](book *CodeBook[S]) (*Decoder[S], error) {
	root := &trieNode[S]{}
	for s, c := range book.All() {
		if c.Len() == 0 {
			return nil, fmt.Errorf("%w: empty code word for symbol %v", errs.ErrInvalidCodeBook, s)
		}
		n := root
		for i := range c.Len() {
			if n.leaf {
				return nil, fmt.Errorf("%w: code %s of symbol %v extends another code word", errs.ErrInvalidCodeBook, c, s)
			}
			bit := c.Bit(i)
			if n.child[bit] == nil {
				n.child[bit] = &trieNode[S]{}
			}
			n = n.child[bit]
		}
		if n.leaf || n.child[0] != nil || n.child[1] != nil {
			return nil, fmt.Errorf("%w: code %s of symbol %v is a prefix of another code word", errs.ErrInvalidCodeBook, c, s)
		}
		n.leaf = true
		n.symbol = s
	}

	return &Decoder[S]{root: root}, nil
}

// Next decodes one symbol from src.
//
// It returns io.EOF if src is exhausted before the first bit, errs.ErrTruncatedCode
// if src ends in the middle of a code word, and errs.ErrInvalidCode if the bits do
// not follow any code word.
func (d *Decoder[S]) Next(src BitSource) (s S, err error) {
	n := d.root
	read := 0
	for !n.leaf {
		bit, err := src.ReadBit()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if read == 0 {
					return s, io.EOF
				}

				return s, fmt.Errorf("%w: stream ended after %d bits of a code word", errs.ErrTruncatedCode, read)
			}

			return s, err
		}
		read++
		if bit > 1 || n.child[bit] == nil {
			return s, fmt.Errorf("%w: no code word continues with bit %d after %d bits", errs.ErrInvalidCode, bit, read-1)
		}
		n = n.child[bit]
	}

	return n.symbol, nil
}

// DecodeAll decodes symbols until src is exhausted.
func (d *Decoder[S]) DecodeAll(src BitSource) ([]S, error) {
	var out []S
	for {
		s, err := d.Next(src)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("decode symbol %d: %w", len(out), err)
		}
		out = append(out, s)
	}
}

// DecodeN decodes exactly n symbols from src, leaving any trailing bits
// (such as byte padding) unread.
func (d *Decoder[S]) DecodeN(src BitSource, n int) ([]S, error) {
	out := make([]S, 0, n)
	for len(out) < n {
		s, err := d.Next(src)
		if errors.Is(err, io.EOF) {
			return out, fmt.Errorf("%w: got %d of %d symbols", errs.ErrTruncatedCode, len(out), n)
		}
		if err != nil {
			return out, fmt.Errorf("decode symbol %d: %w", len(out), err)
		}
		out = append(out, s)
	}

	return out, nil
}

// Decode decodes the concatenated bit sequence bits with book.
func Decode[S Symbol](book *CodeBook[S], bits Code) ([]S, error) {
	dec, err := NewDecoder(book)
	if err != nil {
		return nil, err
	}

	return dec.DecodeAll(NewCodeReader(bits))
}
