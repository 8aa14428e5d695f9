package coding

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/huffkit/errs"
)

// Code is an immutable ordered sequence of bits, rendered as '0' and '1' characters.
//
// A Code is used both for single code words and for concatenated encoded
// streams (see Join).
type Code struct {
	bits string
}

// ParseCode parses a string of '0' and '1' characters.
func ParseCode(s string) (Code, error) {
	for i := range len(s) {
		if s[i] != '0' && s[i] != '1' {
			return Code{}, fmt.Errorf("%w: unexpected character %q at position %d", errs.ErrInvalidCode, s[i], i)
		}
	}

	return Code{bits: s}, nil
}

// MustParseCode is like ParseCode but panics on invalid input.
func MustParseCode(s string) Code {
	c, err := ParseCode(s)
	if err != nil {
		panic(err)
	}

	return c
}

// Join concatenates codes into a single bit sequence.
func Join(codes ...Code) Code {
	var sb strings.Builder
	for _, c := range codes {
		sb.WriteString(c.bits)
	}

	return Code{bits: sb.String()}
}

// Len returns the number of bits.
func (c Code) Len() int {
	return len(c.bits)
}

// Bit returns the i-th bit (0 or 1). It panics if i is out of range.
func (c Code) Bit(i int) byte {
	return c.bits[i] - '0'
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	return strings.HasPrefix(c.bits, p.bits)
}

// Append returns c extended by one bit.
func (c Code) Append(bit byte) Code {
	if bit == 0 {
		return Code{bits: c.bits + "0"}
	}

	return Code{bits: c.bits + "1"}
}

func (c Code) String() string {
	return c.bits
}

// BitSource supplies bits one at a time. ReadBit returns io.EOF once the
// sequence is exhausted.
type BitSource interface {
	ReadBit() (byte, error)
}

// BitSink consumes code words.
type BitSink interface {
	WriteCode(c Code) error
}

// CodeReader is a BitSource over a Code.
type CodeReader struct {
	code Code
	pos  int
}

var _ BitSource = (*CodeReader)(nil)

// NewCodeReader returns a BitSource reading the bits of c from first to last.
func NewCodeReader(c Code) *CodeReader {
	return &CodeReader{code: c}
}

// ReadBit implements BitSource.
func (r *CodeReader) ReadBit() (byte, error) {
	if r.pos >= r.code.Len() {
		return 0, io.EOF
	}
	bit := r.code.Bit(r.pos)
	r.pos++

	return bit, nil
}
