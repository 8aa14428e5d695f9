// Package report renders the outcome of an encoding session: the frequency
// and code word of every symbol followed by the logical bit saving.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/huffkit/coding"
	"github.com/arloliu/huffkit/internal/options"
)

const (
	// asciiMax is the last symbol printed by default.
	asciiMax = 127
	// byteMax is the last symbol printed with WithFullRange.
	byteMax = 255
)

// Summary is what a session hands to its Reporter once encoding succeeded.
type Summary struct {
	Table *coding.FrequencyTable[byte]
	Book  *coding.CodeBook[byte]
	Stats coding.Stats
}

// Reporter receives the summary of an encoding session.
type Reporter interface {
	Report(s Summary) error
}

// Discard is a Reporter that ignores every summary.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(Summary) error { return nil }

// TextReporter prints a human-readable report:
//
//	a Frequency: 5 Code : 0
//	b Frequency: 2 Code : 110
//	...
//	Encoding has saved 65 bits!
//
// Symbols are listed in ascending order. Only symbols that occur in the input
// are listed, and by default only the 7-bit range 0-127. Symbols outside the
// printable ASCII range are written as [0x<octal>].
type TextReporter struct {
	w         io.Writer
	fullRange bool
}

var _ Reporter = (*TextReporter)(nil)

// Option configures a TextReporter.
type Option = options.Option[*TextReporter]

// WithWriter sets the destination of the report. Default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return options.New(func(r *TextReporter) error {
		if w == nil {
			return fmt.Errorf("report writer must not be nil")
		}
		r.w = w

		return nil
	})
}

// WithFullRange lists symbols 128-255 as well.
func WithFullRange() Option {
	return options.NoError(func(r *TextReporter) {
		r.fullRange = true
	})
}

// NewTextReporter creates a TextReporter.
func NewTextReporter(opts ...Option) (*TextReporter, error) {
	r := &TextReporter{w: os.Stdout}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Report writes the per-symbol table and the saving line.
func (r *TextReporter) Report(s Summary) error {
	last := asciiMax
	if r.fullRange {
		last = byteMax
	}

	bw := bufio.NewWriter(r.w)
	if s.Table != nil {
		for sym, n := range s.Table.All() {
			if int(sym) > last {
				break
			}

			code := "-"
			if s.Book != nil {
				if c, ok := s.Book.Code(sym); ok {
					code = c.String()
				}
			}
			fmt.Fprintf(bw, "%s Frequency: %d Code : %s\n", Symbol(sym), n, code)
		}
	}
	fmt.Fprintf(bw, "Encoding has saved %d bits!\n", s.Stats.Saved())

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// Symbol renders a symbol for display: printable ASCII as itself, anything
// else as its octal value in brackets, e.g. "[0x12]" for a line feed.
func Symbol(b byte) string {
	if b >= ' ' && b < 0x7f {
		return string(rune(b))
	}

	return fmt.Sprintf("[0x%o]", b)
}
