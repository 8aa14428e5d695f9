// Package bitstream packs code words into bytes and reads them back, MSB first,
// on top of github.com/icza/bitio.
package bitstream

import (
	"bytes"
	"errors"
	"io"

	"github.com/icza/bitio"

	"github.com/arloliu/huffkit/coding"
	"github.com/arloliu/huffkit/internal/pool"
)

// Writer packs code words into a pooled byte buffer.
//
// The final byte is zero padded; Bits reports the number of meaningful bits.
type Writer struct {
	buf  *pool.ByteBuffer
	bw   *bitio.Writer
	bits uint64
}

var _ coding.BitSink = (*Writer)(nil)

// NewWriter returns a Writer backed by a buffer from the payload pool.
// Callers must call Release when the packed bytes are no longer needed.
func NewWriter() *Writer {
	buf := pool.GetPayloadBuffer()

	return &Writer{buf: buf, bw: bitio.NewWriter(buf)}
}

// WriteCode appends the bits of c.
func (w *Writer) WriteCode(c coding.Code) error {
	n := c.Len()
	for start := 0; start < n; start += 64 {
		end := min(start+64, n)
		var word uint64
		for i := start; i < end; i++ {
			word = word<<1 | uint64(c.Bit(i))
		}
		if err := w.bw.WriteBits(word, uint8(end-start)); err != nil { //nolint:gosec
			return err
		}
	}
	w.bits += uint64(n) //nolint:gosec

	return nil
}

// Bits returns the number of bits written so far.
func (w *Writer) Bits() uint64 {
	return w.bits
}

// Finish pads the last byte and returns the packed bytes. The returned slice
// aliases the pooled buffer and is valid until Release.
func (w *Writer) Finish() ([]byte, error) {
	if err := w.bw.Close(); err != nil {
		return nil, err
	}

	return w.buf.Bytes(), nil
}

// Release returns the underlying buffer to the pool.
func (w *Writer) Release() {
	pool.PutPayloadBuffer(w.buf)
	w.buf = nil
}

// Reader reads exactly a fixed number of bits from packed bytes, ignoring the
// padding of the last byte.
type Reader struct {
	br        *bitio.Reader
	remaining uint64
}

var _ coding.BitSource = (*Reader)(nil)

// NewReader returns a Reader over the first bits bits of data.
func NewReader(data []byte, bits uint64) *Reader {
	return &Reader{br: bitio.NewReader(bytes.NewReader(data)), remaining: bits}
}

// ReadBit implements coding.BitSource. It returns io.EOF after the configured
// number of bits and io.ErrUnexpectedEOF if data holds fewer bits.
func (r *Reader) ReadBit() (byte, error) {
	if r.remaining == 0 {
		return 0, io.EOF
	}
	b, err := r.br.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.ErrUnexpectedEOF
		}

		return 0, err
	}
	r.remaining--
	if b {
		return 1, nil
	}

	return 0, nil
}

// Remaining returns the number of bits left to read.
func (r *Reader) Remaining() uint64 {
	return r.remaining
}
