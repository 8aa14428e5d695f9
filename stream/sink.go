package stream

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/arloliu/huffkit/coding"
	"github.com/arloliu/huffkit/errs"
	"github.com/arloliu/huffkit/internal/pool"
)

// SymbolSink receives encoded output.
type SymbolSink interface {
	// WriteCodes writes one code word per line, in sequence order. An error
	// yielded by codes aborts the write and is returned as is; medium failures
	// wrap errs.ErrSinkUnavailable.
	WriteCodes(codes iter.Seq2[coding.Code, error]) error
	// WriteBlob writes a serialized packed container.
	WriteBlob(data []byte) error
}

// writeCodes renders codes as newline-delimited text into w, flushing a
// pooled token buffer whenever it grows past its default size.
func writeCodes(w io.Writer, codes iter.Seq2[coding.Code, error]) error {
	buf := pool.GetTokenBuffer()
	defer pool.PutTokenBuffer(buf)

	for c, err := range codes {
		if err != nil {
			return err
		}
		_, _ = buf.WriteString(c.String())
		_ = buf.WriteByte('\n')

		if buf.Len() >= pool.TokenBufferDefaultSize {
			if _, err := buf.WriteTo(w); err != nil {
				return fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
			}
			buf.Reset()
		}
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
	}

	return nil
}

// DefaultFileMode is the permission of files created by FileSink. Replaced
// files keep their previous permission.
const DefaultFileMode os.FileMode = 0o644

// FileSink writes output to a file. The file is replaced atomically on
// success and left untouched on failure.
type FileSink struct {
	path string
}

var _ SymbolSink = (*FileSink)(nil)

// NewFileSink creates a sink writing to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the destination file path.
func (s *FileSink) Path() string {
	return s.path
}

// WriteCodes writes the code words of codes as text lines.
func (s *FileSink) WriteCodes(codes iter.Seq2[coding.Code, error]) error {
	return s.replace(func(w io.Writer) error {
		return writeCodes(w, codes)
	})
}

// WriteBlob writes data verbatim.
func (s *FileSink) WriteBlob(data []byte) error {
	return s.replace(func(w io.Writer) error {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
		}

		return nil
	})
}

func (s *FileSink) replace(write func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}

	mode := DefaultFileMode
	if info, statErr := os.Stat(s.path); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
	}

	return nil
}

// BufferSink collects output in memory. Each write replaces the previous
// contents, matching FileSink.
type BufferSink struct {
	buf bytes.Buffer
}

var _ SymbolSink = (*BufferSink)(nil)

// NewBufferSink creates an empty in-memory sink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

// WriteCodes renders codes into the buffer. On error the buffer holds no
// partial output.
func (s *BufferSink) WriteCodes(codes iter.Seq2[coding.Code, error]) error {
	var out bytes.Buffer
	if err := writeCodes(&out, codes); err != nil {
		return err
	}
	s.buf.Reset()
	s.buf.Write(out.Bytes())

	return nil
}

// WriteBlob stores a copy of data.
func (s *BufferSink) WriteBlob(data []byte) error {
	s.buf.Reset()
	s.buf.Write(data)

	return nil
}

// Bytes returns the collected output.
func (s *BufferSink) Bytes() []byte {
	return s.buf.Bytes()
}

// String returns the collected output as a string.
func (s *BufferSink) String() string {
	return s.buf.String()
}
