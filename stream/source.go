package stream

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/huffkit/errs"
)

// SymbolSource provides the symbols to encode.
type SymbolSource interface {
	// Symbols returns the complete symbol sequence in input order.
	// Failures wrap errs.ErrSourceUnavailable.
	Symbols() ([]byte, error)
}

// FileSource reads symbols from a file, one byte per symbol.
type FileSource struct {
	path string
}

var _ SymbolSource = (*FileSource)(nil)

// NewFileSource creates a source reading the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file path of the source.
func (s *FileSource) Path() string {
	return s.path
}

// Symbols reads the whole file.
func (s *FileSource) Symbols() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSourceUnavailable, err)
	}

	return data, nil
}

// BytesSource serves symbols from memory.
type BytesSource struct {
	data []byte
}

var _ SymbolSource = (*BytesSource)(nil)

// NewBytesSource creates a source over data. The slice is not copied.
func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{data: data}
}

// Symbols returns the underlying slice.
func (s *BytesSource) Symbols() ([]byte, error) {
	return s.data, nil
}

// ReaderSource reads symbols from an io.Reader, such as standard input.
// The reader is consumed on the first call; later calls return the same symbols.
type ReaderSource struct {
	r    io.Reader
	data []byte
	read bool
}

var _ SymbolSource = (*ReaderSource)(nil)

// NewReaderSource creates a source draining r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// Symbols reads r to EOF.
func (s *ReaderSource) Symbols() ([]byte, error) {
	if s.read {
		return s.data, nil
	}

	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSourceUnavailable, err)
	}
	s.data, s.read = data, true

	return s.data, nil
}
