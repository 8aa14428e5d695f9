package blob

import (
	"github.com/arloliu/huffkit/coding"
	"github.com/arloliu/huffkit/section"
)

// Blob is an encoded packed container together with the artifacts it was
// built from.
//
// A Blob is immutable; Bytes returns the serialized container.
type Blob struct {
	header section.Header
	table  *coding.FrequencyTable[byte]
	book   *coding.CodeBook[byte]
	stats  coding.Stats
	data   []byte
}

// Bytes returns the serialized container. The slice must not be modified.
func (b *Blob) Bytes() []byte {
	return b.data
}

// Len returns the size of the serialized container in bytes.
func (b *Blob) Len() int {
	return len(b.data)
}

// Header returns a copy of the container header.
func (b *Blob) Header() section.Header {
	return b.header
}

// Table returns the frequency table of the encoded symbols.
func (b *Blob) Table() *coding.FrequencyTable[byte] {
	return b.table
}

// CodeBook returns the code book used for encoding.
func (b *Blob) CodeBook() *coding.CodeBook[byte] {
	return b.book
}

// Stats returns the logical bit statistics of the encoding.
func (b *Blob) Stats() coding.Stats {
	return b.stats
}
