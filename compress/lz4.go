package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses payloads with the LZ4 block format.
type LZ4Compressor struct{}

var (
	_ Codec             = (*LZ4Compressor)(nil)
	_ SizedDecompressor = (*LZ4Compressor)(nil)
)

// lz4MaxExpansion bounds the output of one LZ4 block input byte: length
// extension bytes add at most 255 bytes each.
const lz4MaxExpansion = 255

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data with a pooled lz4.Compressor. Empty input yields nil.
//
// Incompressible input (CompressBlock reports 0 bytes) is rejected by LZ4 block
// decoding, so it is stored as a single literal run instead.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return literalBlock(data), nil
	}

	return dst[:n], nil
}

// literalBlock encodes data as one LZ4 sequence without a match.
func literalBlock(data []byte) []byte {
	n := len(data)
	out := make([]byte, 0, n+n/255+2)
	if n < 15 {
		out = append(out, byte(n<<4))
	} else {
		out = append(out, 0xF0)
		rest := n - 15
		for rest >= 255 {
			out = append(out, 255)
			rest -= 255
		}
		out = append(out, byte(rest))
	}

	return append(out, data...)
}

// Decompress decompresses LZ4 block data. Empty input yields nil.
//
// The block format does not store the decompressed size, so the output buffer
// starts at 4x the input and doubles up to the largest size the input can
// expand to. Use DecompressSize when the size is known.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	maxSize := lz4Bound(len(data))
	for bufSize := len(data) * 4; ; bufSize *= 2 {
		bufSize = min(bufSize, maxSize)
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || bufSize == maxSize {
			return nil, err
		}
	}
}

// DecompressSize decompresses LZ4 block data into a buffer of exactly size
// bytes and fails unless the block fills it.
func (c LZ4Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if size > lz4Bound(len(data)) {
		return nil, fmt.Errorf("lz4 block of %d bytes cannot expand to %d bytes", len(data), size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("lz4 block holds %d bytes, want %d", n, size)
	}

	return buf, nil
}

func lz4Bound(n int) int {
	return n*lz4MaxExpansion + 16
}
