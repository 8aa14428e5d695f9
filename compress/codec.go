package compress

import (
	"fmt"

	"github.com/arloliu/huffkit/errs"
	"github.com/arloliu/huffkit/format"
)

// Compressor compresses a packed payload.
//
// The returned slice is owned by the caller; the input is not modified but may
// be returned as-is by pass-through implementations.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// It returns an error if data is corrupted or was produced by a different
// algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// SizedDecompressor decompresses data whose decompressed length is known in
// advance. The length sizes the output buffer; a result of a different length
// is an error for codecs that can detect it.
type SizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// preallocLimit caps output buffers sized from an untrusted length for codecs
// that can grow their output on their own.
const preallocLimit = 64 * 1024 * 1024

// DecompressSize decompresses data with codec, passing size to codecs that
// implement SizedDecompressor.
func DecompressSize(codec Codec, data []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative decompressed size %d", size)
	}
	if sd, ok := codec.(SizedDecompressor); ok {
		return sd.DecompressSize(data, size)
	}

	return codec.Decompress(data)
}

// CreateCodec returns a Codec for compressionType.
// target describes what the codec is used for and only appears in error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
