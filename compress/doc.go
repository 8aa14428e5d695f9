// Package compress provides the optional second-stage codecs applied to the
// packed bitstream of a huffkit container.
//
// Huffman coding removes the redundancy of the symbol distribution but not the
// redundancy of symbol order (repeated phrases, runs). A dictionary or LZ-style
// codec on top of the packed bits can recover part of that:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "payload")
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(packed)
//
// Containers record the packed payload length, so decoders pass it along with
// DecompressSize instead of letting codecs guess the output size.
//
// Available codecs:
//   - format.CompressionNone: pass-through (default)
//   - format.CompressionZstd: klauspost/compress/zstd, or valyala/gozstd when
//     built with cgo and the "gozstd" build tag
//   - format.CompressionS2: klauspost/compress/s2
//   - format.CompressionLZ4: pierrec/lz4/v4 block format
//
// All codecs are stateless values and safe for concurrent use; encoder and
// decoder state is pooled internally.
package compress
