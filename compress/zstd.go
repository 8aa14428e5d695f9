package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// Zstd gives the best ratio of the built-in codecs and is the usual choice for
// archived containers. The implementation is selected at build time: the pure
// Go klauspost/compress/zstd by default, valyala/gozstd when built with cgo and
// the "gozstd" tag.
type ZstdCompressor struct{}

var (
	_ Codec             = (*ZstdCompressor)(nil)
	_ SizedDecompressor = (*ZstdCompressor)(nil)
)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
