package compress

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/huffkit/errs"
	"github.com/arloliu/huffkit/format"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// packedLike mimics a packed Huffman payload: mostly repeating bit patterns.
func packedLike(n int) []byte {
	pattern := []byte{0b10110010, 0b01101100, 0b11100001, 0b00011110}
	return bytes.Repeat(pattern, n/len(pattern))
}

func randomBytes(n int) []byte {
	rng := rand.New(rand.NewPCG(3, 4))
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.Uint32())
	}

	return b
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range allCompressions {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "payload")
			require.NoError(t, err)
			require.NotNil(t, codec)

			shared, err := GetCodec(ct)
			require.NoError(t, err)
			require.NotNil(t, shared)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := CreateCodec(format.CompressionType(0x9), "payload")
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
		require.Contains(t, err.Error(), "payload")

		_, err = GetCodec(format.CompressionType(0))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}

func TestCodec_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"single byte":    {0x80},
		"short":          []byte("0110"),
		"packed payload": packedLike(64 * 1024),
		"random":         randomBytes(4096),
		"random short":   randomBytes(100),
	}
	for _, ct := range allCompressions {
		codec, err := CreateCodec(ct, "payload")
		require.NoError(t, err)

		for name, input := range inputs {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(input)
				require.NoError(t, err)

				got, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, input, got)
			})
		}
	}
}

func TestCodec_CompressesRepetitivePayload(t *testing.T) {
	input := packedLike(64 * 1024)
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := CreateCodec(ct, "payload")
		require.NoError(t, err)

		compressed, err := codec.Compress(input)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(input)/10, ct.String())
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := CreateCodec(ct, "payload")
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Nil(t, compressed)

		got, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Nil(t, got)

		got, err = DecompressSize(codec, nil, 0)
		require.NoError(t, err)
		require.Nil(t, got)
	}
}

func TestDecompressSize_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"single byte":    {0x80},
		"packed payload": packedLike(64 * 1024),
		"random":         randomBytes(4096),
		"zeros":          make([]byte, 1<<20),
	}
	for _, ct := range allCompressions {
		codec, err := CreateCodec(ct, "payload")
		require.NoError(t, err)

		for name, input := range inputs {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(input)
				require.NoError(t, err)

				got, err := DecompressSize(codec, compressed, len(input))
				require.NoError(t, err)
				require.Equal(t, input, got)
			})
		}
	}
}

func TestDecompressSize_Errors(t *testing.T) {
	input := packedLike(4096)

	_, err := DecompressSize(NewNoOpCompressor(), input, -1)
	require.Error(t, err)

	for _, ct := range []format.CompressionType{format.CompressionS2, format.CompressionLZ4} {
		codec, err := CreateCodec(ct, "payload")
		require.NoError(t, err)
		compressed, err := codec.Compress(input)
		require.NoError(t, err)

		_, err = DecompressSize(codec, compressed, len(input)-1)
		require.Error(t, err, ct.String())
		_, err = DecompressSize(codec, compressed, len(input)+1)
		require.Error(t, err, ct.String())
	}

	// A size no LZ4 block of this length can reach is rejected before allocating.
	_, err = NewLZ4Compressor().DecompressSize([]byte{0x10, 0x00}, 1<<40)
	require.Error(t, err)
}

func TestLZ4_LargeHighlyCompressible(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates several hundred MiB")
	}

	input := make([]byte, 129<<20)
	codec := NewLZ4Compressor()
	compressed, err := codec.Compress(input)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(input)/200)

	got, err := codec.DecompressSize(compressed, len(input))
	require.NoError(t, err)
	require.Equal(t, len(input), len(got))
	require.True(t, bytes.Equal(input, got))

	got, err = codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, len(input), len(got))
}

func TestCodec_CorruptInput(t *testing.T) {
	garbage := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA}
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		codec, err := CreateCodec(ct, "payload")
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}
}

func TestNoOpCompressor_Aliases(t *testing.T) {
	input := []byte{1, 2, 3}
	out, err := NewNoOpCompressor().Compress(input)
	require.NoError(t, err)
	require.Same(t, &input[0], &out[0])
}

func TestLiteralBlock(t *testing.T) {
	for _, n := range []int{1, 14, 15, 16, 269, 270, 271, 1000} {
		data := randomBytes(n)
		block := literalBlock(data)

		got, err := NewLZ4Compressor().Decompress(block)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, data, got, "n=%d", n)
	}
}
