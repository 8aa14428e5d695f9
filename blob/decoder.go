package blob

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/arloliu/huffkit/coding"
	"github.com/arloliu/huffkit/compress"
	"github.com/arloliu/huffkit/errs"
	"github.com/arloliu/huffkit/internal/bitstream"
	"github.com/arloliu/huffkit/internal/hash"
	"github.com/arloliu/huffkit/internal/options"
	"github.com/arloliu/huffkit/section"
)

// DefaultDecoderCacheSize is the number of rebuilt code trees a Decoder keeps by default.
const DefaultDecoderCacheSize = 64

// DecoderConfig configures a Decoder.
type DecoderConfig struct {
	cacheSize int
}

// DecoderOption is a functional option for configuring a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithCacheSize sets the number of rebuilt code trees kept in the LRU cache.
// Zero disables caching.
func WithCacheSize(size int) DecoderOption {
	return options.New(func(cfg *DecoderConfig) error {
		if size < 0 {
			return fmt.Errorf("invalid decoder cache size: %d", size)
		}
		cfg.cacheSize = size

		return nil
	})
}

// Decoder decodes packed containers. It is safe for concurrent use.
type Decoder struct {
	cache *lru.Cache[uint64, cachedCode]
}

type cachedCode struct {
	book *coding.CodeBook[byte]
	dec  *coding.Decoder[byte]
}

// NewDecoder creates a Decoder.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	cfg := &DecoderConfig{cacheSize: DefaultDecoderCacheSize}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	d := &Decoder{}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[uint64, cachedCode](cfg.cacheSize)
		if err != nil {
			return nil, err
		}
		d.cache = cache
	}

	return d, nil
}

// Decode parses a container and returns the original symbols.
//
// Errors:
//   - errs.ErrInvalidHeaderSize, errs.ErrInvalidHeaderFlags: malformed header
//   - errs.ErrInvalidFrequencyTable: malformed or inconsistent frequency table
//   - errs.ErrInvalidPayloadBitCount: payload bit count disagrees with the table
//   - errs.ErrTruncatedCode: payload ends in the middle of a code word
//   - errs.ErrChecksumMismatch: decoded symbols differ from the encoded ones
func (d *Decoder) Decode(data []byte) ([]byte, error) {
	if len(data) < section.HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	var header section.Header
	if err := header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}

	body := data[section.HeaderSize:]
	if uint64(header.TableSize) > uint64(len(body)) {
		return nil, fmt.Errorf("%w: table size %d exceeds %d remaining bytes",
			errs.ErrInvalidFrequencyTable, header.TableSize, len(body))
	}
	tableBytes := body[:header.TableSize]
	payload := body[header.TableSize:]

	table, err := parseTable(tableBytes)
	if err != nil {
		return nil, err
	}
	if table.Total() != header.SymbolCount {
		return nil, fmt.Errorf("%w: table counts %d symbols, header %d",
			errs.ErrInvalidFrequencyTable, table.Total(), header.SymbolCount)
	}
	// Every code word is at least one bit long.
	if header.SymbolCount > header.PayloadBits || header.SymbolCount > math.MaxInt {
		return nil, fmt.Errorf("%w: %d symbols cannot fit in %d payload bits",
			errs.ErrInvalidFrequencyTable, header.SymbolCount, header.PayloadBits)
	}

	dec, book, err := d.decoderFor(tableBytes, table)
	if err != nil {
		return nil, err
	}
	want, ok := book.WeightedLength(table)
	if !ok {
		return nil, fmt.Errorf("%w: encoded size overflows", errs.ErrInvalidFrequencyTable)
	}
	if header.PayloadBits != want {
		return nil, fmt.Errorf("%w: header has %d bits, table implies %d",
			errs.ErrInvalidPayloadBitCount, header.PayloadBits, want)
	}

	packedSize := header.PayloadBits / 8
	if header.PayloadBits%8 != 0 {
		packedSize++
	}
	if packedSize > math.MaxInt {
		return nil, fmt.Errorf("%w: %d bits", errs.ErrInvalidPayloadBitCount, header.PayloadBits)
	}

	var packed []byte
	if header.PayloadBits > 0 {
		codec, err := compress.GetCodec(header.Flag.GetPayloadCompression())
		if err != nil {
			return nil, err
		}
		packed, err = compress.DecompressSize(codec, payload, int(packedSize))
		if err != nil {
			return nil, fmt.Errorf("failed to decompress payload: %w", err)
		}
	}
	if header.PayloadBits > uint64(len(packed))*8 {
		return nil, fmt.Errorf("%w: %d bits in header, %d bytes of payload",
			errs.ErrTruncatedCode, header.PayloadBits, len(packed))
	}

	symbols, err := dec.DecodeN(bitstream.NewReader(packed, header.PayloadBits), int(header.SymbolCount)) //nolint:gosec
	if err != nil {
		return nil, err
	}

	if sum := hash.Checksum(symbols); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got 0x%016x, want 0x%016x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	return symbols, nil
}

// decoderFor returns the decoder and code book for table, reusing a cached
// decoder when the same table bytes were seen before.
func (d *Decoder) decoderFor(tableBytes []byte, table *coding.FrequencyTable[byte]) (*coding.Decoder[byte], *coding.CodeBook[byte], error) {
	key := hash.Checksum(tableBytes)
	if d.cache != nil {
		if c, ok := d.cache.Get(key); ok {
			return c.dec, c.book, nil
		}
	}

	book := coding.NewCodeBook(coding.BuildTree(table))
	dec, err := coding.NewDecoder(book)
	if err != nil {
		return nil, nil, err
	}
	if d.cache != nil {
		d.cache.Add(key, cachedCode{book: book, dec: dec})
	}

	return dec, book, nil
}

// CachedTables returns the number of code trees currently cached.
func (d *Decoder) CachedTables() int {
	if d.cache == nil {
		return 0
	}

	return d.cache.Len()
}
