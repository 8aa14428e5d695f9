package section

import (
	"github.com/arloliu/huffkit/endian"
	"github.com/arloliu/huffkit/errs"
)

// Header is the fixed 32-byte header of a packed container.
//
// Layout:
//
//	[0:2]   Flag.Options (always little-endian)
//	[2]     Flag.Mode
//	[3]     Flag.PayloadCompression
//	[4:12]  SymbolCount
//	[12:20] PayloadBits
//	[20:24] TableSize
//	[24:32] Checksum
type Header struct {
	Flag Flag // 4 bytes, offset 0-3

	// SymbolCount is the number of encoded symbols.
	SymbolCount uint64 // 8 bytes, offset 4-11
	// PayloadBits is the number of meaningful bits in the uncompressed packed payload.
	PayloadBits uint64 // 8 bytes, offset 12-19
	// TableSize is the size in bytes of the serialized frequency table following the header.
	TableSize uint32 // 4 bytes, offset 20-23
	// Checksum is the xxHash64 of the original symbols.
	Checksum uint64 // 8 bytes, offset 24-31
}

// NewHeader creates a header with default flags.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly HeaderSize bytes or if the flags are invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian so endianness can be determined first.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Mode = data[2]
	h.Flag.PayloadCompression = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	h.SymbolCount = engine.Uint64(data[4:12])
	h.PayloadBits = engine.Uint64(data[12:20])
	h.TableSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Mode
	b[3] = h.Flag.PayloadCompression

	engine := h.GetEndianEngine()
	engine.PutUint64(b[4:12], h.SymbolCount)
	engine.PutUint64(b[12:20], h.PayloadBits)
	engine.PutUint32(b[20:24], h.TableSize)
	engine.PutUint64(b[24:32], h.Checksum)

	return b
}

// GetEndianEngine returns the endian engine selected by the header flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
