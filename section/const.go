package section

import "github.com/arloliu/huffkit/format"

const (
	// Bit masks
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicPackedV1Opt is the version 1 magic number of the packed container format.
	MagicPackedV1Opt = 0xF1A0
)

const (
	HeaderSize = 32 // fixed header size in bytes
)

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}
