package section

import (
	"github.com/arloliu/huffkit/errs"
	"github.com/arloliu/huffkit/format"
)

// Flag is the packed flag field at the start of a container header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are magic number to identify the container format:
	//   - 0xF1A0 (0b1111_0001_1010_0000): packed container format v1
	Options uint16

	// Mode is the format.OutputMode of the container. Always ModePacked for v1.
	Mode uint8

	// PayloadCompression is the format.CompressionType applied to the packed bitstream.
	PayloadCompression uint8
}

// NewFlag creates a little-endian, uncompressed packed-mode flag.
func NewFlag() Flag {
	return Flag{
		Options:            MagicPackedV1Opt,
		Mode:               uint8(format.ModePacked),
		PayloadCompression: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetMode returns the output mode.
func (f Flag) GetMode() format.OutputMode {
	return format.OutputMode(f.Mode)
}

// SetPayloadCompression sets the payload compression type.
func (f *Flag) SetPayloadCompression(compression format.CompressionType) {
	f.PayloadCompression = uint8(compression)
}

// GetPayloadCompression returns the payload compression type.
func (f Flag) GetPayloadCompression() format.CompressionType {
	return format.CompressionType(f.PayloadCompression)
}

// Validate checks the magic number, reserved bits, mode and compression.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicPackedV1Opt {
		return errs.ErrInvalidHeaderFlags
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if f.GetMode() != format.ModePacked {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.PayloadCompression]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
