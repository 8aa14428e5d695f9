package format

type (
	OutputMode      uint8
	CompressionType uint8
)

const (
	ModeText   OutputMode = 0x1 // ModeText emits one newline-delimited code word per symbol.
	ModePacked OutputMode = 0x2 // ModePacked emits a self-describing packed bitstream container.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// SymbolWidth is the fixed number of bits one unencoded symbol is assumed to occupy.
const SymbolWidth = 8

func (m OutputMode) String() string {
	switch m {
	case ModeText:
		return "Text"
	case ModePacked:
		return "Packed"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a lower-case name ("none", "zstd", "s2", "lz4") to a CompressionType.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
