package blob

import (
	"fmt"

	"github.com/arloliu/huffkit/errs"
	"github.com/arloliu/huffkit/format"
	"github.com/arloliu/huffkit/internal/options"
	"github.com/arloliu/huffkit/section"
)

// EncoderConfig holds the container header template used by an Encoder.
type EncoderConfig struct {
	header section.Header
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{header: *section.NewHeader()}
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.header.Flag.SetPayloadCompression(comp)
		return nil
	default:
		return fmt.Errorf("%w: %v", errs.ErrInvalidCompression, comp)
	}
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression selects the second-stage codec applied to the packed payload.
// Default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		return cfg.setCompression(comp)
	})
}

// WithLittleEndian writes multi-byte header fields little-endian. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian writes multi-byte header fields big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.header.Flag.WithBigEndian()
	})
}
