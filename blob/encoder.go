package blob

import (
	"fmt"
	"slices"

	"github.com/arloliu/huffkit/coding"
	"github.com/arloliu/huffkit/compress"
	"github.com/arloliu/huffkit/internal/bitstream"
	"github.com/arloliu/huffkit/internal/hash"
	"github.com/arloliu/huffkit/internal/options"
	"github.com/arloliu/huffkit/section"
)

// Encoder builds packed containers.
//
// An Encoder holds only immutable configuration and may be used concurrently.
type Encoder struct {
	header section.Header
	codec  compress.Codec
}

// NewEncoder creates an Encoder. By default containers are little-endian and
// the payload is not compressed.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.header.Flag.GetPayloadCompression())
	if err != nil {
		return nil, err
	}

	return &Encoder{header: cfg.header, codec: codec}, nil
}

// Encode counts the symbols of data, builds their code book and returns the
// packed container.
func (e *Encoder) Encode(data []byte) (*Blob, error) {
	table := coding.NewFrequencyTable(data)

	return e.EncodeWithTable(data, table)
}

// EncodeWithTable encodes data with the code book derived from table, which
// must contain every symbol of data. It is used when the frequencies were
// counted in a separate pass.
//
// The table is embedded in the container, so decoding only succeeds if table
// counts exactly the symbols of data.
func (e *Encoder) EncodeWithTable(data []byte, table *coding.FrequencyTable[byte]) (*Blob, error) {
	book := coding.NewCodeBook(coding.BuildTree(table))

	w := bitstream.NewWriter()
	defer w.Release()

	stats, err := book.EncodeTo(w, slices.Values(data))
	if err != nil {
		return nil, err
	}

	packed, err := w.Finish()
	if err != nil {
		return nil, fmt.Errorf("failed to pack payload: %w", err)
	}

	var payload []byte
	if len(packed) > 0 {
		payload, err = e.codec.Compress(packed)
		if err != nil {
			return nil, fmt.Errorf("failed to compress payload: %w", err)
		}
	}

	// At most 256 entries, so the size always fits the uint32 header field.
	tableBytes := appendTable(nil, table)

	header := e.header
	header.SymbolCount = uint64(len(data))
	header.PayloadBits = w.Bits()
	header.TableSize = uint32(len(tableBytes)) //nolint:gosec
	header.Checksum = hash.Checksum(data)

	out := make([]byte, 0, section.HeaderSize+len(tableBytes)+len(payload))
	out = append(out, header.Bytes()...)
	out = append(out, tableBytes...)
	out = append(out, payload...)

	return &Blob{
		header: header,
		table:  table,
		book:   book,
		stats:  stats,
		data:   out,
	}, nil
}
