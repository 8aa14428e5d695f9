package blob

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/huffkit/coding"
	"github.com/arloliu/huffkit/errs"
)

// maxTableEntries is the number of distinct byte symbols.
const maxTableEntries = 256

// appendTable appends the serialized form of ft to dst.
func appendTable(dst []byte, ft *coding.FrequencyTable[byte]) []byte {
	dst = binary.AppendUvarint(dst, uint64(ft.Len())) //nolint:gosec
	for s, n := range ft.All() {
		dst = append(dst, s)
		dst = binary.AppendUvarint(dst, n)
	}

	return dst
}

// parseTable decodes a frequency table serialized by appendTable. The whole of
// data must be consumed.
func parseTable(data []byte) (*coding.FrequencyTable[byte], error) {
	entries, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, fmt.Errorf("%w: bad entry count", errs.ErrInvalidFrequencyTable)
	}
	if entries > maxTableEntries {
		return nil, fmt.Errorf("%w: %d entries exceeds %d", errs.ErrInvalidFrequencyTable, entries, maxTableEntries)
	}
	data = data[n:]

	counts := make(map[byte]uint64, entries)
	prev := -1
	for i := range entries {
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: missing entry %d", errs.ErrInvalidFrequencyTable, i)
		}
		sym := data[0]
		if int(sym) <= prev {
			return nil, fmt.Errorf("%w: symbols not strictly ascending at entry %d", errs.ErrInvalidFrequencyTable, i)
		}
		prev = int(sym)

		count, n := binary.Uvarint(data[1:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: bad count for entry %d", errs.ErrInvalidFrequencyTable, i)
		}
		counts[sym] = count
		data = data[1+n:]
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidFrequencyTable, len(data))
	}

	ft, err := coding.FrequencyTableFromCounts(counts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidFrequencyTable, err)
	}

	return ft, nil
}
