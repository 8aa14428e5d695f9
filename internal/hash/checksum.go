package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of data. It is stored in container headers to
// verify decoded symbols.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

