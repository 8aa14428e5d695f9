// Package endian provides the byte order engines used by container headers.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so a header
// can both put fixed-width fields into a preallocated slice and append varints
// or counts to a growing one with a single value:
//
//	engine := endian.GetLittleEndianEngine()
//	engine.PutUint64(hdr[4:12], symbolCount)
//	buf = engine.AppendUint32(buf, tableSize)
//
// All functions are safe for concurrent use; the returned engines are stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
