// Package section defines the fixed-size header of the packed container format.
//
// A packed container is laid out as:
//
//	+--------------------+  offset 0
//	| Header (32 bytes)  |
//	+--------------------+  offset 32
//	| Frequency table    |  Header.TableSize bytes
//	+--------------------+
//	| Payload            |  packed code words, optionally compressed
//	+--------------------+
//
// The first two bytes of the header (the flag options) are always
// little-endian; they carry the magic number and the endianness bit that
// governs every other multi-byte header field.
package section
