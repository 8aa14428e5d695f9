// Package blob implements the packed container format: a self-describing byte
// slice holding Huffman-coded symbols that can be decoded without any
// out-of-band information.
//
// A container consists of a fixed section.Header, the serialized frequency
// table of the input and the packed code words (optionally compressed by a
// second-stage codec from the compress package):
//
//	enc, _ := blob.NewEncoder(blob.WithCompression(format.CompressionZstd))
//	b, err := enc.Encode(data)
//	if err != nil {
//	    return err
//	}
//	fmt.Println("saved bits:", b.Stats().Saved())
//
//	dec, _ := blob.NewDecoder()
//	original, err := dec.Decode(b.Bytes())
//
// The decoder rebuilds the code tree from the embedded frequency table. Tree
// construction is deterministic, so the rebuilt code book is bitwise identical
// to the one used for encoding. Rebuilt decoders are kept in an LRU cache keyed
// by the hash of the table bytes, which pays off when many containers share a
// symbol distribution.
//
// # Frequency Table Encoding
//
//	uvarint  entry count
//	entries  (symbol byte, uvarint count), ascending by symbol
//
// # Payload Encoding
//
// Code words are concatenated MSB first and the last byte is zero padded.
// Header.PayloadBits records the number of meaningful bits before the
// second-stage compression is applied.
package blob
