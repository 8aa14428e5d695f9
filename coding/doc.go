// Package coding implements the Huffman coding engine: frequency collection,
// greedy bottom-up tree construction, code book derivation and the
// encode/decode contract implied by the code book.
//
// Every stage produces an immutable artifact consumed by the next one:
//
//	FrequencyTable -> Tree -> CodeBook -> encoded codes / Decoder
//
// All types are generic over the symbol type (any integer or string kind, see
// Symbol). Ordering is what makes construction deterministic: leaves are
// created in ascending symbol order and ties between equal weights are broken by
// creation order, so two runs over the same input always produce bitwise
// identical code books.
//
// # Basic Usage
//
//	data := []byte("abracadabra")
//	table := coding.NewFrequencyTable(data)
//	book := coding.NewCodeBook(coding.BuildTree(table))
//
//	for code, err := range book.Encode(slices.Values(data)) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(code)
//	}
//
//	stats, _ := coding.Measure(table, book)
//	fmt.Println("saved bits:", stats.Saved())
//
// Decoding walks the code tree one bit at a time:
//
//	dec, _ := coding.NewDecoder(book)
//	symbols, err := dec.DecodeAll(coding.NewCodeReader(coding.Join(codes...)))
//
// # Edge Cases
//
// An empty table yields a nil Tree and an empty CodeBook. A table with a single
// symbol yields a single-leaf tree; its symbol is assigned the one-bit code "0".
package coding
