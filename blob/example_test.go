package blob_test

import (
	"fmt"

	"github.com/arloliu/huffkit/blob"
	"github.com/arloliu/huffkit/format"
)

func Example() {
	enc, err := blob.NewEncoder(blob.WithCompression(format.CompressionS2))
	if err != nil {
		panic(err)
	}

	b, err := enc.Encode([]byte("abracadabra"))
	if err != nil {
		panic(err)
	}
	fmt.Println("symbols:", b.Stats().Symbols, "payload bits:", b.Header().PayloadBits, "saved:", b.Stats().Saved())

	dec, err := blob.NewDecoder()
	if err != nil {
		panic(err)
	}
	data, err := dec.Decode(b.Bytes())
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output:
	// symbols: 11 payload bits: 23 saved: 65
	// abracadabra
}
