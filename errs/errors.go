// Package errs defines the sentinel errors returned by huffkit packages.
//
// Callers should match them with errors.Is; returned errors are usually wrapped
// with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

// Session-level errors.
var (
	// ErrSourceUnavailable is returned when the input medium cannot be opened or read.
	ErrSourceUnavailable = errors.New("symbol source unavailable")
	// ErrSinkUnavailable is returned when the output medium cannot be created or written.
	ErrSinkUnavailable = errors.New("symbol sink unavailable")
)

// Coding errors.
var (
	// ErrSymbolNotInCodebook is returned when encoding a symbol the code book has no code word for.
	ErrSymbolNotInCodebook = errors.New("symbol not in codebook")
	// ErrTruncatedCode is returned when a bit sequence ends in the middle of a code word.
	ErrTruncatedCode = errors.New("truncated code")
	// ErrInvalidCode is returned when a bit sequence follows a path that does not exist in the code tree.
	ErrInvalidCode = errors.New("invalid code")
	// ErrInvalidCodeBook is returned when a set of code words is empty-coded or not prefix-free.
	ErrInvalidCodeBook = errors.New("invalid codebook")
	// ErrInvalidFrequency is returned when a precomputed frequency is zero.
	ErrInvalidFrequency = errors.New("invalid frequency")
)

// Container errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid header size")
	ErrInvalidHeaderFlags     = errors.New("invalid header flags")
	ErrInvalidFrequencyTable  = errors.New("invalid frequency table payload")
	ErrInvalidCompression     = errors.New("invalid compression type")
	ErrChecksumMismatch       = errors.New("checksum mismatch")
	ErrInvalidPayloadBitCount = errors.New("invalid payload bit count")
)
