// Package stream provides the input and output media of an encoding session.
//
// A SymbolSource yields the complete symbol sequence of the input. Encoding
// needs a full frequency scan before the first code word can be emitted, so
// sources return the whole sequence at once and the session reuses it for the
// second pass.
//
// A SymbolSink receives the encoded output, either as newline-delimited
// textual code words (WriteCodes) or as a packed container (WriteBlob).
// FileSink writes to a temporary file in the destination directory and renames
// it into place, so readers never observe partial output.
package stream
