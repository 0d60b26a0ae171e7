// Package chunktype owns the 4-byte PNG chunk type field.
//
// Ownership boundary:
// - parsing from text (validating) and from raw bytes (not validating)
// - the four case-bit flags and the well-formedness predicate
// - text/binary/stream encodings of the raw 4 bytes
// - the table of registered chunk types
package chunktype
