package huffman

import "errors"

var (
	// ErrEmptyInput is returned when the source text has zero characters.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrNonSingleByteSymbol is returned when the input contains a
	// character whose UTF-8 encoding is more than one byte; the container
	// table format persists one byte per symbol (spec §4.6 caveat).
	ErrNonSingleByteSymbol = errors.New("huffman: symbol is not a single byte in utf-8")

	// ErrMissingSymbol is returned when the encoder is asked for the code
	// of a character absent from the table — an invariant violation,
	// since the table is always built from the same input it encodes.
	ErrMissingSymbol = errors.New("huffman: symbol missing from code table")

	// ErrNoLeaves is returned when a tree or table is built from zero
	// leaves.
	ErrNoLeaves = errors.New("huffman: no leaves to build from")

	// ErrBadTable is returned when a deserialized table has duplicate
	// codes or an empty code word.
	ErrBadTable = errors.New("huffman: invalid code table")
)
