package huffman

import (
	"fmt"
	"unicode/utf8"
)

// Analyze counts occurrences of every rune in text and returns one leaf
// per distinct symbol, in first-seen order (used downstream to break
// priority-queue ties deterministically). It mirrors process_frequencies
// in original_source/compressor/core.py (a Counter over the decoded
// stream) and buildFrequencyTable in
// kelbwah-huffmin/internal/huffman/huffman.go, generalized to validate
// that every symbol is single-byte UTF-8, per the container format's
// NonSingleByteSymbol constraint (spec §4.6).
func Analyze(text string) ([]*Node, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}

	counts := make(map[rune]int)
	var order []rune
	for _, r := range text {
		if utf8.RuneLen(r) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrNonSingleByteSymbol, r)
		}
		if _, seen := counts[r]; !seen {
			order = append(order, r)
		}
		counts[r]++
	}

	leaves := make([]*Node, len(order))
	for i, r := range order {
		leaves[i] = newLeaf(r, counts[r], i)
	}
	return leaves, nil
}
