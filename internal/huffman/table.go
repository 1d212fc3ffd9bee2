package huffman

import "fmt"

// Table maps a symbol to its prefix-free code, a string of '0'/'1'
// characters (left descent = '0', right descent = '1'). Built by a
// depth-first walk of the tree, following parse_tree_code in
// original_source/compressor/core.py and generateCodes in
// kelbwah-huffmin/internal/huffman/huffman.go.
type Table map[rune]string

// BuildTable walks root and returns the total, injective symbol->code
// mapping for its leaves. The synthetic sentinel leaf injected by
// BuildTree for single-symbol input is excluded.
func BuildTable(root *Node) (Table, error) {
	if root == nil {
		return nil, ErrNoLeaves
	}
	table := make(Table)
	var walk func(n *Node, prefix string)
	walk = func(n *Node, prefix string) {
		if n.Leaf() {
			if n.sentinel {
				return
			}
			table[n.Symbol] = prefix
			return
		}
		walk(n.Left, prefix+"0")
		walk(n.Right, prefix+"1")
	}
	walk(root, "")
	return table, nil
}

// Invert builds the decode-direction mapping (code -> symbol), failing
// with ErrBadTable if the table has an empty code or a collision — the
// table's codes should always be prefix-free and therefore pairwise
// distinct by construction.
func (t Table) Invert() (map[string]rune, error) {
	inverse := make(map[string]rune, len(t))
	for symbol, code := range t {
		if code == "" {
			return nil, fmt.Errorf("%w: empty code for symbol %q", ErrBadTable, symbol)
		}
		if _, exists := inverse[code]; exists {
			return nil, fmt.Errorf("%w: duplicate code %q", ErrBadTable, code)
		}
		inverse[code] = symbol
	}
	return inverse, nil
}
