package huffman

// Node is either a leaf carrying one symbol or an internal node merging
// two children, with freq equal to the sum of its children's freqs. It is
// the Go realization of original_source/compressor/char_node.py's CharNode
// and of kelbwah-huffmin/internal/huffman.Node, generalized from a single
// byte to an arbitrary rune so the frequency analyzer can detect and
// reject multi-byte symbols rather than silently corrupt the table.
type Node struct {
	Symbol rune
	Freq   int
	Left   *Node
	Right  *Node

	// seq is the node's insertion order into the priority queue. Two
	// leaves of equal frequency break ties FIFO (spec §4.3), the rune
	// analogue of kelbwah-huffmin's MinChar tiebreak field.
	seq int

	// sentinel marks the zero-frequency placeholder child synthesized for
	// a single-symbol input (spec §4.3 edge case); it never carries a
	// real symbol and is excluded when the code table is built.
	sentinel bool
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

func newLeaf(symbol rune, freq, seq int) *Node {
	return &Node{Symbol: symbol, Freq: freq, seq: seq}
}

func newSentinelLeaf(seq int) *Node {
	return &Node{Freq: 0, seq: seq, sentinel: true}
}

func merge(left, right *Node, seq int) *Node {
	return &Node{Freq: left.Freq + right.Freq, seq: seq, Left: left, Right: right}
}
