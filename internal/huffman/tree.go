package huffman

import "container/heap"

// priorityQueue is a min-heap over Node ordered by freq, falling back to
// insertion order (seq) to keep builds deterministic across runs given
// the same input — the rune analogue of kelbwah-huffmin's
// PriorityQueue/MinChar pair and of create_tree_code's use of Python's
// stable heapq in original_source/compressor/core.py.
type priorityQueue []*Node

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].Freq != pq[j].Freq {
		return pq[i].Freq < pq[j].Freq
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*Node))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// BuildTree builds a Huffman tree from leaves by repeatedly merging the
// two lowest-frequency nodes, following create_tree_code in
// original_source/compressor/core.py and buildHuffmanTree in
// kelbwah-huffmin/internal/huffman/huffman.go.
//
// A single leaf is wrapped in an internal node with a zero-frequency
// sentinel right child, so the sole symbol still receives the non-empty
// code "0" rather than the empty code the bare algorithm would produce
// (spec §4.3 edge case).
func BuildTree(leaves []*Node) (*Node, error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}

	pq := make(priorityQueue, len(leaves))
	copy(pq, leaves)
	heap.Init(&pq)

	seq := len(leaves)
	if pq.Len() == 1 {
		sole := heap.Pop(&pq).(*Node)
		sentinel := newSentinelLeaf(seq)
		return merge(sole, sentinel, seq+1), nil
	}

	for pq.Len() > 1 {
		left := heap.Pop(&pq).(*Node)
		right := heap.Pop(&pq).(*Node)
		heap.Push(&pq, merge(left, right, seq))
		seq++
	}
	return heap.Pop(&pq).(*Node), nil
}
