package coding

import "container/heap"

// Node is a node of a Huffman code tree.
//
// A leaf carries a symbol and has no children. An internal node carries no
// symbol and always has exactly two children. Every node is owned by exactly one
// parent.
type Node[S Symbol] struct {
	weight uint64
	symbol S
	left   *Node[S]
	right  *Node[S]
	seq    int // creation order, used to break weight ties
}

// Weight returns the sum of the counts of all symbols below n.
func (n *Node[S]) Weight() uint64 {
	return n.weight
}

// IsLeaf reports whether n has no children.
func (n *Node[S]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Symbol returns the symbol of a leaf. ok is false for internal nodes.
func (n *Node[S]) Symbol() (s S, ok bool) {
	if !n.IsLeaf() {
		return s, false
	}

	return n.symbol, true
}

// Left returns the 0-edge child, or nil for a leaf.
func (n *Node[S]) Left() *Node[S] {
	return n.left
}

// Right returns the 1-edge child, or nil for a leaf.
func (n *Node[S]) Right() *Node[S] {
	return n.right
}

// Tree is a fully built Huffman code tree.
type Tree[S Symbol] struct {
	root   *Node[S]
	leaves int
}

// BuildTree builds the optimal code tree for t by repeatedly merging the two
// pending nodes of smallest weight.
//
// Leaves are created in ascending symbol order. Pending nodes are ordered by
// (weight, creation order); the first node removed becomes the left child and
// the second the right child of the merged node.
//
// Returns nil if t is nil or empty. A table with one entry yields a tree whose
// root is a single leaf.
func BuildTree[S Symbol](t *FrequencyTable[S]) *Tree[S] {
	if t == nil || t.Len() == 0 {
		return nil
	}

	pending := make(nodeHeap[S], 0, t.Len())
	seq := 0
	for s, n := range t.All() {
		pending = append(pending, &Node[S]{weight: n, symbol: s, seq: seq})
		seq++
	}
	heap.Init(&pending)

	for pending.Len() > 1 {
		left, _ := heap.Pop(&pending).(*Node[S])
		right, _ := heap.Pop(&pending).(*Node[S])
		heap.Push(&pending, &Node[S]{
			weight: left.weight + right.weight,
			left:   left,
			right:  right,
			seq:    seq,
		})
		seq++
	}

	return &Tree[S]{root: pending[0], leaves: t.Len()}
}

// Root returns the root node.
func (t *Tree[S]) Root() *Node[S] {
	return t.root
}

// Leaves returns the number of leaves, which equals the number of distinct symbols.
func (t *Tree[S]) Leaves() int {
	return t.leaves
}

// Depth returns the length of the longest root-to-leaf path.
// A single-leaf tree has depth 0.
func (t *Tree[S]) Depth() int {
	maxDepth := 0
	t.walk(func(_ *Node[S], depth int) {
		maxDepth = max(maxDepth, depth)
	})

	return maxDepth
}

// WeightedPathLength returns the sum of weight x code length over all leaves,
// i.e. the total number of bits needed to encode the counted input. The lone
// leaf of a single-leaf tree counts with code length 1.
func (t *Tree[S]) WeightedPathLength() uint64 {
	var total uint64
	t.walk(func(n *Node[S], depth int) {
		total += n.weight * uint64(max(depth, 1)) //nolint:gosec
	})

	return total
}

// walk visits every leaf depth-first, left before right.
func (t *Tree[S]) walk(visit func(leaf *Node[S], depth int)) {
	type frame struct {
		node  *Node[S]
		depth int
	}
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node.IsLeaf() {
			visit(f.node, f.depth)
			continue
		}
		stack = append(stack, frame{f.node.right, f.depth + 1}, frame{f.node.left, f.depth + 1})
	}
}

// nodeHeap is a min-heap of pending nodes ordered by (weight, seq).
type nodeHeap[S Symbol] []*Node[S]

func (h nodeHeap[S]) Len() int { return len(h) }

func (h nodeHeap[S]) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}

	return h[i].seq < h[j].seq
}

func (h nodeHeap[S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap[S]) Push(x any) {
	n, _ := x.(*Node[S])
	*h = append(*h, n)
}

func (h *nodeHeap[S]) Pop() any {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]

	return n
}
