package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// BuildTree constructs the Huffman code tree for a Histogram, returning the
// root and the number of leaves.
//
// One leaf is created for each symbol with a nonzero count, in ascending
// symbol order.  The two lowest-ordered subtrees in the Queue are then
// repeatedly merged (the first one popped becomes the left child) until a
// single tree remains.  The Histogram must have at least two nonzero counts,
// which is always the case for one obtained from NewHistogram.
//
func BuildTree(h *Histogram) (root *Node, numLeaves uint16) {
	var q Queue
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if count := h.counts[symbol]; count != 0 {
			q.Push(NewLeaf(byte(symbol), count))
			numLeaves++
		}
	}

	assert.Assertf(numLeaves >= 2, "BuildTree needs at least 2 leaves, got %d", numLeaves)

	for !q.SizeIsOne() {
		left := q.Pop()
		right := q.Pop()
		q.Push(NewInternal(left, right))
	}
	return q.Pop(), numLeaves
}

// WriteTree serializes the tree rooted at root in postorder: a leaf is a 1
// bit followed by its 8-bit symbol, and an internal node is its left
// subtree, then its right subtree, then a 0 bit.
func WriteTree(bw *BitWriter, root *Node) error {
	if root.IsLeaf() {
		if err := bw.WriteBit(1); err != nil {
			return err
		}
		return bw.WriteUint8(root.Symbol)
	}
	if err := WriteTree(bw, root.Left); err != nil {
		return err
	}
	if err := WriteTree(bw, root.Right); err != nil {
		return err
	}
	return bw.WriteBit(0)
}

// ReadTree deserializes a tree of numLeaves leaves written by WriteTree.
//
// Exactly 2*numLeaves-1 entries are read.  Leaves are pushed onto a stack;
// each internal node pops its right child, then its left child, and pushes
// itself.  Exactly one subtree must remain at the end.
//
func ReadTree(br *BitReader, numLeaves uint16) (*Node, error) {
	if numLeaves < 2 || numLeaves > NumSymbols {
		return nil, corruptf("invalid leaf count %d", numLeaves)
	}

	numNodes := 2*uint(numLeaves) - 1
	stack := make([]*Node, 0, numLeaves)
	for i := uint(0); i < numNodes; i++ {
		tag, err := br.ReadBit()
		if err != nil {
			return nil, corruptf("tree entry %d: %v", i, err)
		}

		if tag == 1 {
			symbol, err := br.ReadUint8()
			if err != nil {
				return nil, corruptf("tree entry %d: %v", i, err)
			}
			stack = append(stack, NewLeaf(symbol, 0))
			continue
		}

		stackLen := len(stack)
		if stackLen < 2 {
			return nil, corruptf("tree entry %d: stack underflow", i)
		}
		left, right := stack[stackLen-2], stack[stackLen-1]
		stack[stackLen-1] = nil
		stack = stack[:stackLen-1]
		stack[stackLen-2] = NewInternal(left, right)
	}

	if len(stack) != 1 {
		return nil, corruptf("%d subtrees left after reading tree, expected 1", len(stack))
	}
	return stack[0], nil
}
