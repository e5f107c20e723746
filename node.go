package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Node is a node in a Huffman code tree.  A Node with no children is a leaf,
// representing Symbol; a Node with children is an internal node, and its
// Symbol is always 0.  Internal nodes always have exactly two children.
type Node struct {
	Symbol byte
	Weight uint32
	Left   *Node
	Right  *Node
}

// NewLeaf constructs a leaf Node.
func NewLeaf(symbol byte, weight uint32) *Node {
	return &Node{Symbol: symbol, Weight: weight}
}

// NewInternal constructs an internal Node which owns left and right.  Its
// weight is the (saturating) sum of the children's weights.
func NewInternal(left *Node, right *Node) *Node {
	return &Node{
		Weight: addWeights(left.Weight, right.Weight),
		Left:   left,
		Right:  right,
	}
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Count returns the total number of nodes and the number of leaves in the
// tree rooted at n.
func (n *Node) Count() (nodes int, leaves int) {
	if n == nil {
		return 0, 0
	}
	if n.IsLeaf() {
		return 1, 1
	}
	ln, ll := n.Left.Count()
	rn, rl := n.Right.Count()
	return 1 + ln + rn, ll + rl
}

// Equal returns true iff the trees rooted at n and m have the same shape and
// the same symbol at every leaf.  Weights are not compared, since they are
// not part of the serialized form.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.IsLeaf() != m.IsLeaf() {
		return false
	}
	if n.IsLeaf() {
		return n.Symbol == m.Symbol
	}
	return n.Left.Equal(m.Left) && n.Right.Equal(m.Right)
}

// Dump writes a programmer-readable, sideways picture of the tree to the
// given writer.  The right subtree is drawn above its parent and the left
// subtree below it.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	n.dumpTo(&buf, '<', 0)
	return buf.WriteTo(w)
}

func (n *Node) dumpTo(buf *bytes.Buffer, ch byte, depth int) {
	if n == nil {
		return
	}
	n.Right.dumpTo(buf, '/', depth+1)
	buf.WriteString(strings.Repeat("   ", depth))
	fmt.Fprintf(buf, "%c weight = %d", ch, n.Weight)
	if n.IsLeaf() {
		if n.Symbol >= ' ' && n.Symbol <= '~' {
			fmt.Fprintf(buf, ", symbol = '%c'", n.Symbol)
		} else {
			fmt.Fprintf(buf, ", symbol = 0x%02x", n.Symbol)
		}
	}
	buf.WriteByte('\n')
	n.Left.dumpTo(buf, '\\', depth+1)
}
