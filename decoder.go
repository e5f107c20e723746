package huffman

import (
	"io"

	"github.com/chronos-tachyon/assert"
)

// Decoder decodes symbols by walking a code tree, one bit per edge.
type Decoder struct {
	root *Node
}

// Init initializes this Decoder from the tree rooted at root.  The root must
// not be a leaf.
func (d *Decoder) Init(root *Node) {
	assert.Assertf(!root.IsLeaf(), "Decoder.Init requires a tree with at least 2 leaves")
	*d = Decoder{root: root}
}

// Decode reads bits from br until a leaf is reached, and returns the leaf's
// symbol.  A 0 bit moves to the left child, a 1 bit to the right child.
//
// If br runs out of bits mid-code, the error wraps ErrCorrupt.
//
func (d *Decoder) Decode(br *BitReader) (byte, error) {
	node := d.root
	for !node.IsLeaf() {
		bit, err := br.ReadBit()
		if err == io.ErrUnexpectedEOF {
			return 0, corruptf("payload truncated")
		}
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Symbol, nil
}

// Root returns the root of the code tree.
func (d *Decoder) Root() *Node {
	return d.root
}

// Dump writes a programmer-readable debugging dump of the Decoder's code
// tree to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	return d.root.Dump(w)
}
