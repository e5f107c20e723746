package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder maps each symbol to the Code given by its path in a code tree.
type Encoder struct {
	codes   [NumSymbols]Code
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from the tree rooted at root.  A left edge
// contributes a 0 bit and a right edge a 1 bit.  Symbols which do not appear
// in the tree are left with an empty Code.
//
// The root must not be a leaf, and no leaf may be deeper than MaxCodeSize.
//
func (e *Encoder) Init(root *Node) {
	assert.Assertf(!root.IsLeaf(), "Encoder.Init requires a tree with at least 2 leaves")

	*e = Encoder{}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Leaves never get pushed onto the stack, only internal nodes.

	type stackItem struct {
		node *Node
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, 16)
	var hasMinMax bool

	processChild := func(child *Node, hc Code) {
		if !child.IsLeaf() {
			stack = append(stack, stackItem{node: child, code: hc})
			return
		}

		assert.Assertf(hc.Size <= MaxCodeSize, "code for symbol %d is %d bits, max %d", child.Symbol, hc.Size, MaxCodeSize)
		e.codes[child.Symbol] = hc
		if !hasMinMax {
			hasMinMax = true
			e.minSize = hc.Size
			e.maxSize = hc.Size
		} else if e.minSize > hc.Size {
			e.minSize = hc.Size
		} else if e.maxSize < hc.Size {
			e.maxSize = hc.Size
		}
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left, top.code.Append(0))
		case 1:
			processChild(top.node.Right, top.code.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

// Encode returns the Code for a symbol.
func (e *Encoder) Encode(symbol byte) Code {
	return e.codes[symbol]
}

// MinSize is the bit length of the shortest code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each symbol,
// or 0 for symbols without a code.
func (e *Encoder) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := range e.codes {
		out[symbol] = e.codes[symbol].Size
	}
	return out
}

// EncodedSize returns the number of payload bits needed to encode every
// symbol counted in h.
func (e *Encoder) EncodedSize(h *Histogram) uint64 {
	var total uint64
	for symbol := range e.codes {
		total += uint64(h.counts[symbol]) * uint64(e.codes[symbol].Size)
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols without a code are omitted.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := range e.codes {
		hc := e.codes[symbol]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
