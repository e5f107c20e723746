package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit, i.e. the edge leaving the root of the tree.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one more bit.
func (hc Code) Append(bit byte) Code {
	if bit&1 != 0 {
		hc.Bits |= uint64(1) << hc.Size
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of the code, counting from the first.
func (hc Code) Bit(i byte) byte {
	return byte(hc.Bits>>i) & 1
}

// String returns the string representation of this Code, first bit first.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + hc.Bit(i))
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}
