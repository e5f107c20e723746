package huffman

import (
	"math"
)

// NumSymbols is the size of the alphabet: one symbol per byte value.
const NumSymbols = 256

// SentinelLow and SentinelHigh are the symbols which NewHistogram seeds with
// a count of 1, so that every code tree has at least two leaves.
const (
	SentinelLow  = byte(0x00)
	SentinelHigh = byte(0xff)
)

// MaxFileSize is the largest input, in bytes, that can be compressed.  The
// container stores the length in 32 bits, and one more is reserved so that
// a seeded symbol count cannot overflow.
const MaxFileSize = math.MaxUint32 - 1

// MaxCodeSize is the maximum number of bits in a single Code.
const MaxCodeSize = 64
