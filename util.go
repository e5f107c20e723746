package huffman

import (
	"math"
)

// addWeights computes a + b using saturating addition.
func addWeights(a, b uint32) uint32 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint32
	}
	return sum
}
