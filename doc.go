// Package huffman implements a lossless byte-stream compressor based on
// static Huffman coding.
//
// A compressed stream ("HC" container) consists of a two-byte magic, the
// original length, the number of leaves in the code tree, the tree itself
// in postorder, and the bit-packed payload.  Every multi-bit field is
// written least significant bit first, and bits are packed into bytes
// starting from the least significant bit.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
