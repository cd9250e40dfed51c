// Package huffman implements a byte-oriented Huffman codec with a fixed-size
// frequency header.
//
// An encoded stream has the following layout:
//
//     offset 0 .. 1024:  256 big-endian uint32 counts, frequency[0..255]
//     offset 1024 .. end: the codeword of each input byte, in input order,
//                         most significant bit first, final byte zero-padded
//
// The decoder rebuilds the code tree from the header alone and stops after
// the number of bytes given by the sum of the counts, so padding bits are
// never interpreted.  Tree construction breaks ties deterministically (see
// BuildTree), which makes encoding a pure function of the input.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
