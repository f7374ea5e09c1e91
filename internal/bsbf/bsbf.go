// Package bsbf implements a block-split Bloom filter: a Bloom filter whose
// bit array is partitioned into 256-bit blocks so that every inserted item
// touches exactly one block. This keeps each insert/probe to a single cache
// line instead of scattering bits across the whole array.
//
// The filter is a pure in-memory computation over a caller-owned byte slice;
// it performs no I/O. Callers own persistence.
//
// Hashing and the eight salts are fixed and on-disk-visible: changing either
// silently invalidates every filter already written. See the salts table
// below, lifted from the Parquet block-split Bloom filter specification.
package bsbf

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// blockBytes is the size of one block: 256 bits, eight 32-bit words.
const blockBytes = 32

// salts are the eight fixed odd 32-bit constants used to derive, for each
// item, one bit position per word of its block. These values come from the
// Parquet block-split Bloom filter format and must never change: a reader
// and a writer must agree on them across versions.
var salts = [8]uint32{
	0x47b6137b, 0x44974d91, 0x8824ad5b, 0xa2b7289d,
	0x705495c7, 0x2df1424b, 0x9efc4947, 0x5c6bfb31,
}

// Hash returns the 64-bit hash of item used for block selection and bit
// derivation. Seed is fixed at 0; this is the only per-item computation.
func Hash(item []byte) uint64 {
	return xxhash.Sum64(item)
}

// OptimalNumBytes returns the smallest filter size, in bytes, that holds n
// items at target false-positive rate p. The result is always a multiple of
// blockBytes and at least one block.
func OptimalNumBytes(n uint32, p float64) uint32 {
	if n == 0 {
		n = 1
	}
	const blockBits = blockBytes * 8
	bitsPerItem := -math.Log2(p) / math.Ln2
	rawBits := float64(n) * bitsPerItem
	numBits := uint64(math.Ceil(rawBits/float64(blockBits))) * blockBits
	numBytes := uint32(numBits / 8)
	if numBytes < blockBytes {
		numBytes = blockBytes
	}
	return numBytes
}

// New returns a zero-filled filter blob of the given byte size. numBytes
// must be a positive multiple of blockBytes; callers derive it from
// OptimalNumBytes.
func New(numBytes uint32) []byte {
	return make([]byte, numBytes)
}

// numBlocks returns the number of 32-byte blocks in blob.
func numBlocks(blob []byte) uint64 {
	return uint64(len(blob) / blockBytes)
}

// blockIndex maps the upper 32 bits of h into [0, numBlocks) via a 64x32
// high-multiply, per the block-split Bloom filter spec.
func blockIndex(h uint64, numBlocks uint64) uint64 {
	return ((h >> 32) * numBlocks) >> 32
}

// Insert sets, within blob, the eight bits (one per word) that item's hash h
// maps to. blob must have been produced by New.
func Insert(blob []byte, h uint64) {
	block := blockOf(blob, h)
	lower := uint32(h)
	for w := 0; w < 8; w++ {
		bit := (lower * salts[w]) >> 27
		wordOff := w * 4
		word := le32(block[wordOff : wordOff+4])
		word |= 1 << bit
		putLE32(block[wordOff:wordOff+4], word)
	}
}

// Probe reports whether all eight bits item's hash h maps to are set in
// blob. A false result is a definite negative; a true result may be a false
// positive.
func Probe(blob []byte, h uint64) bool {
	block := blockOf(blob, h)
	lower := uint32(h)
	for w := 0; w < 8; w++ {
		bit := (lower * salts[w]) >> 27
		wordOff := w * 4
		word := le32(block[wordOff : wordOff+4])
		if word&(1<<bit) == 0 {
			return false
		}
	}
	return true
}

func blockOf(blob []byte, h uint64) []byte {
	idx := blockIndex(h, numBlocks(blob))
	off := idx * blockBytes
	return blob[off : off+blockBytes]
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
