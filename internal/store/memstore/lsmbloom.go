package memstore

import "github.com/cespare/xxhash/v2"

// sstableFilter is the storage engine's own internal optimization: a small
// Bloom filter over the keys in one on-disk sstable, letting Get skip a
// table entirely when it definitely does not hold the key. It is unrelated
// to the bloomchain product's exposed block-split Bloom filter (package
// bsbf) one layer up — this one indexes engine-internal keys, not
// user-visible chain items, and is never persisted or exposed outside this
// package.
type sstableFilter struct {
	m    uint
	k    uint
	bits []uint64
}

const (
	sstableBloomM = 4096
	sstableBloomK = 7
)

func newSSTableFilter(m, k uint) *sstableFilter {
	return &sstableFilter{m: m, k: k, bits: make([]uint64, (m+63)/64)}
}

// bloomHashes derives the Kirsch-Mitzenmacher pair (h1, h2) for key from two
// xxhash digests, the same hash family internal/bsbf hashes chain items
// with, rather than a hand-rolled splitmix64 mix.
func bloomHashes(key string) (uint64, uint64) {
	h1 := xxhash.Sum64String(key)
	h2 := xxhash.Sum64String(key + "\x01")
	return h1, h2
}

func (f *sstableFilter) add(key string) {
	if f == nil {
		return
	}
	h1, h2 := bloomHashes(key)
	for i := uint(0); i < f.k; i++ {
		idx := (h1 + uint64(i)*h2) & (uint64(f.m) - 1)
		f.bits[idx/64] |= 1 << (idx % 64)
	}
}

func (f *sstableFilter) mightContain(key string) bool {
	if f == nil {
		return true
	}
	h1, h2 := bloomHashes(key)
	for i := uint(0); i < f.k; i++ {
		idx := (h1 + uint64(i)*h2) & (uint64(f.m) - 1)
		if f.bits[idx/64]&(1<<(idx%64)) == 0 {
			return false
		}
	}
	return true
}
