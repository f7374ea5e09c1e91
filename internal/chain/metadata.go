// Package chain implements the scaling (chained) Bloom filter data type:
// metadata record encode/decode, key derivation, and the Reserve/Add/
// MAdd/Exists/MExists/Info operations built on top of bsbf and a
// store.Engine. This is the core spec.md component; everything else in
// the module exists to host or expose it.
package chain

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/bloomchain/bloomchaindb/internal/chainerr"
)

// metadataLen is the encoded record size. The common metadata prefix
// (flags, expiry framing) that a full command dispatcher would wrap this
// in is out of scope; this package has no such outer framing to defer to,
// so version travels inside the record it owns instead of a shared
// prefix. version is never mutated by this package (chain destruction and
// re-creation are out of scope here), but it is threaded through key
// derivation exactly as spec.md describes so that a future destroy/recreate
// layered on top can bump it and isolate old blobs for free.
//
// Layout, network byte order: version(u64) | size(u64) |
// base_capacity(u32) | bloom_bytes(u64) | n_filters(u16) | expansion(u16)
// | error_rate(f64).
const metadataLen = 8 + 8 + 4 + 8 + 2 + 2 + 8

// metadata is the decoded chain metadata record for one user key.
type metadata struct {
	version      uint64
	size         uint64
	baseCapacity uint32
	bloomBytes   uint64
	nFilters     uint16
	expansion    uint16
	errorRate    float64
}

// encode serializes m in the metadataLen layout above, version first. No
// flags/expiry prefix is written; version is stored in this payload and is
// also threaded into every blob's internal key.
func (m *metadata) encode() []byte {
	buf := make([]byte, metadataLen)
	binary.BigEndian.PutUint64(buf[0:8], m.version)
	binary.BigEndian.PutUint64(buf[8:16], m.size)
	binary.BigEndian.PutUint32(buf[16:20], m.baseCapacity)
	binary.BigEndian.PutUint64(buf[20:28], m.bloomBytes)
	binary.BigEndian.PutUint16(buf[28:30], m.nFilters)
	binary.BigEndian.PutUint16(buf[30:32], m.expansion)
	binary.BigEndian.PutUint64(buf[32:40], math.Float64bits(m.errorRate))
	return buf
}

// decodeMetadata parses buf and validates the record's invariants.
func decodeMetadata(buf []byte) (*metadata, error) {
	if len(buf) != metadataLen {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", chainerr.ErrCorruptedMetadata, metadataLen, len(buf))
	}
	m := &metadata{
		version:      binary.BigEndian.Uint64(buf[0:8]),
		size:         binary.BigEndian.Uint64(buf[8:16]),
		baseCapacity: binary.BigEndian.Uint32(buf[16:20]),
		bloomBytes:   binary.BigEndian.Uint64(buf[20:28]),
		nFilters:     binary.BigEndian.Uint16(buf[28:30]),
		expansion:    binary.BigEndian.Uint16(buf[30:32]),
		errorRate:    math.Float64frombits(binary.BigEndian.Uint64(buf[32:40])),
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *metadata) validate() error {
	if m.nFilters < 1 {
		return fmt.Errorf("%w: n_filters %d < 1", chainerr.ErrCorruptedMetadata, m.nFilters)
	}
	if !(m.errorRate > 0 && m.errorRate < 1) {
		return fmt.Errorf("%w: error_rate %v out of (0,1)", chainerr.ErrCorruptedMetadata, m.errorRate)
	}
	if m.baseCapacity < 1 {
		return fmt.Errorf("%w: base_capacity %d < 1", chainerr.ErrCorruptedMetadata, m.baseCapacity)
	}
	return nil
}

// capacityOfFilter returns base_capacity * expansion^i, saturating at
// math.MaxUint32 instead of wrapping. spec.md leaves this an open question
// and explicitly prefers saturation over the reference wraparound.
func capacityOfFilter(baseCapacity uint32, expansion uint16, i uint16) uint64 {
	cap64 := uint64(baseCapacity)
	for n := uint16(0); n < i; n++ {
		cap64 *= uint64(expansion)
		if cap64 > math.MaxUint32 {
			return math.MaxUint32
		}
	}
	return cap64
}

// GetCapacity returns the chain's aggregate item capacity: the sum of
// base_capacity * expansion^i for i in 0..n_filters, saturating rather than
// overflowing.
func (m *metadata) GetCapacity() uint64 {
	var total uint64
	for i := uint16(0); i < m.nFilters; i++ {
		c := capacityOfFilter(m.baseCapacity, m.expansion, i)
		if total > math.MaxUint64-c {
			return math.MaxUint64
		}
		total += c
	}
	return total
}
