package chain

import (
	"errors"
	"fmt"

	"github.com/bloomchain/bloomchaindb/internal/bsbf"
	"github.com/bloomchain/bloomchaindb/internal/chainerr"
	"github.com/bloomchain/bloomchaindb/internal/store"
)

// Default parameters, applied when MAdd auto-creates a chain and by
// callers that don't supply their own via Reserve.
const (
	DefaultErrorRate    = 0.01
	DefaultBaseCapacity = 100
	DefaultExpansion    = 2
)

// AddResult is the per-item outcome of MAdd.
type AddResult int

const (
	// Ok means the item was hashed into the chain for the first time.
	Ok AddResult = iota
	// Exists means the item probed positive in some filter already.
	Exists
	// Full means the chain is non-scaling and at capacity.
	Full
)

func (r AddResult) String() string {
	switch r {
	case Ok:
		return "Ok"
	case Exists:
		return "Exists"
	case Full:
		return "Full"
	default:
		return fmt.Sprintf("AddResult(%d)", int(r))
	}
}

// Info is the snapshot of a chain's state returned by Store.Info.
type Info struct {
	Capacity   uint64
	BloomBytes uint64
	NFilters   uint16
	Size       uint64
	Expansion  uint16
}

// Store implements the scaling Bloom filter operations on top of a
// store.Engine. It holds no state of its own beyond the engine handle: all
// chain state lives in the KV store, addressed by the caller-supplied
// namespaced key (ns_key in spec.md's terms).
type Store struct {
	engine store.Engine
}

// New returns a chain Store backed by engine.
func New(engine store.Engine) *Store {
	return &Store{engine: engine}
}

// Reserve creates a new chain at nsKey with the given parameters. It fails
// with chainerr.ErrAlreadyExists if a chain already exists there, or
// chainerr.ErrInvalidArgument if capacity or errorRate are out of range.
func (s *Store) Reserve(nsKey []byte, capacity uint32, errorRate float64, expansion uint16) error {
	if capacity < 1 {
		return fmt.Errorf("%w: capacity %d < 1", chainerr.ErrInvalidArgument, capacity)
	}
	if !(errorRate > 0 && errorRate < 1) {
		return fmt.Errorf("%w: error_rate %v out of (0,1)", chainerr.ErrInvalidArgument, errorRate)
	}

	unlock := s.engine.Lock(nsKey)
	defer unlock()

	if _, err := s.engine.GetMetadata(nsKey); err == nil {
		return fmt.Errorf("%w: key already reserved", chainerr.ErrAlreadyExists)
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	numBytes := bsbf.OptimalNumBytes(capacity, errorRate)
	m := &metadata{
		version:      1,
		size:         0,
		baseCapacity: capacity,
		bloomBytes:   uint64(numBytes),
		nFilters:     1,
		expansion:    expansion,
		errorRate:    errorRate,
	}

	batch := s.engine.NewWriteBatch()
	batch.PutLogData(encodeLogTokens("createBloomChain"))
	batch.PutMetadata(nsKey, m.encode())
	batch.Put(s.engine.EncodeInternalKey(nsKey, blobSubKey(0), m.version), bsbf.New(numBytes))
	return batch.Commit()
}

// chainState is the working set an operation reads once and mutates
// in-memory before staging a batch: the decoded metadata plus every
// filter's blob, oldest first.
type chainState struct {
	meta  *metadata
	blobs [][]byte
}

// readChain loads metadata (always a live read; store.Engine.GetMetadata
// takes no snapshot) and every filter blob as observed by snap.
func (s *Store) readChain(snap store.Snapshot, nsKey []byte) (*chainState, error) {
	raw, err := s.engine.GetMetadata(nsKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, chainerr.ErrNotFound
		}
		return nil, err
	}
	m, err := decodeMetadata(raw)
	if err != nil {
		return nil, err
	}

	blobs := make([][]byte, m.nFilters)
	for i := uint16(0); i < m.nFilters; i++ {
		key := s.engine.EncodeInternalKey(nsKey, blobSubKey(i), m.version)
		v, err := s.engine.Get(snap, key)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: filter %d missing", chainerr.ErrCorruptedChain, i)
			}
			return nil, err
		}
		blobs[i] = v
	}
	return &chainState{meta: m, blobs: blobs}, nil
}

// readChainLocked reads the chain at nsKey via a fresh snapshot, for use
// by mutating operations that already hold nsKey's per-key lock. Step 3
// of spec.md's MAdd algorithm calls for a snapshot read of the blob list
// even inside the locked section, so that n_filters (read just before) and
// the blob list stay mutually consistent.
func (s *Store) readChainLocked(nsKey []byte) (*chainState, error) {
	snap := s.engine.NewSnapshot()
	defer snap.Release()
	return s.readChain(snap, nsKey)
}

// probeAll reports whether h is present in any filter, searched
// newest-to-oldest per spec.md's rationale (a recent insert is more likely
// to be recent, so short-circuit sooner on average).
func probeAll(blobs [][]byte, h uint64) bool {
	for i := len(blobs) - 1; i >= 0; i-- {
		if bsbf.Probe(blobs[i], h) {
			return true
		}
	}
	return false
}

// Add is MAdd for a single item.
func (s *Store) Add(nsKey, item []byte) (AddResult, error) {
	results, err := s.MAdd(nsKey, [][]byte{item})
	if err != nil {
		return 0, err
	}
	return results[0], nil
}

// MAdd inserts items into the chain at nsKey, auto-creating a default
// chain if none exists, and returns one AddResult per item in input order.
func (s *Store) MAdd(nsKey []byte, items [][]byte) ([]AddResult, error) {
	results := make([]AddResult, len(items))
	if len(items) == 0 {
		return results, nil
	}

	unlock := s.engine.Lock(nsKey)
	defer unlock()

	cs, err := s.readChainLocked(nsKey)
	if errors.Is(err, chainerr.ErrNotFound) {
		if createErr := s.createDefaultLocked(nsKey); createErr != nil {
			return nil, createErr
		}
		cs, err = s.readChainLocked(nsKey)
	}
	if err != nil {
		return nil, err
	}

	hashes := make([]uint64, len(items))
	for i, item := range items {
		hashes[i] = bsbf.Hash(item)
	}

	initialSize := cs.meta.size
	dirty := make(map[uint16]bool)

	for i, h := range hashes {
		if probeAll(cs.blobs, h) {
			results[i] = Exists
			continue
		}

		if cs.meta.size+1 > cs.meta.GetCapacity() {
			if cs.meta.expansion == 0 {
				results[i] = Full
				continue
			}
			numBytes := bsbf.OptimalNumBytes(
				clampCapacity(capacityOfFilter(cs.meta.baseCapacity, cs.meta.expansion, cs.meta.nFilters)),
				cs.meta.errorRate,
			)
			cs.blobs = append(cs.blobs, bsbf.New(numBytes))
			cs.meta.nFilters++
			cs.meta.bloomBytes += uint64(numBytes)
		}

		newestIdx := uint16(len(cs.blobs) - 1)
		bsbf.Insert(cs.blobs[newestIdx], h)
		dirty[newestIdx] = true
		cs.meta.size++
		results[i] = Ok
	}

	if cs.meta.size == initialSize {
		return results, nil
	}

	batch := s.engine.NewWriteBatch()
	batch.PutLogData(encodeLogTokens("insert"))
	batch.PutMetadata(nsKey, cs.meta.encode())
	for idx := range dirty {
		batch.Put(s.engine.EncodeInternalKey(nsKey, blobSubKey(idx), cs.meta.version), cs.blobs[idx])
	}
	return results, batch.Commit()
}

// clampCapacity narrows a saturating uint64 capacity back to the uint32
// bsbf.OptimalNumBytes expects, saturating at MaxUint32 rather than
// truncating.
func clampCapacity(c uint64) uint32 {
	const maxU32 = 1<<32 - 1
	if c > maxU32 {
		return maxU32
	}
	return uint32(c)
}

func (s *Store) createDefaultLocked(nsKey []byte) error {
	numBytes := bsbf.OptimalNumBytes(DefaultBaseCapacity, DefaultErrorRate)
	m := &metadata{
		version:      1,
		size:         0,
		baseCapacity: DefaultBaseCapacity,
		bloomBytes:   uint64(numBytes),
		nFilters:     1,
		expansion:    DefaultExpansion,
		errorRate:    DefaultErrorRate,
	}
	batch := s.engine.NewWriteBatch()
	batch.PutLogData(encodeLogTokens("createBloomChain"))
	batch.PutMetadata(nsKey, m.encode())
	batch.Put(s.engine.EncodeInternalKey(nsKey, blobSubKey(0), m.version), bsbf.New(numBytes))
	return batch.Commit()
}

// Exists is MExists for a single item.
func (s *Store) Exists(nsKey, item []byte) (bool, error) {
	results, err := s.MExists(nsKey, [][]byte{item})
	if err != nil {
		return false, err
	}
	return results[0], nil
}

// MExists reports, for each item, whether it probes positive against the
// chain at nsKey. A missing chain yields all-false, not an error: no lock
// is taken since a snapshot is sufficient for a consistent read.
func (s *Store) MExists(nsKey []byte, items [][]byte) ([]bool, error) {
	results := make([]bool, len(items))
	if len(items) == 0 {
		return results, nil
	}

	snap := s.engine.NewSnapshot()
	defer snap.Release()

	cs, err := s.readChain(snap, nsKey)
	if errors.Is(err, chainerr.ErrNotFound) {
		return results, nil
	}
	if err != nil {
		return nil, err
	}

	for i, item := range items {
		results[i] = probeAll(cs.blobs, bsbf.Hash(item))
	}
	return results, nil
}

// Info returns the current state of the chain at nsKey.
func (s *Store) Info(nsKey []byte) (Info, error) {
	raw, err := s.engine.GetMetadata(nsKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Info{}, chainerr.ErrNotFound
		}
		return Info{}, err
	}
	m, err := decodeMetadata(raw)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Capacity:   m.GetCapacity(),
		BloomBytes: m.bloomBytes,
		NFilters:   m.nFilters,
		Size:       m.size,
		Expansion:  m.expansion,
	}, nil
}
