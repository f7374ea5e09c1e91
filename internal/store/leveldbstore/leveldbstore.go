// Package leveldbstore is the durable, real-disk implementation of
// store.Engine, grounded on avalanchego's database/pebble wrapper (same
// shape: a thin Database/batch/snapshot trio translating engine-specific
// errors into the package's own sentinel errors) but built on
// github.com/syndtr/goleveldb, the embedded KV engine the rest of the
// example corpus (bill2cipher, nnlgsakib) reaches for instead of pebble.
//
// store.Engine has no native notion of column families. goleveldb doesn't
// either, so both CFs are simulated the same way memstore does it: a
// one-byte prefix on the physical key, chosen so metadata and blob keys
// never collide even though they share one on-disk keyspace.
package leveldbstore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bloomchain/bloomchaindb/internal/store"
)

const (
	cfLogPrefix      byte = 0x00
	cfMetadataPrefix byte = 0x01
	cfDefaultPrefix  byte = 0x02
)

// Store is the goleveldb-backed store.Engine implementation.
type Store struct {
	db     *leveldb.DB
	locks  *lockManager
	logSeq atomic.Uint64
}

// logDataKey builds a monotonically increasing physical key for a
// PutLogData entry. It is never read back; it exists only so every record
// logged during one Open gets a distinct key within the shared goleveldb
// keyspace. logSeq is not persisted and restarts at zero on Open, so records
// logged after a reopen overwrite the earlier records under the same keys.
func logDataKey(seq uint64) []byte {
	b := make([]byte, 9)
	b[0] = cfLogPrefix
	binary.BigEndian.PutUint64(b[1:], seq)
	return b
}

// Open opens or creates a leveldbstore database rooted at dir.
func Open(dir string) (*Store, error) {
	db, err := leveldb.OpenFile(dir, &opt.Options{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db, locks: newLockManager()}, nil
}

// Close implements store.Engine.
func (s *Store) Close() error {
	return s.db.Close()
}

func metaPhysicalKey(nsKey []byte) []byte {
	b := make([]byte, 1+len(nsKey))
	b[0] = cfMetadataPrefix
	copy(b[1:], nsKey)
	return b
}

func defaultPhysicalKey(internalKey []byte) []byte {
	b := make([]byte, 1+len(internalKey))
	b[0] = cfDefaultPrefix
	copy(b[1:], internalKey)
	return b
}

// GetMetadata implements store.Engine. Like memstore, metadata reads run
// against live state: a caller only ever reads metadata while holding the
// per-key lock that serializes it against concurrent mutation.
func (s *Store) GetMetadata(nsKey []byte) ([]byte, error) {
	v, err := s.db.Get(metaPhysicalKey(nsKey), nil)
	return translateGet(v, err)
}

// Get implements store.Engine, reading key as observed by snap.
func (s *Store) Get(snap store.Snapshot, key []byte) ([]byte, error) {
	ls, ok := snap.(*ldbSnapshot)
	if !ok {
		return nil, fmt.Errorf("leveldbstore: foreign snapshot type %T", snap)
	}
	if ls.err != nil {
		return nil, ls.err
	}
	v, err := ls.snap.Get(defaultPhysicalKey(key), nil)
	return translateGet(v, err)
}

func translateGet(v []byte, err error) ([]byte, error) {
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// ldbSnapshot adapts *leveldb.Snapshot to store.Snapshot. err is set instead
// of snap when the underlying snapshot could not be taken (only happens
// against a closed or corrupted db); Get on such a snapshot fails closed
// rather than dereferencing a nil *leveldb.Snapshot.
type ldbSnapshot struct {
	snap *leveldb.Snapshot
	err  error
}

func (s *ldbSnapshot) Release() {
	if s.snap != nil {
		s.snap.Release()
	}
}

// NewSnapshot implements store.Engine. goleveldb snapshots are a native
// point-in-time view pinned at the current sequence number, exactly the
// isolation store.Engine requires; unlike memstore there is no bespoke
// bookkeeping needed to get it.
func (s *Store) NewSnapshot() store.Snapshot {
	snap, err := s.db.GetSnapshot()
	if err != nil {
		return &ldbSnapshot{err: err}
	}
	return &ldbSnapshot{snap: snap}
}

// Lock implements store.Engine.
func (s *Store) Lock(nsKey []byte) store.UnlockFunc {
	return store.UnlockFunc(s.locks.lock(string(nsKey)))
}

// EncodeInternalKey implements store.Engine, identically to memstore:
// nsKeyLen(u16 BE) || nsKey || version(u64 BE) || subKey.
func (s *Store) EncodeInternalKey(nsKey, subKey []byte, version uint64) []byte {
	buf := make([]byte, 2+len(nsKey)+8+len(subKey))
	binary.BigEndian.PutUint16(buf[0:2], uint16(len(nsKey)))
	copy(buf[2:], nsKey)
	off := 2 + len(nsKey)
	binary.BigEndian.PutUint64(buf[off:off+8], version)
	copy(buf[off+8:], subKey)
	return buf
}

// lockManager is the same striped-mutex design as memstore's: store.Engine
// needs per-key exclusivity, and goleveldb itself offers no such concept.
type lockManager struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockManager() *lockManager {
	return &lockManager{locks: make(map[string]*sync.Mutex)}
}

func (m *lockManager) lock(key string) func() {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}
