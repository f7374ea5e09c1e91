// Package memstore is the default, in-process implementation of
// store.Engine. It is grounded on the teacher's lsm package: a WAL-backed
// skiplist memtable flushed to sorted, bloom-indexed sstables and merged by
// compaction, generalized from a single flat string keyspace into the
// column-family-scoped, versioned-internal-key model store.Engine requires,
// and from live-only reads into true point-in-time snapshots.
//
// Unlike the teacher, every write (including the threshold-triggered flush
// and compaction) runs synchronously under the store's lock. The teacher's
// background flusher/compactor goroutines let a reader observe a gap where
// data has left the live memtable but not yet landed in an sstable; that is
// incompatible with spec.md's read-your-writes requirement (an MAdd that
// returned Ok must be immediately visible to MExists), so this store trades
// the teacher's write concurrency for that guarantee.
package memstore

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/bloomchain/bloomchaindb/internal/store"
)

const (
	flushThresholdDefault = 256
	minCompactTables      = 4

	cfMetadataPrefix byte = 0x01
	cfDefaultPrefix  byte = 0x02
)

// Store is the in-process store.Engine implementation.
type Store struct {
	dir string

	mu             sync.RWMutex
	memtable       *skipList
	wal            *wal
	sstables       []*sstable
	seq            int
	nextFileID     int
	nextWalID      int
	flushThreshold int

	openSnapshots atomic.Int32
	locks         *lockManager
}

// Open opens or creates a memstore rooted at dir, replaying any existing
// WAL and sstables found there.
func Open(dir string) (*Store, error) {
	walsDir := filepath.Join(dir, "wals")
	sstsDir := filepath.Join(dir, "ssts")
	if err := os.MkdirAll(walsDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(sstsDir, 0o755); err != nil {
		return nil, err
	}

	s := &Store{
		dir:            dir,
		memtable:       newSkipList(10, 0.25),
		flushThreshold: flushThresholdDefault,
		locks:          newLockManager(),
	}

	for _, wm := range discoverWALs(walsDir) {
		maxSeq, err := replayWAL(wm.path,
			func(seq int, k, v string) { s.memtable.Put(seq, k, v) },
			func(seq int, k string) { s.memtable.Delete(seq, k) },
		)
		if err != nil {
			return nil, err
		}
		if maxSeq > s.seq {
			s.seq = maxSeq
		}
		if wm.id+1 > s.nextWalID {
			s.nextWalID = wm.id + 1
		}
	}

	for _, tm := range discoverSSTables(sstsDir) {
		index, filter, seq, err := buildIndex(tm.path)
		if err != nil {
			return nil, err
		}
		s.sstables = append(s.sstables, &sstable{path: tm.path, index: index, filter: filter})
		if seq > s.seq {
			s.seq = seq
		}
		if tm.id+1 > s.nextFileID {
			s.nextFileID = tm.id + 1
		}
	}

	w, err := openWAL(filepath.Join(walsDir, fmt.Sprintf("wal-%06d.log", s.nextWalID)))
	if err != nil {
		return nil, err
	}
	s.wal = w
	s.nextWalID++

	return s, nil
}

// Close flushes any unflushed memtable contents and closes the WAL.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.memtable.Size() > 0 {
		table, err := flushMemtable(s.dir, s.allocFileIDLocked(), s.memtable)
		if err != nil {
			return err
		}
		s.sstables = append(s.sstables, table)
		s.memtable = newSkipList(10, 0.25)
	}
	return s.wal.Close()
}

func (s *Store) allocFileIDLocked() int {
	id := s.nextFileID
	s.nextFileID++
	return id
}

func metaPhysicalKey(nsKey []byte) string {
	b := make([]byte, 1+len(nsKey))
	b[0] = cfMetadataPrefix
	copy(b[1:], nsKey)
	return string(b)
}

func defaultPhysicalKey(internalKey []byte) string {
	b := make([]byte, 1+len(internalKey))
	b[0] = cfDefaultPrefix
	copy(b[1:], internalKey)
	return string(b)
}

// GetMetadata implements store.Engine. Metadata reads are always against
// live state: callers hold the per-key lock for the duration of any
// metadata mutation, so there is no concurrent writer to race against.
func (s *Store) GetMetadata(nsKey []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, found := s.lookupLocked(metaPhysicalKey(nsKey), math.MaxInt)
	if !found {
		return nil, store.ErrNotFound
	}
	return []byte(value), nil
}

// Get implements store.Engine, reading key as observed by snap.
func (s *Store) Get(snap store.Snapshot, key []byte) ([]byte, error) {
	ms, ok := snap.(*memSnapshot)
	if !ok {
		return nil, fmt.Errorf("memstore: foreign snapshot type %T", snap)
	}
	value, found := ms.lookup(defaultPhysicalKey(key))
	if !found {
		return nil, store.ErrNotFound
	}
	return []byte(value), nil
}

// lookupLocked searches the live memtable then sstables newest-first,
// bounding memtable visibility to maxSeq; sstable records are not filtered
// by sequence. Callers hold at least s.mu.RLock.
func (s *Store) lookupLocked(physicalKey string, maxSeq int) (string, bool) {
	if v, ok, isLive := s.memtable.getBounded(physicalKey, maxSeq); ok {
		if isLive {
			return v, true
		}
		return "", false // tombstone
	}
	for i := len(s.sstables) - 1; i >= 0; i-- {
		v, tombstone, found, err := s.sstables[i].lookup(physicalKey)
		if err != nil || !found {
			continue
		}
		if tombstone {
			return "", false
		}
		return v, true
	}
	return "", false
}

func (s *Store) maybeFlushAndCompactLocked() error {
	if s.memtable.Size() < s.flushThreshold {
		return nil
	}
	table, err := flushMemtable(s.dir, s.allocFileIDLocked(), s.memtable)
	if err != nil {
		return err
	}
	if err := os.Remove(s.wal.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := s.wal.Close(); err != nil {
		return err
	}
	w, err := openWAL(filepath.Join(s.dir, "wals", fmt.Sprintf("wal-%06d.log", s.nextWalID)))
	if err != nil {
		return err
	}
	s.wal = w
	s.nextWalID++
	s.memtable = newSkipList(10, 0.25)
	s.sstables = append(s.sstables, table)

	if len(s.sstables) >= minCompactTables && s.openSnapshots.Load() == 0 {
		merged, err := compact(s.dir, s.allocFileIDLocked(), s.sstables)
		if err != nil {
			return err
		}
		s.sstables = []*sstable{merged}
	}
	return nil
}

// memSnapshot pins the memtable and sstable list observed at NewSnapshot
// time, plus the sequence ceiling beyond which writes are invisible.
type memSnapshot struct {
	store    *Store
	maxSeq   int
	memtable *skipList
	sstables []*sstable
	released atomic.Bool
}

func (s *memSnapshot) lookup(physicalKey string) (string, bool) {
	if v, ok, isLive := s.memtable.getBounded(physicalKey, s.maxSeq); ok {
		if isLive {
			return v, true
		}
		return "", false
	}
	for i := len(s.sstables) - 1; i >= 0; i-- {
		v, tombstone, found, err := s.sstables[i].lookup(physicalKey)
		if err != nil || !found {
			continue
		}
		if tombstone {
			return "", false
		}
		return v, true
	}
	return "", false
}

// Release implements store.Snapshot.
func (s *memSnapshot) Release() {
	if s.released.CompareAndSwap(false, true) {
		s.store.openSnapshots.Add(-1)
	}
}

// NewSnapshot implements store.Engine.
func (s *Store) NewSnapshot() store.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := &memSnapshot{
		store:    s,
		maxSeq:   s.seq,
		memtable: s.memtable,
		sstables: append([]*sstable(nil), s.sstables...),
	}
	s.openSnapshots.Add(1)
	return snap
}

// Lock implements store.Engine.
func (s *Store) Lock(nsKey []byte) store.UnlockFunc {
	return store.UnlockFunc(s.locks.lock(string(nsKey)))
}

// EncodeInternalKey implements store.Engine: nsKeyLen(u16) || nsKey ||
// version(u64) || subKey. The version prefix means a chain re-creation
// (a version bump) can never observe a previous incarnation's blobs.
func (s *Store) EncodeInternalKey(nsKey, subKey []byte, version uint64) []byte {
	buf := make([]byte, 2+len(nsKey)+8+len(subKey))
	binary.BigEndian.PutUint16(buf[0:2], uint16(len(nsKey)))
	copy(buf[2:], nsKey)
	off := 2 + len(nsKey)
	binary.BigEndian.PutUint64(buf[off:off+8], version)
	copy(buf[off+8:], subKey)
	return buf
}
