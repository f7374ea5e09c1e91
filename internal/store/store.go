// Package store defines the transactional KV engine contract that the chain
// package is built on: atomic multi-key writes via a write batch, snapshot
// reads, and named-key mutual exclusion. This is the external collaborator
// spec.md treats as out of scope; this package supplies the contract plus
// two concrete engines (memstore, leveldbstore) that satisfy it.
package store

import "errors"

// ErrNotFound is returned by GetMetadata when no record exists at the key.
// It is distinct from chainerr.ErrNotFound so store implementations stay
// independent of the chain package; chain translates it at the boundary.
var ErrNotFound = errors.New("store: not found")

// ColumnFamily names a named partition of the keyspace with its own
// iteration order. Engines need not implement true column families; a
// one-byte key prefix is an acceptable substitute (see leveldbstore).
type ColumnFamily string

const (
	// CFMetadata holds one fixed-size chain metadata record per user key.
	CFMetadata ColumnFamily = "metadata"
	// CFDefault holds per-filter blobs addressed by internal key.
	CFDefault ColumnFamily = "default"
)

// Snapshot is a read-only, point-in-time view of the store. It must be
// released when no longer needed.
type Snapshot interface {
	Release()
}

// WriteBatch accumulates mutations for atomic commit. Implementations must
// apply all puts or none.
type WriteBatch interface {
	// PutLogData attaches an opaque write-ahead log record to this batch,
	// used by replication; opaque to callers otherwise.
	PutLogData(data []byte)
	// PutMetadata stages a metadata-record write for nsKey.
	PutMetadata(nsKey, value []byte)
	// Put stages a write to an arbitrary internal key in CFDefault.
	Put(key, value []byte)
	// Commit applies every staged write atomically.
	Commit() error
}

// UnlockFunc releases a lock acquired by Engine.Lock.
type UnlockFunc func()

// Engine is the KV engine contract the chain package depends on.
type Engine interface {
	// GetMetadata reads the metadata record at nsKey, or ErrNotFound.
	GetMetadata(nsKey []byte) ([]byte, error)
	// Get reads key as observed by snap.
	Get(snap Snapshot, key []byte) ([]byte, error)
	// NewSnapshot takes a point-in-time read view of the store.
	NewSnapshot() Snapshot
	// NewWriteBatch starts a new atomic write batch.
	NewWriteBatch() WriteBatch
	// Lock acquires an exclusive lock scoped to nsKey. The returned func
	// must be called exactly once to release it.
	Lock(nsKey []byte) UnlockFunc
	// EncodeInternalKey derives the physical key for a per-filter blob:
	// (nsKey, subKey, version) combined so that a chain re-creation (a
	// version bump) isolates its blobs from a previous incarnation's.
	EncodeInternalKey(nsKey, subKey []byte, version uint64) []byte
	// Close releases all resources held by the engine.
	Close() error
}
