package memstore

import "github.com/bloomchain/bloomchaindb/internal/store"

// op is one staged mutation in a batch, applied to the physical keyspace
// (already CF-prefixed) on Commit.
type op struct {
	key   string
	value string
}

// batch implements store.WriteBatch for the memstore engine.
type batch struct {
	store    *Store
	logData  [][]byte
	metadata []op
	puts     []op
}

func (b *batch) PutLogData(data []byte) {
	b.logData = append(b.logData, data)
}

func (b *batch) PutMetadata(nsKey, value []byte) {
	b.metadata = append(b.metadata, op{key: metaPhysicalKey(nsKey), value: string(value)})
}

func (b *batch) Put(key, value []byte) {
	b.puts = append(b.puts, op{key: defaultPhysicalKey(key), value: string(value)})
}

// Commit applies every staged write atomically: all records land in the WAL
// and the memtable while holding the store's write lock, so a concurrent
// reader on another key never observes a partial batch.
func (b *batch) Commit() error {
	s := b.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, data := range b.logData {
		s.seq++
		s.wal.WriteLog(s.seq, data)
	}
	for _, o := range b.metadata {
		s.seq++
		s.wal.WritePut(s.seq, o.key, o.value)
		s.memtable.Put(s.seq, o.key, o.value)
	}
	for _, o := range b.puts {
		s.seq++
		s.wal.WritePut(s.seq, o.key, o.value)
		s.memtable.Put(s.seq, o.key, o.value)
	}
	if err := s.wal.Sync(); err != nil {
		return err
	}

	return s.maybeFlushAndCompactLocked()
}

// NewWriteBatch implements store.Engine.
func (s *Store) NewWriteBatch() store.WriteBatch {
	return &batch{store: s}
}
