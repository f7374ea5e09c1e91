package leveldbstore

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bloomchain/bloomchaindb/internal/store"
)

// batch implements store.WriteBatch over a *leveldb.Batch. logData entries
// have no native goleveldb analogue (there is no separate write-ahead log
// to address directly), so they are folded into the same batch as a
// reserved-prefix key; goleveldb's own WAL durably persists the whole
// batch in one fsync regardless of which logical stream each entry
// belongs to.
type batch struct {
	store *Store
	lb    *leveldb.Batch
}

func (b *batch) PutLogData(data []byte) {
	seq := b.store.logSeq.Add(1)
	b.lb.Put(logDataKey(seq), data)
}

func (b *batch) PutMetadata(nsKey, value []byte) {
	b.lb.Put(metaPhysicalKey(nsKey), value)
}

func (b *batch) Put(key, value []byte) {
	b.lb.Put(defaultPhysicalKey(key), value)
}

// Commit implements store.WriteBatch.
func (b *batch) Commit() error {
	return b.store.db.Write(b.lb, nil)
}

// NewWriteBatch implements store.Engine.
func (s *Store) NewWriteBatch() store.WriteBatch {
	return &batch{store: s, lb: new(leveldb.Batch)}
}
