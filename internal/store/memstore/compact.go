package memstore

import (
	"bufio"
	"container/heap"
	"fmt"
	"os"
	"path/filepath"
)

// compact merges tables into a single sorted sstable, keeping only the
// newest version of each key (by sequence number) and dropping any key
// whose newest version is a tombstone.
func compact(dir string, fileID int, tables []*sstable) (*sstable, error) {
	h := &iterHeap{}
	heap.Init(h)

	var iters []*sstableIter
	for _, t := range tables {
		it, err := newSSTableIter(t.path)
		if err != nil {
			return nil, err
		}
		iters = append(iters, it)
		it.Next()
		if it.Valid() {
			heap.Push(h, &heapItem{it: it, key: it.Key(), seq: it.Seq(), kind: it.Kind(), value: it.Value()})
		}
	}
	defer func() {
		for _, it := range iters {
			it.Close()
		}
	}()

	target := filepath.Join(dir, "ssts", fmt.Sprintf("sst-%06d.sst", fileID))
	tmp := target + ".compact.tmp"
	filter := newSSTableFilter(sstableBloomM, sstableBloomK)
	table := &sstable{path: target, filter: filter}

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	w := bufio.NewWriterSize(f, 64<<10)

	var offset int64
	i := 0

	for h.Len() > 0 {
		item := heap.Pop(h).(*heapItem)
		currentKey, newestKind, newestSeq, newestVal := item.key, item.kind, item.seq, item.value

		item.it.Next()
		if item.it.Valid() {
			heap.Push(h, &heapItem{it: item.it, key: item.it.Key(), seq: item.it.Seq(), kind: item.it.Kind(), value: item.it.Value()})
		}
		for h.Len() > 0 && (*h)[0].key == currentKey {
			older := heap.Pop(h).(*heapItem)
			older.it.Next()
			if older.it.Valid() {
				heap.Push(h, &heapItem{it: older.it, key: older.it.Key(), seq: older.it.Seq(), kind: older.it.Kind(), value: older.it.Value()})
			}
		}

		if newestKind == kindPut {
			line := fmt.Sprintf("PUT %d %s %s\n", newestSeq, enc([]byte(currentKey)), enc([]byte(newestVal)))
			filter.add(currentKey)
			if i%stride == 0 {
				table.index = append(table.index, indexEntry{key: currentKey, offset: offset})
			}
			n, err := w.WriteString(line)
			if err != nil {
				f.Close()
				return nil, err
			}
			offset += int64(n)
			i++
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	if err := os.Rename(tmp, target); err != nil {
		return nil, err
	}

	for _, t := range tables {
		if t.path != target {
			_ = os.Remove(t.path)
		}
	}
	return table, nil
}
