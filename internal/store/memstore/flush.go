package memstore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// flushMemtable writes mt's contents to a new sstable file under dir/ssts
// and returns the resulting sstable, sorted by the skiplist's own order.
func flushMemtable(dir string, fileID int, mt *skipList) (*sstable, error) {
	target := filepath.Join(dir, "ssts", fmt.Sprintf("sst-%06d.sst", fileID))
	tmp := target + ".tmp"

	filter := newSSTableFilter(sstableBloomM, sstableBloomK)
	table := &sstable{path: target, filter: filter}

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	w := bufio.NewWriterSize(f, 64<<10)

	var offset int64
	i := 0
	x := mt.header.forward[0]
	for x != nil {
		key := x.key
		var line string
		if x.kind == kindPut {
			line = fmt.Sprintf("PUT %d %s %s\n", x.seq, enc([]byte(x.key)), enc([]byte(x.value)))
		} else {
			line = fmt.Sprintf("DEL %d %s %s\n", x.seq, enc([]byte(x.key)), enc(nil))
		}
		if i%stride == 0 {
			table.index = append(table.index, indexEntry{key: key, offset: offset})
		}
		n, err := w.WriteString(line)
		if err != nil {
			f.Close()
			return nil, err
		}
		filter.add(key)
		offset += int64(n)

		for x != nil && x.key == key {
			x = x.forward[0]
		}
		i++
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
	return table, nil
}
