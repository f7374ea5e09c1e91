package memstore

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// sstableIter walks one sstable's records in key order, for use by compact.
type sstableIter struct {
	file  *os.File
	sc    *bufio.Scanner
	key   string
	seq   int
	value string
	kind  kind
	valid bool
}

func newSSTableIter(path string) (*sstableIter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64<<10), 64<<20)
	return &sstableIter{file: f, sc: sc, valid: true}, nil
}

func (it *sstableIter) Next() {
	if !it.sc.Scan() {
		it.valid = false
		return
	}
	parts := strings.SplitN(it.sc.Text(), " ", 4)
	seq, _ := strconv.Atoi(parts[1])
	keyBytes, _ := dec(parts[2])

	it.seq = seq
	it.key = string(keyBytes)
	if parts[0] == "PUT" {
		it.kind = kindPut
		value, _ := dec(parts[3])
		it.value = string(value)
	} else {
		it.kind = kindDelete
		it.value = ""
	}
}

func (it *sstableIter) Key() string   { return it.key }
func (it *sstableIter) Seq() int      { return it.seq }
func (it *sstableIter) Kind() kind    { return it.kind }
func (it *sstableIter) Value() string { return it.value }
func (it *sstableIter) Valid() bool   { return it.valid }
func (it *sstableIter) Close() error  { return it.file.Close() }
