package memstore

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// wal is a write-ahead log of PUT/DEL/LOG records. Unlike the teacher's WAL
// (which writes string keys/values directly as space-separated text), this
// format base64-encodes the key and value fields: per-filter blobs are raw
// bit arrays and may contain any byte value, including spaces and newlines,
// so a text line format must escape them to stay parseable.
type wal struct {
	file   *os.File
	writer *bufio.Writer
	path   string
}

func openWAL(path string) (*wal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &wal{file: f, writer: bufio.NewWriterSize(f, 64<<10), path: path}, nil
}

func (w *wal) Close() error {
	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.file.Close()
}

func (w *wal) Sync() error {
	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.file.Sync()
}

func enc(b []byte) string { return base64.StdEncoding.EncodeToString(b) }
func dec(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }

func (w *wal) WritePut(seq int, key, value string) {
	fmt.Fprintf(w.writer, "PUT %d %s %s\n", seq, enc([]byte(key)), enc([]byte(value)))
}

func (w *wal) WriteDel(seq int, key string) {
	fmt.Fprintf(w.writer, "DEL %d %s\n", seq, enc([]byte(key)))
}

func (w *wal) WriteLog(seq int, data []byte) {
	fmt.Fprintf(w.writer, "LOG %d %s\n", seq, enc(data))
}

// replayWAL replays path, invoking onPut/onDel for each record in order, and
// returns the highest sequence number seen.
func replayWAL(path string, onPut func(seq int, key, value string), onDel func(seq int, key string)) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	maxSeq := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64<<10), 64<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 4)
		seq, _ := strconv.Atoi(parts[1])
		if seq > maxSeq {
			maxSeq = seq
		}
		switch parts[0] {
		case "PUT":
			key, _ := dec(parts[2])
			value, _ := dec(parts[3])
			onPut(seq, string(key), string(value))
		case "DEL":
			key, _ := dec(parts[2])
			onDel(seq, string(key))
		case "LOG":
			// Write-ahead log data is opaque to replay; it carries no
			// state to reapply.
		}
	}
	return maxSeq, sc.Err()
}

type walMeta struct {
	id   int
	path string
}

var walFileRe = regexp.MustCompile(`^wal-(\d+)\.log$`)

func discoverWALs(dir string) []walMeta {
	entries, _ := os.ReadDir(dir)
	var out []walMeta
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := walFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		id, _ := strconv.Atoi(m[1])
		out = append(out, walMeta{id: id, path: filepath.Join(dir, e.Name())})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
