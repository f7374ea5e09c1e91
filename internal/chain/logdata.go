package chain

import "encoding/binary"

// logDataType is the type tag that leads every log record this package writes.
const logDataType = "BloomFilter"

// encodeLogTokens packs the write-ahead log record each commit carries: the
// length-prefixed type tag logDataType, then a count-prefixed list of
// length-prefixed strings. Replication consumers decode this; this package
// only ever writes one or two fixed tokens ("createBloomChain", "insert")
// and never reads them back.
func encodeLogTokens(tokens ...string) []byte {
	size := 4 + len(logDataType) + 4
	for _, t := range tokens {
		size += 4 + len(t)
	}
	buf := make([]byte, size)
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(logDataType)))
	copy(buf[4:], logDataType)
	off := 4 + len(logDataType)
	binary.BigEndian.PutUint32(buf[off:off+4], uint32(len(tokens)))
	off += 4
	for _, t := range tokens {
		binary.BigEndian.PutUint32(buf[off:off+4], uint32(len(t)))
		off += 4
		copy(buf[off:], t)
		off += len(t)
	}
	return buf
}
