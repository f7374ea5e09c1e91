package chain

import "encoding/binary"

// blobSubKey derives the sub_key passed to store.Engine.EncodeInternalKey
// for filter index i: a big-endian u16, per spec.md's key encoding.
func blobSubKey(i uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, i)
	return b
}
