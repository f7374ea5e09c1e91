// Package storetest exercises any store.Engine implementation against one
// shared behavioral contract, so memstore and leveldbstore are proven
// interchangeable instead of independently re-testing the same properties.
package storetest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bloomchain/bloomchaindb/internal/store"
)

// RunEngineContract runs every contract test against an engine freshly
// produced by newEngine. newEngine is called once per subtest so engines
// never leak state between them.
func RunEngineContract(t *testing.T, newEngine func(t *testing.T) store.Engine) {
	t.Run("MetadataNotFound", func(t *testing.T) { testMetadataNotFound(t, newEngine) })
	t.Run("MetadataRoundTrip", func(t *testing.T) { testMetadataRoundTrip(t, newEngine) })
	t.Run("BatchCommitIsAtomicAndVisible", func(t *testing.T) { testBatchCommitVisible(t, newEngine) })
	t.Run("SnapshotIsolatedFromLaterWrites", func(t *testing.T) { testSnapshotIsolation(t, newEngine) })
	t.Run("LockSerializesSameKey", func(t *testing.T) { testLockSerializesSameKey(t, newEngine) })
	t.Run("EncodeInternalKeyIsVersionSensitive", func(t *testing.T) { testInternalKeyVersioning(t, newEngine) })
}

func testMetadataNotFound(t *testing.T, newEngine func(t *testing.T) store.Engine) {
	eng := newEngine(t)
	_, err := eng.GetMetadata([]byte("absent"))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testMetadataRoundTrip(t *testing.T, newEngine func(t *testing.T) store.Engine) {
	require := require.New(t)
	eng := newEngine(t)

	b := eng.NewWriteBatch()
	b.PutMetadata([]byte("k"), []byte("hello"))
	require.NoError(b.Commit())

	v, err := eng.GetMetadata([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("hello"), v)
}

func testBatchCommitVisible(t *testing.T, newEngine func(t *testing.T) store.Engine) {
	require := require.New(t)
	eng := newEngine(t)

	b := eng.NewWriteBatch()
	b.PutLogData([]byte("log entry, ignored by readers"))
	b.PutMetadata([]byte("k"), []byte("meta"))
	b.Put([]byte("blob-key"), []byte("blob-value"))
	require.NoError(b.Commit())

	meta, err := eng.GetMetadata([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("meta"), meta)

	snap := eng.NewSnapshot()
	defer snap.Release()
	v, err := eng.Get(snap, []byte("blob-key"))
	require.NoError(err)
	require.Equal([]byte("blob-value"), v)
}

func testSnapshotIsolation(t *testing.T, newEngine func(t *testing.T) store.Engine) {
	require := require.New(t)
	eng := newEngine(t)

	b := eng.NewWriteBatch()
	b.Put([]byte("k"), []byte("v1"))
	require.NoError(b.Commit())

	snap := eng.NewSnapshot()
	defer snap.Release()

	b2 := eng.NewWriteBatch()
	b2.Put([]byte("k"), []byte("v2"))
	require.NoError(b2.Commit())

	v, err := eng.Get(snap, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("v1"), v, "snapshot must not observe a write committed after it was taken")

	liveSnap := eng.NewSnapshot()
	defer liveSnap.Release()
	v, err = eng.Get(liveSnap, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("v2"), v)
}

func testLockSerializesSameKey(t *testing.T, newEngine func(t *testing.T) store.Engine) {
	eng := newEngine(t)

	unlock := eng.Lock([]byte("k"))

	acquired := make(chan struct{})
	go func() {
		other := eng.Lock([]byte("k"))
		close(acquired)
		other()
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock on the same key acquired while the first lock was still held")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second Lock never acquired after the first was released")
	}
}

func testInternalKeyVersioning(t *testing.T, newEngine func(t *testing.T) store.Engine) {
	require := require.New(t)
	eng := newEngine(t)

	k1 := eng.EncodeInternalKey([]byte("ns"), []byte("sub"), 1)
	k2 := eng.EncodeInternalKey([]byte("ns"), []byte("sub"), 2)
	require.NotEqual(k1, k2, "bumping version must change the physical key so old blobs become unreachable")
}
