package memstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloomchain/bloomchaindb/internal/store"
	"github.com/bloomchain/bloomchaindb/internal/store/memstore"
	"github.com/bloomchain/bloomchaindb/internal/store/storetest"
)

func TestMemstoreSatisfiesEngineContract(t *testing.T) {
	storetest.RunEngineContract(t, func(t *testing.T) store.Engine {
		eng, err := memstore.Open(t.TempDir())
		require.NoError(t, err)
		t.Cleanup(func() { _ = eng.Close() })
		return eng
	})
}

func TestMemstoreSurvivesReopen(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	eng, err := memstore.Open(dir)
	require.NoError(err)
	b := eng.NewWriteBatch()
	b.PutMetadata([]byte("k"), []byte("meta"))
	b.Put([]byte("blob"), []byte("value"))
	require.NoError(b.Commit())
	require.NoError(eng.Close())

	reopened, err := memstore.Open(dir)
	require.NoError(err)
	defer reopened.Close()

	meta, err := reopened.GetMetadata([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("meta"), meta)

	snap := reopened.NewSnapshot()
	defer snap.Release()
	v, err := reopened.Get(snap, []byte("blob"))
	require.NoError(err)
	require.Equal([]byte("value"), v)
}

func TestMemstoreFlushesPastThreshold(t *testing.T) {
	require := require.New(t)
	eng, err := memstore.Open(t.TempDir())
	require.NoError(err)
	defer eng.Close()

	for i := 0; i < 1000; i++ {
		b := eng.NewWriteBatch()
		b.Put([]byte{byte(i), byte(i >> 8)}, []byte("v"))
		require.NoError(b.Commit())
	}

	snap := eng.NewSnapshot()
	defer snap.Release()
	for i := 0; i < 1000; i++ {
		v, err := eng.Get(snap, []byte{byte(i), byte(i >> 8)})
		require.NoError(err)
		require.Equal([]byte("v"), v)
	}
}
