package leveldbstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloomchain/bloomchaindb/internal/store"
	"github.com/bloomchain/bloomchaindb/internal/store/leveldbstore"
	"github.com/bloomchain/bloomchaindb/internal/store/storetest"
)

func TestLevelDBStoreSatisfiesEngineContract(t *testing.T) {
	storetest.RunEngineContract(t, func(t *testing.T) store.Engine {
		eng, err := leveldbstore.Open(t.TempDir())
		require.NoError(t, err)
		t.Cleanup(func() { _ = eng.Close() })
		return eng
	})
}

func TestLevelDBStoreSurvivesReopen(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	eng, err := leveldbstore.Open(dir)
	require.NoError(err)
	b := eng.NewWriteBatch()
	b.PutMetadata([]byte("k"), []byte("meta"))
	b.Put([]byte("blob"), []byte("value"))
	require.NoError(b.Commit())
	require.NoError(eng.Close())

	reopened, err := leveldbstore.Open(dir)
	require.NoError(err)
	defer reopened.Close()

	meta, err := reopened.GetMetadata([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("meta"), meta)
}
