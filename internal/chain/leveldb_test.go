package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloomchain/bloomchaindb/internal/store/leveldbstore"
)

// TestChainOperationsOnLevelDBBackend proves chain logic is engine-agnostic
// by re-running a representative operation sequence against leveldbstore
// instead of memstore.
func TestChainOperationsOnLevelDBBackend(t *testing.T) {
	require := require.New(t)

	eng, err := leveldbstore.Open(t.TempDir())
	require.NoError(err)
	defer eng.Close()

	s := New(eng)
	require.NoError(s.Reserve([]byte("k"), 2, 0.01, 2))

	results, err := s.MAdd([]byte("k"), [][]byte{[]byte("x"), []byte("y"), []byte("z")})
	require.NoError(err)
	require.Equal([]AddResult{Ok, Ok, Ok}, results)

	info, err := s.Info([]byte("k"))
	require.NoError(err)
	require.EqualValues(2, info.NFilters)
	require.EqualValues(3, info.Size)

	exists, err := s.MExists([]byte("k"), [][]byte{[]byte("x"), []byte("y"), []byte("z"), []byte("q")})
	require.NoError(err)
	require.True(exists[0])
	require.True(exists[1])
	require.True(exists[2])
}
