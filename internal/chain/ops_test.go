package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloomchain/bloomchaindb/internal/chainerr"
	"github.com/bloomchain/bloomchaindb/internal/store/memstore"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	eng, err := memstore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close() })
	return New(eng)
}

func TestReserveThenRejectDuplicateReserve(t *testing.T) {
	require := require.New(t)
	s := newTestStore(t)

	require.NoError(s.Reserve([]byte("k"), 100, 0.01, 2))
	err := s.Reserve([]byte("k"), 100, 0.01, 2)
	require.ErrorIs(err, chainerr.ErrAlreadyExists)
}

func TestReserveRejectsInvalidArguments(t *testing.T) {
	require := require.New(t)
	s := newTestStore(t)

	require.ErrorIs(s.Reserve([]byte("k"), 0, 0.01, 2), chainerr.ErrInvalidArgument)
	require.ErrorIs(s.Reserve([]byte("k"), 100, 0, 2), chainerr.ErrInvalidArgument)
	require.ErrorIs(s.Reserve([]byte("k"), 100, 1, 2), chainerr.ErrInvalidArgument)
}

func TestAutoCreateOnAdd(t *testing.T) {
	require := require.New(t)
	s := newTestStore(t)

	results, err := s.MAdd([]byte("k"), [][]byte{[]byte("a"), []byte("b"), []byte("a")})
	require.NoError(err)
	require.Equal([]AddResult{Ok, Ok, Exists}, results)

	info, err := s.Info([]byte("k"))
	require.NoError(err)
	require.EqualValues(2, info.Size)
	require.EqualValues(1, info.NFilters)
	require.EqualValues(DefaultBaseCapacity, info.Capacity)
}

func TestChainGrowthOnScalingFilter(t *testing.T) {
	require := require.New(t)
	s := newTestStore(t)

	require.NoError(s.Reserve([]byte("k"), 2, 0.01, 2))
	results, err := s.MAdd([]byte("k"), [][]byte{[]byte("x"), []byte("y"), []byte("z")})
	require.NoError(err)
	require.Equal([]AddResult{Ok, Ok, Ok}, results)

	info, err := s.Info([]byte("k"))
	require.NoError(err)
	require.EqualValues(2, info.NFilters)
	require.EqualValues(3, info.Size)
	require.EqualValues(2+4, info.Capacity)
}

func TestNonScalingRejectsOverflow(t *testing.T) {
	require := require.New(t)
	s := newTestStore(t)

	require.NoError(s.Reserve([]byte("k"), 2, 0.01, 0))
	results, err := s.MAdd([]byte("k"), [][]byte{[]byte("x"), []byte("y"), []byte("z")})
	require.NoError(err)
	require.Equal([]AddResult{Ok, Ok, Full}, results)

	info, err := s.Info([]byte("k"))
	require.NoError(err)
	require.EqualValues(2, info.Size)
	require.EqualValues(1, info.NFilters)
}

func TestProbeAcrossFilters(t *testing.T) {
	require := require.New(t)
	s := newTestStore(t)

	require.NoError(s.Reserve([]byte("k"), 2, 0.01, 2))
	_, err := s.MAdd([]byte("k"), [][]byte{[]byte("x"), []byte("y"), []byte("z")})
	require.NoError(err)

	results, err := s.MExists([]byte("k"), [][]byte{[]byte("x"), []byte("y"), []byte("z")})
	require.NoError(err)
	require.Equal([]bool{true, true, true}, results)
}

func TestEmptyMExistsOnMissingKey(t *testing.T) {
	require := require.New(t)
	s := newTestStore(t)

	results, err := s.MExists([]byte("absent"), [][]byte{[]byte("a"), []byte("b")})
	require.NoError(err)
	require.Equal([]bool{false, false}, results)
}

func TestMAddWithAllDuplicatesIssuesNoWrite(t *testing.T) {
	require := require.New(t)
	s := newTestStore(t)

	require.NoError(s.Reserve([]byte("k"), 100, 0.01, 2))
	_, err := s.MAdd([]byte("k"), [][]byte{[]byte("a")})
	require.NoError(err)
	before, err := s.Info([]byte("k"))
	require.NoError(err)

	_, err = s.MAdd([]byte("k"), [][]byte{[]byte("a"), []byte("a")})
	require.NoError(err)
	after, err := s.Info([]byte("k"))
	require.NoError(err)
	require.Equal(before, after)
}

func TestMAddEmptyItemsSucceedsWithNoResults(t *testing.T) {
	require := require.New(t)
	s := newTestStore(t)

	results, err := s.MAdd([]byte("k"), nil)
	require.NoError(err)
	require.Empty(results)

	_, err = s.Info([]byte("k"))
	require.ErrorIs(err, chainerr.ErrNotFound)
}

func TestInfoOnMissingKey(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Info([]byte("absent"))
	require.ErrorIs(t, err, chainerr.ErrNotFound)
}

func TestAddAndExistsSingleItem(t *testing.T) {
	require := require.New(t)
	s := newTestStore(t)

	result, err := s.Add([]byte("k"), []byte("only"))
	require.NoError(err)
	require.Equal(Ok, result)

	found, err := s.Exists([]byte("k"), []byte("only"))
	require.NoError(err)
	require.True(found)

	found, err = s.Exists([]byte("k"), []byte("other"))
	require.NoError(err)
	require.False(found)
}

func TestMAddReadYourWrites(t *testing.T) {
	require := require.New(t)
	s := newTestStore(t)

	for i := 0; i < 300; i++ {
		item := []byte{byte(i), byte(i >> 8)}
		// A distinct item can still probe positive (a false positive), in
		// which case Add reports Exists instead of Ok.
		present, err := s.Exists([]byte("k"), item)
		require.NoError(err)
		want := Ok
		if present {
			want = Exists
		}
		result, err := s.Add([]byte("k"), item)
		require.NoError(err)
		require.Equal(want, result)

		found, err := s.Exists([]byte("k"), item)
		require.NoError(err)
		require.True(found, "item %d must be visible immediately after Add", i)
	}
}
