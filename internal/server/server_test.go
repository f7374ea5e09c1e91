package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bloomchain/bloomchaindb/internal/chain"
	"github.com/bloomchain/bloomchaindb/internal/store/memstore"
	bfproto "github.com/bloomchain/bloomchaindb/proto"
)

func newTestServer(t *testing.T) *BloomFilterServer {
	t.Helper()
	eng, err := memstore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close() })

	s, err := New(chain.New(eng), zap.NewNop(), "bloomfilter_test", prometheus.NewRegistry(), nil)
	require.NoError(t, err)
	return s
}

func TestReserveAddExistsRoundTrip(t *testing.T) {
	require := require.New(t)
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.Reserve(ctx, &bfproto.ReserveRequest{Key: []byte("k"), Capacity: 100, ErrorRate: 0.01})
	require.NoError(err)

	addResp, err := s.Add(ctx, &bfproto.AddRequest{Key: []byte("k"), Item: []byte("x")})
	require.NoError(err)
	require.Equal(bfproto.AddResult_ADD_RESULT_OK, addResp.Result)

	existsResp, err := s.Exists(ctx, &bfproto.ExistsRequest{Key: []byte("k"), Item: []byte("x")})
	require.NoError(err)
	require.True(existsResp.Exists)

	existsResp, err = s.Exists(ctx, &bfproto.ExistsRequest{Key: []byte("k"), Item: []byte("y")})
	require.NoError(err)
	require.False(existsResp.Exists)
}

func TestReserveWithExplicitExpansion(t *testing.T) {
	require := require.New(t)
	s := newTestServer(t)
	ctx := context.Background()

	expansion := uint32(0)
	_, err := s.Reserve(ctx, &bfproto.ReserveRequest{Key: []byte("k"), Capacity: 1, ErrorRate: 0.01, Expansion: &expansion})
	require.NoError(err)

	resp, err := s.MAdd(ctx, &bfproto.MAddRequest{Key: []byte("k"), Items: [][]byte{[]byte("a"), []byte("b")}})
	require.NoError(err)
	require.Equal(bfproto.AddResult_ADD_RESULT_OK, resp.Results[0])
	require.Equal(bfproto.AddResult_ADD_RESULT_FULL, resp.Results[1])
}

func TestDuplicateReserveReturnsAlreadyExistsStatus(t *testing.T) {
	require := require.New(t)
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.Reserve(ctx, &bfproto.ReserveRequest{Key: []byte("k"), Capacity: 100, ErrorRate: 0.01})
	require.NoError(err)

	_, err = s.Reserve(ctx, &bfproto.ReserveRequest{Key: []byte("k"), Capacity: 100, ErrorRate: 0.01})
	require.Error(err)
	require.Equal(codes.AlreadyExists, status.Code(err))
}

func TestInfoOnMissingKeyReturnsNotFoundStatus(t *testing.T) {
	require := require.New(t)
	s := newTestServer(t)

	_, err := s.Info(context.Background(), &bfproto.InfoRequest{Key: []byte("absent")})
	require.Error(err)
	require.Equal(codes.NotFound, status.Code(err))
}

func TestMExistsOnMissingKeyReturnsAllFalseNotError(t *testing.T) {
	require := require.New(t)
	s := newTestServer(t)

	resp, err := s.MExists(context.Background(), &bfproto.MExistsRequest{Key: []byte("absent"), Items: [][]byte{[]byte("a")}})
	require.NoError(err)
	require.Equal([]bool{false}, resp.Exists)
}

func TestInfoReportsChainShape(t *testing.T) {
	require := require.New(t)
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.Reserve(ctx, &bfproto.ReserveRequest{Key: []byte("k"), Capacity: 2, ErrorRate: 0.01})
	require.NoError(err)

	_, err = s.MAdd(ctx, &bfproto.MAddRequest{Key: []byte("k"), Items: [][]byte{[]byte("a"), []byte("b"), []byte("c")}})
	require.NoError(err)

	resp, err := s.Info(ctx, &bfproto.InfoRequest{Key: []byte("k")})
	require.NoError(err)
	require.EqualValues(2, resp.NFilters)
	require.EqualValues(3, resp.Size)
}

func TestHTTPReserveUsesConfiguredDefaults(t *testing.T) {
	require := require.New(t)
	eng, err := memstore.Open(t.TempDir())
	require.NoError(err)
	t.Cleanup(func() { _ = eng.Close() })

	cfg := DefaultConfig().WithDefaultCapacity(7).WithDefaultErrorRate(0.05).WithDefaultExpansion(3)
	s, err := New(chain.New(eng), zap.NewNop(), "bloomfilter_test_http", prometheus.NewRegistry(), cfg)
	require.NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/bf/reserve?key=k", nil)
	w := httptest.NewRecorder()
	s.DebugMux().ServeHTTP(w, req)
	require.Equal(http.StatusOK, w.Code)

	result, err := s.store.Add([]byte("k"), []byte("x"))
	require.NoError(err)
	require.Equal(chain.Ok, result)

	info, err := s.store.Info([]byte("k"))
	require.NoError(err)
	require.EqualValues(7, info.Capacity)
	require.EqualValues(3, info.Expansion)
}
