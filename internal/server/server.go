// Package server exposes internal/chain over gRPC and a small HTTP debug
// mux, following the shape of the teacher's router package (a thin
// NodeServer translating proto requests into calls on the storage core)
// generalized from a single-node KV service to the BF.* command surface
// spec.md's section 6 describes.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bloomchain/bloomchaindb/internal/chain"
	"github.com/bloomchain/bloomchaindb/internal/chainerr"
	bfproto "github.com/bloomchain/bloomchaindb/proto"
)

// BloomFilterServer implements proto.BloomFilterServiceServer over a
// chain.Store, the way the teacher's NodeServer implements
// proto.NodeServiceServer over an *lsm.DB.
type BloomFilterServer struct {
	bfproto.UnimplementedBloomFilterServiceServer

	store   *chain.Store
	log     *zap.Logger
	metrics *metrics

	defaultCapacity  uint32
	defaultErrorRate float64
	defaultExpansion uint16
}

// New constructs a BloomFilterServer. registerer receives the server's
// prometheus collectors under namespace. cfg supplies the default chain
// parameters used when a caller omits them; a nil cfg falls back to
// DefaultConfig.
func New(store *chain.Store, log *zap.Logger, namespace string, registerer prometheus.Registerer, cfg *Config) (*BloomFilterServer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	m, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, err
	}
	return &BloomFilterServer{
		store:            store,
		log:              log,
		metrics:          m,
		defaultCapacity:  cfg.DefaultCapacity,
		defaultErrorRate: cfg.DefaultErrorRate,
		defaultExpansion: cfg.DefaultExpansion,
	}, nil
}

func (s *BloomFilterServer) observe(op string, start time.Time, result string) {
	s.metrics.opDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	s.metrics.opsTotal.WithLabelValues(op, result).Inc()
}

// toStatus translates chainerr sentinels into gRPC status codes, the way
// the teacher's NodeServer.Get maps a missing key to codes.NotFound.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, chainerr.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, chainerr.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, chainerr.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, chainerr.ErrCorruptedMetadata), errors.Is(err, chainerr.ErrCorruptedChain):
		return status.Error(codes.DataLoss, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func (s *BloomFilterServer) Reserve(_ context.Context, req *bfproto.ReserveRequest) (*bfproto.ReserveResponse, error) {
	start := time.Now()
	expansion := s.defaultExpansion
	if req.Expansion != nil {
		expansion = uint16(*req.Expansion)
	}

	err := s.store.Reserve(req.Key, req.Capacity, req.ErrorRate, expansion)
	if err != nil {
		s.observe("reserve", start, errKind(err))
		s.log.Warn("reserve failed", zap.ByteString("key", req.Key), zap.Error(err))
		return nil, toStatus(err)
	}
	s.observe("reserve", start, "ok")
	return &bfproto.ReserveResponse{}, nil
}

func (s *BloomFilterServer) Add(ctx context.Context, req *bfproto.AddRequest) (*bfproto.AddResponse, error) {
	resp, err := s.MAdd(ctx, &bfproto.MAddRequest{Key: req.Key, Items: [][]byte{req.Item}})
	if err != nil {
		return nil, err
	}
	return &bfproto.AddResponse{Result: resp.Results[0]}, nil
}

func (s *BloomFilterServer) MAdd(_ context.Context, req *bfproto.MAddRequest) (*bfproto.MAddResponse, error) {
	start := time.Now()
	results, err := s.store.MAdd(req.Key, req.Items)
	if err != nil {
		s.observe("madd", start, errKind(err))
		s.log.Warn("madd failed", zap.ByteString("key", req.Key), zap.Int("items", len(req.Items)), zap.Error(err))
		return nil, toStatus(err)
	}
	s.observe("madd", start, "ok")

	out := make([]bfproto.AddResult, len(results))
	for i, r := range results {
		out[i] = toProtoAddResult(r)
	}
	return &bfproto.MAddResponse{Results: out}, nil
}

func (s *BloomFilterServer) Exists(ctx context.Context, req *bfproto.ExistsRequest) (*bfproto.ExistsResponse, error) {
	resp, err := s.MExists(ctx, &bfproto.MExistsRequest{Key: req.Key, Items: [][]byte{req.Item}})
	if err != nil {
		return nil, err
	}
	return &bfproto.ExistsResponse{Exists: resp.Exists[0]}, nil
}

func (s *BloomFilterServer) MExists(_ context.Context, req *bfproto.MExistsRequest) (*bfproto.MExistsResponse, error) {
	start := time.Now()
	results, err := s.store.MExists(req.Key, req.Items)
	if err != nil {
		s.observe("mexists", start, errKind(err))
		s.log.Warn("mexists failed", zap.ByteString("key", req.Key), zap.Error(err))
		return nil, toStatus(err)
	}
	s.observe("mexists", start, "ok")
	return &bfproto.MExistsResponse{Exists: results}, nil
}

func (s *BloomFilterServer) Info(_ context.Context, req *bfproto.InfoRequest) (*bfproto.InfoResponse, error) {
	start := time.Now()
	info, err := s.store.Info(req.Key)
	if err != nil {
		s.observe("info", start, errKind(err))
		return nil, toStatus(err)
	}
	s.observe("info", start, "ok")
	s.metrics.filtersTotal.Set(float64(info.NFilters))
	return &bfproto.InfoResponse{
		Capacity:   info.Capacity,
		BloomBytes: info.BloomBytes,
		NFilters:   uint32(info.NFilters),
		Size:       info.Size,
		Expansion:  uint32(info.Expansion),
	}, nil
}

func toProtoAddResult(r chain.AddResult) bfproto.AddResult {
	switch r {
	case chain.Exists:
		return bfproto.AddResult_ADD_RESULT_EXISTS
	case chain.Full:
		return bfproto.AddResult_ADD_RESULT_FULL
	default:
		return bfproto.AddResult_ADD_RESULT_OK
	}
}

func errKind(err error) string {
	switch {
	case errors.Is(err, chainerr.ErrNotFound):
		return "not_found"
	case errors.Is(err, chainerr.ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, chainerr.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, chainerr.ErrCorruptedMetadata):
		return "corrupted_metadata"
	case errors.Is(err, chainerr.ErrCorruptedChain):
		return "corrupted_chain"
	default:
		return "io_error"
	}
}
