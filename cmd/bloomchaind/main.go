// Command bloomchaind runs a standalone BF.* chain server: one gRPC
// listener plus an HTTP debug mux, backed by either the in-process
// memstore engine or a durable leveldbstore engine.
package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/bloomchain/bloomchaindb/internal/chain"
	"github.com/bloomchain/bloomchaindb/internal/server"
	"github.com/bloomchain/bloomchaindb/internal/store"
	"github.com/bloomchain/bloomchaindb/internal/store/leveldbstore"
	"github.com/bloomchain/bloomchaindb/internal/store/memstore"
	bfproto "github.com/bloomchain/bloomchaindb/proto"
)

const (
	dataDirKey          = "data-dir"
	grpcAddrKey         = "grpc-addr"
	httpAddrKey         = "http-addr"
	engineKey           = "engine"
	defaultErrorRateKey = "default-error-rate"
	defaultCapacityKey  = "default-capacity"
	defaultExpansionKey = "default-expansion"
)

func addFlags(flags *pflag.FlagSet) {
	defaults := server.DefaultConfig()
	flags.String(dataDirKey, defaults.DataDir, "directory the storage engine persists to")
	flags.String(grpcAddrKey, defaults.GRPCAddr, "gRPC listen address")
	flags.String(httpAddrKey, defaults.HTTPAddr, "HTTP debug listen address")
	flags.String(engineKey, defaults.Engine, "storage engine: memstore or leveldb")
	flags.Float64(defaultErrorRateKey, defaults.DefaultErrorRate, "default target false-positive rate for a bare BF.RESERVE")
	flags.Uint32(defaultCapacityKey, defaults.DefaultCapacity, "default initial capacity for a bare BF.RESERVE")
	flags.Uint32(defaultExpansionKey, uint32(defaults.DefaultExpansion), "default expansion factor for a bare BF.RESERVE")
}

func parseConfig(flags *pflag.FlagSet) (*server.Config, error) {
	dataDir, err := flags.GetString(dataDirKey)
	if err != nil {
		return nil, err
	}
	grpcAddr, err := flags.GetString(grpcAddrKey)
	if err != nil {
		return nil, err
	}
	httpAddr, err := flags.GetString(httpAddrKey)
	if err != nil {
		return nil, err
	}
	engine, err := flags.GetString(engineKey)
	if err != nil {
		return nil, err
	}
	defaultErrorRate, err := flags.GetFloat64(defaultErrorRateKey)
	if err != nil {
		return nil, err
	}
	defaultCapacity, err := flags.GetUint32(defaultCapacityKey)
	if err != nil {
		return nil, err
	}
	defaultExpansion, err := flags.GetUint32(defaultExpansionKey)
	if err != nil {
		return nil, err
	}

	return server.DefaultConfig().
		WithDataDir(dataDir).
		WithGRPCAddr(grpcAddr).
		WithHTTPAddr(httpAddr).
		WithEngine(engine).
		WithDefaultErrorRate(defaultErrorRate).
		WithDefaultCapacity(defaultCapacity).
		WithDefaultExpansion(uint16(defaultExpansion)), nil
}

func main() {
	flags := pflag.NewFlagSet("bloomchaind", pflag.ExitOnError)
	addFlags(flags)
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := parseConfig(flags)
	if err != nil {
		log.Fatal("parse flags", zap.Error(err))
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("bloomchaind exited with error", zap.Error(err))
	}
}

func run(cfg *server.Config, log *zap.Logger) error {
	engine, err := openEngine(cfg.Engine, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open storage engine %q: %w", cfg.Engine, err)
	}
	defer engine.Close()

	chainStore := chain.New(engine)

	bfServer, err := server.New(chainStore, log, "bloomfilter", prometheus.DefaultRegisterer, cfg)
	if err != nil {
		return fmt.Errorf("construct server: %w", err)
	}

	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen on grpc address %s: %w", cfg.GRPCAddr, err)
	}

	grpcServer := grpc.NewServer()
	bfproto.RegisterBloomFilterServiceServer(grpcServer, bfServer)
	go func() {
		log.Info("grpc server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(listener); err != nil {
			log.Error("grpc server stopped", zap.Error(err))
		}
	}()

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: bfServer.DebugMux(),
	}
	go func() {
		log.Info("http debug server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server stopped", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	grpcServer.GracefulStop()
	return httpServer.Close()
}

func openEngine(name, dataDir string) (store.Engine, error) {
	switch name {
	case "memstore":
		return memstore.Open(dataDir)
	case "leveldb":
		return leveldbstore.Open(dataDir)
	default:
		return nil, fmt.Errorf("unknown engine %q (want memstore or leveldb)", name)
	}
}
