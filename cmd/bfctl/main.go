// Command bfctl is a thin gRPC client for bloomchaind, with one
// subcommand per BF.* operation.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	bfproto "github.com/bloomchain/bloomchaindb/proto"
)

const (
	addrKey      = "addr"
	keyKey       = "key"
	itemKey      = "item"
	itemsKey     = "items"
	capacityKey  = "capacity"
	errorRateKey = "error-rate"
	expansionKey = "expansion"
)

func addFlags(flags *pflag.FlagSet) {
	flags.String(addrKey, "localhost:50051", "bloomchaind gRPC address")
	flags.String(keyKey, "", "chain key")
	flags.String(itemKey, "", "single item (for add/exists)")
	flags.String(itemsKey, "", "comma-separated items (for madd/mexists)")
	flags.Uint32(capacityKey, 100, "initial capacity (for reserve)")
	flags.Float64(errorRateKey, 0.01, "target false-positive rate (for reserve)")
	flags.Uint32(expansionKey, 2, "expansion factor, 0 disables scaling (for reserve)")
}

type config struct {
	addr      string
	key       string
	item      string
	items     [][]byte
	capacity  uint32
	errorRate float64
	expansion uint32
}

func parseFlags(flags *pflag.FlagSet, args []string) (*config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	addr, err := flags.GetString(addrKey)
	if err != nil {
		return nil, err
	}
	key, err := flags.GetString(keyKey)
	if err != nil {
		return nil, err
	}
	item, err := flags.GetString(itemKey)
	if err != nil {
		return nil, err
	}
	itemsStr, err := flags.GetString(itemsKey)
	if err != nil {
		return nil, err
	}
	capacity, err := flags.GetUint32(capacityKey)
	if err != nil {
		return nil, err
	}
	errorRate, err := flags.GetFloat64(errorRateKey)
	if err != nil {
		return nil, err
	}
	expansion, err := flags.GetUint32(expansionKey)
	if err != nil {
		return nil, err
	}

	return &config{
		addr:      addr,
		key:       key,
		item:      item,
		items:     splitItems(itemsStr),
		capacity:  capacity,
		errorRate: errorRate,
		expansion: expansion,
	}, nil
}

func splitItems(s string) [][]byte {
	if s == "" {
		return nil
	}
	r := csv.NewReader(strings.NewReader(s))
	fields, err := r.Read()
	if err != nil {
		return nil
	}
	out := make([][]byte, len(fields))
	for i, f := range fields {
		out[i] = []byte(f)
	}
	return out
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: bfctl <reserve|add|madd|exists|mexists|info> [flags]")
		os.Exit(1)
	}
	cmd := os.Args[1]

	flags := pflag.NewFlagSet("bfctl", pflag.ExitOnError)
	addFlags(flags)
	cfg, err := parseFlags(flags, os.Args[2:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cmd, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd string, cfg *config) error {
	conn, err := grpc.NewClient(cfg.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial %s: %w", cfg.addr, err)
	}
	defer conn.Close()

	client := bfproto.NewBloomFilterServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cmd {
	case "reserve":
		expansion := cfg.expansion
		_, err := client.Reserve(ctx, &bfproto.ReserveRequest{
			Key:       []byte(cfg.key),
			Capacity:  cfg.capacity,
			ErrorRate: cfg.errorRate,
			Expansion: &expansion,
		})
		if err != nil {
			return err
		}
		fmt.Println("ok")

	case "add":
		resp, err := client.Add(ctx, &bfproto.AddRequest{Key: []byte(cfg.key), Item: []byte(cfg.item)})
		if err != nil {
			return err
		}
		fmt.Println(resp.Result.String())

	case "madd":
		resp, err := client.MAdd(ctx, &bfproto.MAddRequest{Key: []byte(cfg.key), Items: cfg.items})
		if err != nil {
			return err
		}
		results := make([]string, len(resp.Results))
		for i, r := range resp.Results {
			results[i] = r.String()
		}
		fmt.Println(strings.Join(results, ","))

	case "exists":
		resp, err := client.Exists(ctx, &bfproto.ExistsRequest{Key: []byte(cfg.key), Item: []byte(cfg.item)})
		if err != nil {
			return err
		}
		fmt.Println(resp.Exists)

	case "mexists":
		resp, err := client.MExists(ctx, &bfproto.MExistsRequest{Key: []byte(cfg.key), Items: cfg.items})
		if err != nil {
			return err
		}
		results := make([]string, len(resp.Exists))
		for i, e := range resp.Exists {
			results[i] = strconv.FormatBool(e)
		}
		fmt.Println(strings.Join(results, ","))

	case "info":
		resp, err := client.Info(ctx, &bfproto.InfoRequest{Key: []byte(cfg.key)})
		if err != nil {
			return err
		}
		fmt.Printf("capacity=%d bloom_bytes=%d n_filters=%d size=%d expansion=%d\n",
			resp.Capacity, resp.BloomBytes, resp.NFilters, resp.Size, resp.Expansion)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
