package server

import "github.com/bloomchain/bloomchaindb/internal/chain"

// Config holds bloomchaind's runtime configuration: the storage engine
// choice, listen addresses, and the default chain parameters applied when
// the HTTP debug mux's /bf/reserve endpoint (and a gRPC Reserve that omits
// its optional expansion) doesn't specify its own. It follows the same
// fluent With* builder shape as the teacher's router.ClusterConfig /
// DefaultConfig / With* chain.
type Config struct {
	DataDir  string
	GRPCAddr string
	HTTPAddr string
	Engine   string

	DefaultCapacity  uint32
	DefaultErrorRate float64
	DefaultExpansion uint16
}

// DefaultConfig returns the baseline configuration: an in-process memstore
// engine rooted at ./data, listening on the conventional ports, using
// internal/chain's own package defaults for a bare BF.RESERVE.
func DefaultConfig() *Config {
	return &Config{
		DataDir:          "./data",
		GRPCAddr:         ":50051",
		HTTPAddr:         ":8080",
		Engine:           "memstore",
		DefaultCapacity:  chain.DefaultBaseCapacity,
		DefaultErrorRate: chain.DefaultErrorRate,
		DefaultExpansion: chain.DefaultExpansion,
	}
}

func (c *Config) WithDataDir(dir string) *Config {
	c.DataDir = dir
	return c
}

func (c *Config) WithGRPCAddr(addr string) *Config {
	c.GRPCAddr = addr
	return c
}

func (c *Config) WithHTTPAddr(addr string) *Config {
	c.HTTPAddr = addr
	return c
}

func (c *Config) WithEngine(name string) *Config {
	c.Engine = name
	return c
}

func (c *Config) WithDefaultCapacity(capacity uint32) *Config {
	c.DefaultCapacity = capacity
	return c
}

func (c *Config) WithDefaultErrorRate(rate float64) *Config {
	c.DefaultErrorRate = rate
	return c
}

func (c *Config) WithDefaultExpansion(expansion uint16) *Config {
	c.DefaultExpansion = expansion
	return c
}
