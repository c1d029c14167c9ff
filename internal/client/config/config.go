package config

import (
	"os"
	"time"

	"github.com/lucy1234dev/server/internal/common"
	"github.com/lucy1234dev/server/internal/flagx"
)

// Config holds runtime settings for the flower shop CLI.
//
// Fields:
//   - ServerURL: base URL of the server's HTTP API.
//   - AccountsMount / ProductsMount: URL prefixes of the two APIs.
//   - RequestTimeout: upper bound for a single HTTP round trip.
type Config struct {
	ServerURL      string
	AccountsMount  string
	ProductsMount  string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000"
	c.AccountsMount = common.AccountsMount
	c.ProductsMount = common.ProductsMount
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, flagx.ConfigFileFromArgs())
	parseFlags(cfg, os.Args[1:])
	return cfg
}
