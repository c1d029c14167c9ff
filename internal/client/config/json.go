package config

import (
	"encoding/json"
	"os"

	"github.com/lucy1234dev/server/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the current value untouched.
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	AccountsMount  string         `json:"accounts_mount"`
	ProductsMount  string         `json:"products_mount"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the JSON file at path. An empty path is a
// no-op; read or decode errors panic.
func parseJson(cfg *Config, path string) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.AccountsMount != "" {
		cfg.AccountsMount = jc.AccountsMount
	}
	if jc.ProductsMount != "" {
		cfg.ProductsMount = jc.ProductsMount
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
