package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8000", c.HTTPAddr)
	assert.Equal(t, ":50051", c.HealthAddrGRPC)
	assert.Equal(t, "/signup", c.AccountsMount)
	assert.Equal(t, "/product", c.ProductsMount)
	assert.Equal(t, "file", c.StoreBackend)
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, "", c.Notifier)
	assert.Equal(t, []string{"127.0.0.1:9092"}, c.KafkaBrokers)
	assert.Equal(t, 300*time.Second, c.OTPResendCooldown)
	assert.Equal(t, time.Duration(0), c.OTPTTL)
	assert.Equal(t, 5, c.BreakerMaxFailures)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want.HTTPAddr, c.HTTPAddr)
	assert.Equal(t, want.StoreBackend, c.StoreBackend)
	assert.Equal(t, want.OTPResendCooldown, c.OTPResendCooldown)
}

func TestLoadConfig_LayersInOrder(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempFile(t, "shop.yaml", "http_addr: \":7000\"\ndata_dir: from-file\nstore_backend: redis\n")
	t.Setenv("SHOP_DATA_DIR", "from-env")

	os.Args = []string{"testbin", "-c", path, "-s", "file"}

	c := LoadConfig()

	assert.Equal(t, ":7000", c.HTTPAddr, "file overrides defaults")
	assert.Equal(t, "from-env", c.DataDir, "env overrides file")
	assert.Equal(t, "file", c.StoreBackend, "flags override file")
}
