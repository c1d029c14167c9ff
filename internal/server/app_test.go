package server

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/lucy1234dev/server/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.HTTPAddr = "127.0.0.1:0"
	cfg.HealthAddrGRPC = "127.0.0.1:0"
	cfg.DataDir = t.TempDir()
	return cfg
}

func TestNewApp_FileStore(t *testing.T) {
	logOutput = io.Discard

	app, err := NewApp(testConfig(t))
	require.NoError(t, err)
	assert.NotNil(t, app.http)
	assert.NotNil(t, app.health)
	assert.NoError(t, app.Close())
}

func TestNewApp_NoHealth(t *testing.T) {
	logOutput = io.Discard

	cfg := testConfig(t)
	cfg.HealthAddrGRPC = ""

	app, err := NewApp(cfg)
	require.NoError(t, err)
	assert.Nil(t, app.health)
}

func TestNewApp_BadStore(t *testing.T) {
	logOutput = io.Discard

	cfg := testConfig(t)
	cfg.StoreBackend = "floppy"

	_, err := NewApp(cfg)
	assert.Error(t, err)
}

func TestNewApp_BadNotifier(t *testing.T) {
	logOutput = io.Discard

	cfg := testConfig(t)
	cfg.Notifier = "kafka"
	cfg.KafkaBrokers = nil

	_, err := NewApp(cfg)
	assert.Error(t, err)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	logOutput = io.Discard

	app, err := NewApp(testConfig(t))
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(150 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestApp_RunStopsWhenListenerFails(t *testing.T) {
	logOutput = io.Discard

	cfg := testConfig(t)
	cfg.HTTPAddr = "127.0.0.1:99999"

	app, err := NewApp(cfg)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after listener failure")
	}
}
