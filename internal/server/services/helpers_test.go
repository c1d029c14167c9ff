package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lucy1234dev/server/internal/logging"
	"github.com/lucy1234dev/server/internal/server/config"
	"github.com/lucy1234dev/server/internal/server/store"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type sent struct{ email, code string }

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sent
	err  error
}

func (r *recordingNotifier) Notify(_ context.Context, email, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sent{email, code})
	return r.err
}

func (r *recordingNotifier) last(t *testing.T) sent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		t.Fatal("no code was sent")
	}
	return r.sent[len(r.sent)-1]
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestAccountService(t *testing.T) (*AccountService, *recordingNotifier, *fakeClock, store.Backend) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	backend, err := store.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	n := &recordingNotifier{}
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	s := NewAccountService(backend, n, nopLogger{}, cfg)
	s.now = clock.Now
	return s, n, clock, backend
}
