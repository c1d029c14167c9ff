package notify

import (
	"context"
	"time"

	"github.com/lucy1234dev/server/internal/logging"
	"github.com/sony/gobreaker"
)

// Breaker stops calling a failing remote notifier for a while once it has
// failed maxFailures times in a row. While open, Notify returns
// gobreaker.ErrOpenState immediately.
type Breaker struct {
	next Notifier
	cb   *gobreaker.CircuitBreaker
}

func NewBreaker(name string, next Notifier, maxFailures int, timeout time.Duration, l logging.Logger) *Breaker {
	if maxFailures < 1 {
		maxFailures = 1
	}
	logger := l.With("module", "notify", "breaker", name)

	st := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(maxFailures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(context.Background(), "circuit breaker state", "from", from.String(), "to", to.String())
		},
	}

	return &Breaker{next: next, cb: gobreaker.NewCircuitBreaker(st)}
}

func (b *Breaker) Notify(ctx context.Context, email, code string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Notify(ctx, email, code)
	})
	return err
}

func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}
