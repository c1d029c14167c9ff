package notify

import (
	"fmt"

	"github.com/lucy1234dev/server/internal/logging"
	"github.com/lucy1234dev/server/internal/server/config"
)

// Remote notifier kinds accepted in config.Notifier.
const (
	KindKafka    = "kafka"
	KindSendGrid = "sendgrid"
)

// New always logs codes and adds the remote sink named by cfg.Notifier
// behind a circuit breaker. The close function is never nil.
func New(cfg *config.Config, l logging.Logger) (Notifier, func() error, error) {
	noop := func() error { return nil }
	console := NewLogNotifier(l)

	switch cfg.Notifier {
	case "":
		return console, noop, nil

	case KindKafka:
		if len(cfg.KafkaBrokers) == 0 || cfg.KafkaTopic == "" {
			return nil, noop, fmt.Errorf("kafka notifier needs brokers and a topic")
		}
		k := NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaTopic)
		b := NewBreaker(KindKafka, k, cfg.BreakerMaxFailures, cfg.BreakerTimeout, l)
		return Multi{console, b}, k.Close, nil

	case KindSendGrid:
		if cfg.SendGridAPIKey == "" {
			return nil, noop, fmt.Errorf("sendgrid notifier needs an API key")
		}
		s := NewSendGridNotifier(cfg.SendGridAPIKey, cfg.SendGridFromName, cfg.SendGridFrom)
		b := NewBreaker(KindSendGrid, s, cfg.BreakerMaxFailures, cfg.BreakerTimeout, l)
		return Multi{console, b}, noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown notifier %q", cfg.Notifier)
	}
}
