// Package notify delivers issued OTP codes out of band: to the operator log,
// to a Kafka topic or by e-mail.
package notify

import (
	"context"
	"errors"
)

// Notifier delivers code to the owner of email.
type Notifier interface {
	Notify(ctx context.Context, email, code string) error
}

// Multi sends to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, email, code string) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, email, code); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
