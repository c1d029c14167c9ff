package notify

import (
	"context"

	"github.com/lucy1234dev/server/internal/logging"
)

// LogNotifier writes the code to the operator log. It is the delivery
// channel of development setups.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(l logging.Logger) *LogNotifier {
	return &LogNotifier{logger: l.With("module", "notify")}
}

func (n *LogNotifier) Notify(ctx context.Context, email, code string) error {
	n.logger.Info(ctx, "[OTP] code issued", "email", email, "otp", code)
	return nil
}
