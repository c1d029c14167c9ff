package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type mailSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridNotifier e-mails the code through the SendGrid API.
type SendGridNotifier struct {
	client mailSender
	from   *mail.Email
}

func NewSendGridNotifier(apiKey, fromName, fromAddr string) *SendGridNotifier {
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromAddr),
	}
}

func (n *SendGridNotifier) Notify(ctx context.Context, email, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	to := mail.NewEmail("", email)
	subject := "Your Flower Shop verification code"
	text := fmt.Sprintf("Your verification code is %s.", code)
	html := fmt.Sprintf("<p>Your verification code is <strong>%s</strong>.</p>", code)

	resp, err := n.client.Send(mail.NewSingleEmail(n.from, subject, to, text, html))
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
