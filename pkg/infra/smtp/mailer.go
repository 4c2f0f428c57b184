package smtp

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/wneessen/go-mail"

	"github.com/hemanth0525/contribuzz/pkg/domain/model"
	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// Mailer relays feedback submissions to the project inbox over SMTP
type Mailer struct {
	client *mail.Client
	from   string
	to     string
}

// Config holds the SMTP relay settings
type Config struct {
	Host   string
	Port   int
	Secure bool // implicit TLS (465) instead of STARTTLS (587)
	User   string
	Pass   string
	To     string
}

// New creates a mailer from the relay configuration
func New(cfg Config) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Pass),
	}
	if cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create SMTP client", goerr.V("host", cfg.Host))
	}

	return &Mailer{client: client, from: cfg.User, to: cfg.To}, nil
}

// SendFeedback sends one feedback message with both text and HTML bodies
func (m *Mailer) SendFeedback(ctx context.Context, fb *model.Feedback) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat("Contri.buzz Feedback", m.from); err != nil {
		return goerr.Wrap(err, "invalid sender address", goerr.V("from", m.from))
	}
	if err := msg.To(m.to); err != nil {
		return goerr.Wrap(err, "invalid recipient address", goerr.V("to", m.to))
	}
	msg.Subject("New Feedback Submission")
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("Email: %s\n\nFeedback: %s", fb.Email, fb.Feedback))
	msg.AddAlternativeString(mail.TypeTextHTML,
		fmt.Sprintf("<p><strong>Email:</strong> %s</p><p><strong>Feedback:</strong> %s</p>", fb.Email, fb.Feedback))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return goerr.Wrap(err, "failed to send feedback mail", goerr.T(types.TagUpstream))
	}
	return nil
}
