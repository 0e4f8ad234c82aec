package notification

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"retail_assistant/internal/config"
	"retail_assistant/internal/usecase/interfaces"

	"github.com/wneessen/go-mail"
)

const implicitTLSPort = 465

var ErrMissingSMTPCredentials = errors.New("missing EMAIL_USER or EMAIL_APP_PASSWORD")

// SMTPNotifier sends plain-text email through an authenticated SMTP relay.
// Every failure is logged and reported as false.
type SMTPNotifier struct {
	cfg      config.SMTP
	mockMode bool
	sent     atomic.Int64
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(cfg config.SMTP) *SMTPNotifier {
	if cfg.Mock {
		log.Printf("[notify][smtp] mock mode enabled")
		return &SMTPNotifier{cfg: cfg, mockMode: true}
	}
	if cfg.Username == "" || cfg.Password == "" {
		log.Printf("[notify][smtp] credentials not configured, emails will not be sent")
	}
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Send(ctx context.Context, to, subject, body string) bool {
	if n.mockMode {
		n.sent.Add(1)
		log.Printf("[notify][smtp] mock send to=%s subject=%q body_len=%d", to, subject, len(body))
		return true
	}
	if err := n.send(ctx, to, subject, body); err != nil {
		log.Printf("[notify][smtp] send failed to=%s subject=%q err=%v", to, subject, err)
		return false
	}
	log.Printf("[notify][smtp] send success to=%s subject=%q", to, subject)
	return true
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, body string) error {
	if n.cfg.Username == "" || n.cfg.Password == "" {
		return ErrMissingSMTPCredentials
	}

	msg := mail.NewMsg()
	if err := msg.From(n.cfg.Username); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(n.cfg.Host, n.clientOptions()...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func (n *SMTPNotifier) clientOptions() []mail.Option {
	timeout := n.cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
		mail.WithTimeout(timeout),
	}
	if n.cfg.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	return opts
}
