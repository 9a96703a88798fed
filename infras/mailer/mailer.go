package mailer

import (
	"context"
	"net/http"
	"time"

	"holipass/config"

	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=mailer.go -destination=mocks/mailer_mock.go -package=mocks

// Message is a single outbound mail. Attachment is raw PDF bytes; each
// provider handles its own encoding.
type Message struct {
	To             string
	Subject        string
	HTMLBody       string
	Attachment     []byte
	AttachmentName string
}

// Mailer delivers a message through the configured provider. Delivery is
// best-effort everywhere it is used: a false return is logged by the caller
// and never fails the surrounding operation.
type Mailer interface {
	Send(ctx context.Context, msg Message) bool
}

// New selects the provider by config. An unknown provider name falls back to
// a mailer that drops everything with a warning, so a typo in deployment
// config degrades to no mail rather than a crash loop.
func New(cfg *config.Config) Mailer {
	httpClient := &http.Client{Timeout: time.Duration(cfg.Email.TimeoutSeconds) * time.Second}

	switch cfg.Email.Provider {
	case "resend":
		return &resendMailer{client: httpClient, apiKey: cfg.Email.Resend.APIKey, from: cfg.Email.From}
	case "sendgrid":
		return &sendgridMailer{client: httpClient, apiKey: cfg.Email.SendGrid.APIKey, from: cfg.Email.From}
	case "mailgun":
		return &mailgunMailer{
			client: httpClient,
			apiKey: cfg.Email.Mailgun.APIKey,
			domain: cfg.Email.Mailgun.Domain,
			from:   cfg.Email.From,
		}
	case "smtp":
		return &smtpMailer{
			host:     cfg.Email.SMTP.Host,
			port:     cfg.Email.SMTP.Port,
			username: cfg.Email.SMTP.Username,
			password: cfg.Email.SMTP.Password,
			from:     cfg.Email.From,
			timeout:  time.Duration(cfg.Email.TimeoutSeconds) * time.Second,
		}
	default:
		log.Warn().Str("provider", cfg.Email.Provider).Msg("unknown email provider, outbound mail disabled")

		return &noopMailer{}
	}
}

type noopMailer struct{}

func (*noopMailer) Send(_ context.Context, msg Message) bool {
	log.Warn().Str("to", msg.To).Str("subject", msg.Subject).Msg("dropping email, no provider configured")

	return false
}
