// Package mail implements the Mailer domain service over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"

	"planotes/config"
	"planotes/internal/domain/service"
	"planotes/internal/util"
)

// smtpMailer sends transactional mail through a configured SMTP relay.
// DKIM signing happens at the relay; the selector and key in config are
// deployment inputs, not used in-process.
type smtpMailer struct {
	client  *gomail.Client
	from    string
	baseURL string
	logger  *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration must be provided")
	}
	if cfg.App == nil || cfg.App.BaseURL == "" {
		return nil, errors.New("app base url must be provided")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.SMTP.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTP.Username),
			gomail.WithPassword(cfg.SMTP.Password),
		)
	}

	client, err := gomail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpMailer{
		client:  client,
		from:    cfg.SMTP.From,
		baseURL: cfg.App.BaseURL,
		logger:  logger,
	}, nil
}

// SendMagicLink emails the sign-in URL for the given token.
func (m *smtpMailer) SendMagicLink(ctx context.Context, to, token string, validFor time.Duration) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}

	link := fmt.Sprintf("%s/auth/redeem?token=%s", m.baseURL, url.QueryEscape(token))
	validity := util.FormatDuration(validFor)

	msg.Subject("Sign in to Planotes")
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"Open this link in the browser you requested it from to sign in:\n\n%s\n\nThe link expires in %s. If you did not request it, ignore this email.\n",
		link, validity,
	))
	msg.AddAlternativeString(gomail.TypeTextHTML, fmt.Sprintf(
		`<p>Open this link in the browser you requested it from to sign in:</p><p><a href="%s">Sign in to Planotes</a></p><p>The link expires in %s. If you did not request it, ignore this email.</p>`,
		link, validity,
	))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.ErrorContext(ctx, "magic link delivery failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to send magic link email")
	}

	return nil
}

// Ping verifies the SMTP relay accepts connections.
func (m *smtpMailer) Ping(ctx context.Context) error {
	if err := m.client.DialWithContext(ctx); err != nil {
		return errors.Wrap(err, "smtp relay unreachable")
	}

	return errors.Wrap(m.client.Close(), "failed to close smtp connection")
}
