// Package email sends operator-facing notifications over SMTP.
package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/headuck/gophonelite/platform/config"
)

// SMTPSender delivers mail via a direct SMTP connection using go-mail. It
// is deliberately narrow: it sends the plain-text messages the
// notification fallback and the bulk-validation run report need.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSender builds an SMTPSender from configuration, or nil if email
// sending is disabled.
func NewSender(cfg config.EmailConfig) *SMTPSender {
	if !cfg.GetEmailEnabled() {
		return nil
	}
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
	}
}

// SendPlainText delivers a bare plain-text message, used as the fallback
// notification channel for leads whose phone number is not mobile-capable.
func (s *SMTPSender) SendPlainText(ctx context.Context, toEmail, subject, body string) error {
	if s == nil {
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := s.dialClient()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// ValidationSummary is one row of the bulk-validation report.
type ValidationSummary struct {
	Total   int
	Valid   int
	Invalid int
	Errored int
}

// SendBulkValidationReport emails the operator a summary of a bulk
// validation run: how many numbers parsed, how many were valid, and how
// many failed outright.
func (s *SMTPSender) SendBulkValidationReport(ctx context.Context, toEmail, sourceObject string, summary ValidationSummary) error {
	if s == nil {
		return nil
	}

	body := fmt.Sprintf(
		"Bulk validation report for %s\n\nTotal numbers: %d\nValid: %d\nInvalid: %d\nParse errors: %d\n",
		sourceObject, summary.Total, summary.Valid, summary.Invalid, summary.Errored,
	)

	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject("Bulk validation report: " + sourceObject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := s.dialClient()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) dialClient() (*gomail.Client, error) {
	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return client, nil
}
