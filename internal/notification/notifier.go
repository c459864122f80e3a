// Package notification decides how to reach a lead: WhatsApp when the
// classifier says the number is mobile-capable, email otherwise. It
// carries no template engine or event bus, only the one routing decision.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/headuck/gophonelite/internal/email"
	"github.com/headuck/gophonelite/internal/whatsapp"
	"github.com/headuck/gophonelite/platform/logger"
	"github.com/headuck/gophonelite/platform/phone"
)

// ErrNoChannel is returned when neither WhatsApp nor email can reach the
// lead: the phone number is not mobile-capable and no email was given.
var ErrNoChannel = errors.New("notification: no channel available for lead")

// WhatsAppEnqueuer is the subset of whatsapp.Client this package depends
// on, satisfied by *whatsapp.Client.
type WhatsAppEnqueuer interface {
	Enqueue(ctx context.Context, phoneNumber, message string) error
}

// EmailSender is the subset of email.SMTPSender this package depends on,
// satisfied by *email.SMTPSender.
type EmailSender interface {
	SendPlainText(ctx context.Context, toEmail, subject, body string) error
}

// Service routes a single notification to whichever channel the lead's
// contact details support.
type Service struct {
	whatsapp WhatsAppEnqueuer
	email    EmailSender
	log      *logger.Logger
}

// New builds a Service. Either dependency may be nil if that channel is
// not configured; Notify falls back accordingly.
func New(whatsappClient WhatsAppEnqueuer, emailSender EmailSender, log *logger.Logger) *Service {
	return &Service{whatsapp: whatsappClient, email: emailSender, log: log}
}

// Notify reaches phoneNumber over WhatsApp if it classifies as
// mobile-capable, otherwise falls back to emailAddress if one was given.
// It returns ErrNoChannel if neither channel applies.
func (s *Service) Notify(ctx context.Context, phoneNumber, emailAddress, subject, message string) error {
	if s.whatsapp != nil && isMobileCapable(phoneNumber) {
		if err := s.whatsapp.Enqueue(ctx, phoneNumber, message); err != nil {
			return fmt.Errorf("notification: whatsapp enqueue failed: %w", err)
		}
		return nil
	}

	if s.email != nil && emailAddress != "" {
		if err := s.email.SendPlainText(ctx, emailAddress, subject, message); err != nil {
			return fmt.Errorf("notification: email send failed: %w", err)
		}
		return nil
	}

	if s.log != nil {
		s.log.Warn("no notification channel available", "phone", phoneNumber, "has_email", emailAddress != "")
	}
	return ErrNoChannel
}

func isMobileCapable(phoneNumber string) bool {
	switch phone.NumberType(phoneNumber) {
	case "MOBILE", "FIXED_LINE_OR_MOBILE":
		return true
	default:
		return false
	}
}

var (
	_ WhatsAppEnqueuer = (*whatsapp.Client)(nil)
	_ EmailSender      = (*email.SMTPSender)(nil)
)
