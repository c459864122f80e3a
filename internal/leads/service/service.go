// Package service implements the leads bounded context's business logic.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/headuck/gophonelite/internal/leads/repository"
	"github.com/headuck/gophonelite/internal/leads/transport"
	"github.com/headuck/gophonelite/platform/phone"
	"github.com/headuck/gophonelite/platform/sanitize"
)

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidPhone  = errors.New("consumer phone number is not valid")
)

// Notifier reaches an intaken lead over whichever channel its contact
// details support. Satisfied by *notification.Service; kept as a small
// interface here so this package does not depend on notification's
// channel wiring.
type Notifier interface {
	Notify(ctx context.Context, phoneNumber, emailAddress, subject, message string) error
}

// LeadRepository is the subset of persistence this service depends on,
// satisfied by *repository.Repository. Depending on the interface rather
// than the concrete pgx-backed type lets Create/GetByID be unit tested
// against an in-memory fake.
type LeadRepository interface {
	Create(ctx context.Context, params repository.CreateLeadParams) (repository.Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Lead, error)
}

var _ LeadRepository = (*repository.Repository)(nil)

type Service struct {
	repo     LeadRepository
	notifier Notifier
}

func New(repo LeadRepository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create normalizes and classifies the lead's phone number before
// persisting it. A phone number that does not parse to a valid number is
// rejected outright: unlike the original CRM, this bounded context exists
// specifically to demonstrate the engine gatekeeping intake.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	if !phone.IsValid(req.ConsumerPhone) {
		return transport.LeadResponse{}, ErrInvalidPhone
	}
	normalized := phone.NormalizeE164(req.ConsumerPhone)

	params := repository.CreateLeadParams{
		ConsumerName:    sanitize.Text(req.ConsumerName),
		ConsumerPhone:   normalized,
		PhoneNumberType: phone.NumberType(normalized),
		PhoneRegion:     phone.RegionOf(normalized),
	}
	if req.ConsumerEmail != "" {
		params.ConsumerEmail = &req.ConsumerEmail
	}

	lead, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	if s.notifier != nil {
		email := ""
		if lead.ConsumerEmail != nil {
			email = *lead.ConsumerEmail
		}
		// Best-effort: a failed intake notification should not fail lead
		// creation, which has already been persisted.
		_ = s.notifier.Notify(ctx, lead.ConsumerPhone, email,
			"New lead received", "A new lead from "+lead.ConsumerName+" was just captured.")
	}

	return toResponse(lead), nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.LeadResponse{}, ErrLeadNotFound
	}
	if err != nil {
		return transport.LeadResponse{}, err
	}
	return toResponse(lead), nil
}

func toResponse(lead repository.Lead) transport.LeadResponse {
	resp := transport.LeadResponse{
		ID:              lead.ID,
		ConsumerName:    lead.ConsumerName,
		ConsumerPhone:   lead.ConsumerPhone,
		PhoneNumberType: lead.PhoneNumberType,
		PhoneRegion:     lead.PhoneRegion,
		CreatedAt:       lead.CreatedAt,
	}
	if lead.ConsumerEmail != nil {
		resp.ConsumerEmail = *lead.ConsumerEmail
	}
	return resp
}
