// Package repository provides pgx-backed persistence for the leads
// bounded context. This is part of the leads domain and contains only
// data-access logic.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("lead not found")

// Lead is the persisted row shape. ConsumerPhone is always stored already
// normalized to E.164; callers normalize before calling Create.
type Lead struct {
	ID              uuid.UUID
	ConsumerName    string
	ConsumerPhone   string
	ConsumerEmail   *string
	PhoneNumberType string
	PhoneRegion     string
	CreatedAt       time.Time
}

type CreateLeadParams struct {
	ConsumerName    string
	ConsumerPhone   string
	ConsumerEmail   *string
	PhoneNumberType string
	PhoneRegion     string
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, `
		INSERT INTO leads (consumer_name, consumer_phone, consumer_email, phone_number_type, phone_region)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, consumer_name, consumer_phone, consumer_email, phone_number_type, phone_region, created_at
	`, params.ConsumerName, params.ConsumerPhone, params.ConsumerEmail, params.PhoneNumberType, params.PhoneRegion).
		Scan(&lead.ID, &lead.ConsumerName, &lead.ConsumerPhone, &lead.ConsumerEmail, &lead.PhoneNumberType, &lead.PhoneRegion, &lead.CreatedAt)
	if err != nil {
		return Lead{}, err
	}
	return lead, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, `
		SELECT id, consumer_name, consumer_phone, consumer_email, phone_number_type, phone_region, created_at
		FROM leads WHERE id = $1
	`, id).Scan(&lead.ID, &lead.ConsumerName, &lead.ConsumerPhone, &lead.ConsumerEmail, &lead.PhoneNumberType, &lead.PhoneRegion, &lead.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	if err != nil {
		return Lead{}, err
	}
	return lead, nil
}
