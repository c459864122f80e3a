// Package transport holds the request/response DTOs for the leads HTTP surface.
package transport

import (
	"time"

	"github.com/google/uuid"
)

type CreateLeadRequest struct {
	ConsumerName  string `json:"consumer_name" binding:"required"`
	ConsumerPhone string `json:"consumer_phone" binding:"required"`
	ConsumerEmail string `json:"consumer_email,omitempty" binding:"omitempty,email"`
}

type LeadResponse struct {
	ID              uuid.UUID `json:"id"`
	ConsumerName    string    `json:"consumer_name"`
	ConsumerPhone   string    `json:"consumer_phone"`
	ConsumerEmail   string    `json:"consumer_email,omitempty"`
	PhoneNumberType string    `json:"phone_number_type"`
	PhoneRegion     string    `json:"phone_region"`
	CreatedAt       time.Time `json:"created_at"`
}
