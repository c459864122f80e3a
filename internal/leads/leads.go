// Package leads provides a minimal lead-intake bounded context.
// This file defines the public API of the leads bounded context.
// Only types and interfaces defined here should be imported by other domains.
package leads

import (
	"context"

	"github.com/google/uuid"
)

// Lead represents the minimal lead information that can be shared with other domains.
type Lead struct {
	ID            uuid.UUID
	ConsumerName  string
	ConsumerPhone string
}

// Service defines the public interface for lead operations. Other domains
// should depend on this interface, not on the concrete implementation.
type Service interface {
	GetLeadByID(ctx context.Context, id uuid.UUID) (Lead, error)
}
