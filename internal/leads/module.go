// Package leads provides the lead-intake bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/headuck/gophonelite/internal/leads/handler"
	"github.com/headuck/gophonelite/internal/leads/repository"
	"github.com/headuck/gophonelite/internal/leads/service"
	apphttp "github.com/headuck/gophonelite/internal/http"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, notifier service.Notifier) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, notifier)
	h := handler.New(svc)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Admin)
}

// GetLeadByID implements the leads.Service public interface for other domains.
func (m *Module) GetLeadByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	resp, err := m.service.GetByID(ctx, id)
	if err != nil {
		return Lead{}, err
	}
	return Lead{ID: resp.ID, ConsumerName: resp.ConsumerName, ConsumerPhone: resp.ConsumerPhone}, nil
}

var _ apphttp.Module = (*Module)(nil)
var _ Service = (*Module)(nil)
