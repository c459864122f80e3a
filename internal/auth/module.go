// Package auth provides the trimmed admin auth bounded context module.
// This file defines the module that encapsulates auth setup and route registration.
package auth

import (
	"github.com/headuck/gophonelite/internal/auth/handler"
	"github.com/headuck/gophonelite/internal/auth/service"
	apphttp "github.com/headuck/gophonelite/internal/http"
	"github.com/headuck/gophonelite/platform/config"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the auth module.
func NewModule(cfg config.AuthServiceConfig) *Module {
	svc := service.New(cfg)
	h := handler.New(svc)
	return &Module{handler: h}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)
}

var _ apphttp.Module = (*Module)(nil)
