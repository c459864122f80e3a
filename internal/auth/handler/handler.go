// Package handler exposes the auth bounded context over HTTP.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/headuck/gophonelite/internal/auth/service"
	"github.com/headuck/gophonelite/internal/auth/transport"
	"github.com/headuck/gophonelite/platform/httpkit"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sign-in", h.SignIn)
}

func (h *Handler) SignIn(c *gin.Context) {
	var req transport.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	token, err := h.svc.SignIn(req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		httpkit.Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "failed to sign in", nil)
		return
	}

	httpkit.OK(c, transport.SignInResponse{AccessToken: token, TokenType: "Bearer"})
}
