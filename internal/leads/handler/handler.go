// Package handler exposes the leads bounded context over HTTP.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/headuck/gophonelite/internal/leads/service"
	"github.com/headuck/gophonelite/internal/leads/transport"
	"github.com/headuck/gophonelite/platform/httpkit"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/leads", h.Create)
	rg.GET("/leads/:id", h.Get)
}

func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	lead, err := h.svc.Create(c.Request.Context(), req)
	if errors.Is(err, service.ErrInvalidPhone) {
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "failed to create lead", nil)
		return
	}
	httpkit.JSON(c, http.StatusCreated, lead)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid lead id", nil)
		return
	}

	lead, err := h.svc.GetByID(c.Request.Context(), id)
	if errors.Is(err, service.ErrLeadNotFound) {
		httpkit.Error(c, http.StatusNotFound, err.Error(), nil)
		return
	}
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "failed to load lead", nil)
		return
	}
	httpkit.OK(c, lead)
}
