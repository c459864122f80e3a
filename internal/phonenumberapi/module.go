// Package phonenumberapi provides the phone number bounded context
// module: parsing, validation, classification and region lookups over
// HTTP, backed by the phonenumber engine.
package phonenumberapi

import (
	"github.com/headuck/gophonelite/internal/phonenumberapi/handler"
	"github.com/headuck/gophonelite/internal/phonenumberapi/service"
	apphttp "github.com/headuck/gophonelite/internal/http"
	"github.com/headuck/gophonelite/phonenumber"
	"github.com/headuck/gophonelite/platform/validator"
)

// Module is the phone number bounded context module implementing
// apphttp.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the phone number module around an
// already-initialized engine.
func NewModule(engine *phonenumber.Util, val *validator.Validator) *Module {
	svc := service.New(engine)
	h := handler.New(svc, val)
	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "phonenumberapi"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the number and region routes on the provided
// router context. These read-only lookups need no auth.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	numbers := ctx.V1.Group("/numbers")
	numbers.POST("/parse", m.handler.Parse)
	numbers.GET("/validate", m.handler.Validate)
	numbers.GET("/:e164/type", m.handler.TypeOf)
	numbers.GET("/:e164/qrcode", m.handler.QRCode)

	regions := ctx.V1.Group("/regions")
	regions.GET("", m.handler.Regions)
	regions.GET("/nanpa", m.handler.NANPARegions)
	regions.GET("/:cc", m.handler.RegionsForCallingCode)
}

var _ apphttp.Module = (*Module)(nil)
