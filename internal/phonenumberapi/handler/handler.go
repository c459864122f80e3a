// Package handler exposes the phone number bounded context over HTTP.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/headuck/gophonelite/internal/phonenumberapi/service"
	"github.com/headuck/gophonelite/internal/phonenumberapi/transport"
	"github.com/headuck/gophonelite/phonenumber"
	"github.com/headuck/gophonelite/platform/httpkit"
	"github.com/headuck/gophonelite/platform/validator"
)

const (
	msgInvalidRequest = "invalid request"
	msgValidationFail = "validation failed"
)

// Handler handles HTTP requests for phone number parsing and validation.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new phone number handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Parse handles POST /numbers/parse.
func (h *Handler) Parse(c *gin.Context) {
	var req transport.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFail, err.Error())
		return
	}

	result, err := h.svc.Parse(req.Number, req.DefaultRegion, req.KeepRaw)
	if err != nil {
		writeParseError(c, err)
		return
	}
	httpkit.OK(c, toPhoneNumberResponse(result))
}

// Validate handles GET /numbers/validate?number=&region=.
func (h *Handler) Validate(c *gin.Context) {
	number := c.Query("number")
	region := c.Query("region")
	if number == "" {
		httpkit.Error(c, http.StatusBadRequest, "number is required", nil)
		return
	}

	result, err := h.svc.Validate(number, region)
	if err != nil {
		writeParseError(c, err)
		return
	}
	httpkit.OK(c, transport.ValidateResponse{
		Valid:    result.Valid,
		Possible: result.Possible,
		Reason:   result.Reason.String(),
	})
}

// TypeOf handles GET /numbers/:e164/type.
func (h *Handler) TypeOf(c *gin.Context) {
	e164 := c.Param("e164")
	result, err := h.svc.TypeOf(e164)
	if err != nil {
		writeParseError(c, err)
		return
	}
	httpkit.OK(c, transport.NumberTypeResponse{
		Type:         result.Type.String(),
		Geographical: result.Geographical,
		Region:       result.Region,
	})
}

// QRCode handles GET /numbers/:e164/qrcode.
func (h *Handler) QRCode(c *gin.Context) {
	e164 := c.Param("e164")
	result, err := h.svc.TypeOf(e164)
	if err != nil {
		writeParseError(c, err)
		return
	}

	png, err := qrcode.Encode("tel:"+result.E164, qrcode.Medium, 256)
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "failed to render qr code", nil)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// Regions handles GET /regions.
func (h *Handler) Regions(c *gin.Context) {
	httpkit.OK(c, transport.RegionsResponse{Regions: h.svc.SupportedRegions()})
}

// NANPARegions handles GET /regions/nanpa.
func (h *Handler) NANPARegions(c *gin.Context) {
	httpkit.OK(c, transport.RegionsResponse{Regions: h.svc.NANPARegions()})
}

// RegionsForCallingCode handles GET /regions/:cc.
func (h *Handler) RegionsForCallingCode(c *gin.Context) {
	cc, err := strconv.Atoi(c.Param("cc"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "calling code must be numeric", nil)
		return
	}
	httpkit.OK(c, transport.RegionsResponse{Regions: h.svc.RegionsForCallingCode(cc)})
}

func toPhoneNumberResponse(p service.Parsed) transport.PhoneNumberResponse {
	return transport.PhoneNumberResponse{
		CountryCode:         p.Number.CountryCode,
		NationalSignificant: phonenumber.GetNationalSignificantNumber(p.Number),
		ItalianLeadingZero:  p.Number.ItalianLeadingZero,
		CountryCodeSource:   p.Number.CountryCodeSource.String(),
		RawInput:            p.Number.RawInput,
		E164:                p.E164,
		Region:              p.Region,
		Valid:               p.Valid,
		Type:                p.Type.String(),
		Geographical:        p.Geographical,
	}
}

func writeParseError(c *gin.Context, err error) {
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Error(c, http.StatusBadRequest, strings.TrimSpace(err.Error()), nil)
}
