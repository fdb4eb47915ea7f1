package voice

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	apphttp "realestate_api_backend/internal/http"
	"realestate_api_backend/platform/apperr"
	"realestate_api_backend/platform/httpkit"
	"realestate_api_backend/platform/logger"
	"realestate_api_backend/platform/phone"
)

// Caller initiates calls and reports their status.
type Caller interface {
	InitiateCall(ctx context.Context, phoneNumber, message string) (*CallResponse, error)
	CheckCallStatus(ctx context.Context, callID string) (*CallStatus, error)
}

type callRequest struct {
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}

type Handler struct {
	svc           Caller
	defaultRegion string
	log           *logger.Logger
}

func NewHandler(svc Caller, defaultRegion string, log *logger.Logger) *Handler {
	return &Handler{svc: svc, defaultRegion: defaultRegion, log: log}
}

func (h *Handler) Call(c *gin.Context) {
	var req callRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PhoneNumber == "" {
		httpkit.Error(c, http.StatusBadRequest, "Please provide a phone number", nil)
		return
	}

	normalized, ok := phone.NormalizeE164(req.PhoneNumber, h.defaultRegion)
	if !ok {
		httpkit.Error(c, http.StatusBadRequest, "Invalid phone number", nil)
		return
	}

	resp, err := h.svc.InitiateCall(c.Request.Context(), normalized, req.Message)
	if err != nil {
		h.log.UpstreamFailure("vapi", "", err)
		httpkit.HandleError(c, apperr.Wrap(apperr.KindUpstream, "Failed to initiate call", err))
		return
	}

	httpkit.OK(c, resp)
}

func (h *Handler) Status(c *gin.Context) {
	status, err := h.svc.CheckCallStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.UpstreamFailure("vapi", "", err)
		httpkit.HandleError(c, apperr.Wrap(apperr.KindUpstream, "Failed to fetch call status", err))
		return
	}

	httpkit.OK(c, status)
}

type Module struct {
	handler *Handler
}

func NewModule(svc Caller, defaultRegion string, log *logger.Logger) *Module {
	return &Module{handler: NewHandler(svc, defaultRegion, log)}
}

func (m *Module) Name() string { return "voice" }

func (m *Module) RegisterRoutes(rc *apphttp.RouterContext) {
	rc.API.POST("/call", m.handler.Call)
	rc.API.GET("/call/:id", m.handler.Status)
}

var _ apphttp.Module = (*Module)(nil)
