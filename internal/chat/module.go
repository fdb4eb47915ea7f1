// Package chat exposes the free-form assistant endpoint backed by the
// text-generation client.
package chat

import (
	"context"
	"net/http"

	apphttp "realestate_api_backend/internal/http"
	"realestate_api_backend/platform/apperr"
	"realestate_api_backend/platform/httpkit"
	"realestate_api_backend/platform/logger"
	"realestate_api_backend/platform/sanitize"

	"github.com/gin-gonic/gin"
)

// Exact message clients match on.
const errMissingPrompt = `Please provide a "prompt" in JSON`

// Completer answers a free-form prompt.
type Completer interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

// Handler exposes the chat endpoint.
type Handler struct {
	completer Completer
	log       *logger.Logger
}

func NewHandler(completer Completer, log *logger.Logger) *Handler {
	return &Handler{completer: completer, log: log}
}

// Chat handles POST /api/chat.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		httpkit.Error(c, http.StatusBadRequest, errMissingPrompt, nil)
		return
	}

	response, err := h.completer.Chat(c.Request.Context(), sanitize.StripHTML(req.Prompt))
	if err != nil {
		h.log.WithContext(c.Request.Context()).UpstreamFailure("gemini", "", err)
		httpkit.HandleError(c, apperr.Wrap(apperr.KindUpstream, "Failed to process chat message", err))
		return
	}

	httpkit.OK(c, gin.H{"response": response})
}

// Module wires the chat HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(completer Completer, log *logger.Logger) *Module {
	return &Module{handler: NewHandler(completer, log)}
}

func (m *Module) Name() string {
	return "chat"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/chat", m.handler.Chat)
}

var _ apphttp.Module = (*Module)(nil)
