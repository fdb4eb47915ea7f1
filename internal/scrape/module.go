package scrape

import (
	"context"
	"net/http"

	apphttp "realestate_api_backend/internal/http"
	"realestate_api_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Exact message clients match on.
const errMissingURL = "Missing ?url="

// Fetcher proxies a URL through the scraping service.
type Fetcher interface {
	Fetch(ctx context.Context, target string) (*Result, error)
}

// Handler exposes the scrape proxy endpoint.
type Handler struct {
	fetcher Fetcher
}

func NewHandler(fetcher Fetcher) *Handler {
	return &Handler{fetcher: fetcher}
}

// Scrape handles GET /api/scrape?url=...
func (h *Handler) Scrape(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		httpkit.Error(c, http.StatusBadRequest, errMissingURL, nil)
		return
	}

	result, err := h.fetcher.Fetch(c.Request.Context(), target)
	if err != nil {
		httpkit.Error(c, http.StatusBadGateway, "scraping service unavailable", nil)
		return
	}

	httpkit.OK(c, result)
}

// Module wires the scrape proxy HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(fetcher Fetcher) *Module {
	return &Module{handler: NewHandler(fetcher)}
}

func (m *Module) Name() string {
	return "scrape"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.GET("/scrape", m.handler.Scrape)
}

var _ apphttp.Module = (*Module)(nil)
