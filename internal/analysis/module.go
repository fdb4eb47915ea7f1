// Package analysis wires the property analysis bounded context: schema
// validation, investment metrics, and the enrichment + narrative pipeline.
package analysis

import (
	"realestate_api_backend/internal/analysis/handler"
	"realestate_api_backend/internal/analysis/service"
	apphttp "realestate_api_backend/internal/http"
	"realestate_api_backend/platform/logger"
	pv "realestate_api_backend/platform/validator"
)

// Module wires the property analysis HTTP routes.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

func NewModule(enricher service.Enricher, narrator service.Narrator, val *pv.Validator, log *logger.Logger) *Module {
	svc := service.New(enricher, narrator, val, log)
	h := handler.New(svc, log)
	return &Module{handler: h, svc: svc}
}

func (m *Module) Name() string {
	return "analysis"
}

// Service exposes the orchestrator for other modules and tests.
func (m *Module) Service() *service.Service {
	return m.svc
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/property-analysis")
	group.POST("", m.handler.Analyze)
	group.GET("/:id", m.handler.GetByID)

	ctx.API.POST("/property-description", m.handler.Describe)
}

var _ apphttp.Module = (*Module)(nil)
