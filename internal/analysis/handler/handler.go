// Package handler exposes the property analysis HTTP endpoints.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"realestate_api_backend/internal/analysis/service"
	"realestate_api_backend/internal/analysis/transport"
	"realestate_api_backend/platform/httpkit"
	"realestate_api_backend/platform/logger"
	pv "realestate_api_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidData = "Invalid real estate data."

type Handler struct {
	svc *service.Service
	log *logger.Logger
}

func New(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Analyze handles POST /api/property-analysis.
func (h *Handler) Analyze(c *gin.Context) {
	var doc transport.RealEstateDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		h.log.ValidationFailed(c.Request.URL.Path, c.ClientIP(), 1)
		c.JSON(http.StatusBadRequest, transport.ValidationRejection{
			Errors:  decodeErrors(err),
			Message: msgInvalidData,
		})
		return
	}

	resp, verrs := h.svc.Analyze(c.Request.Context(), &doc)
	if len(verrs) > 0 {
		h.log.ValidationFailed(c.Request.URL.Path, c.ClientIP(), len(verrs))
		c.JSON(http.StatusBadRequest, transport.ValidationRejection{
			Errors:  verrs,
			Message: msgInvalidData,
		})
		return
	}

	httpkit.OK(c, resp)
}

// GetByID handles GET /api/property-analysis/:id. Analyses are not
// persisted, so this returns a placeholder acknowledgment.
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")
	httpkit.OK(c, gin.H{
		"message": fmt.Sprintf("Property analysis for ID: %s", id),
		"status":  "success",
	})
}

// Describe handles POST /api/property-description.
func (h *Handler) Describe(c *gin.Context) {
	var req transport.DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "request body must be valid JSON", nil)
		return
	}

	description, err := h.svc.Describe(c.Request.Context(), &req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.DescriptionResponse{Description: description})
}

// decodeErrors maps a JSON decode failure onto the structured error shape so
// malformed bodies and schema violations share one response format.
func decodeErrors(err error) []pv.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []pv.FieldError{{
			Path:       typeErr.Field,
			Constraint: "type",
			Message:    fmt.Sprintf("field '%s' must be of type %s", typeErr.Field, typeErr.Type),
		}}
	}
	return []pv.FieldError{{
		Constraint: "json",
		Message:    "request body must be valid JSON",
	}}
}
