// Package service implements the property analysis pipeline: schema
// validation, investment metrics, prompt assembly, and the orchestration of
// the two external collaborators (places enrichment and narrative
// generation).
package service

import (
	"context"
	"fmt"

	"realestate_api_backend/internal/ai"
	"realestate_api_backend/internal/analysis/transport"
	"realestate_api_backend/internal/places"
	"realestate_api_backend/platform/apperr"
	"realestate_api_backend/platform/logger"
	pv "realestate_api_backend/platform/validator"
)

const (
	// Response strings clients match on verbatim.
	msgAnalysisComplete = "Property analysis complete"
	errEnrichmentFailed = "Failed to fetch neighborhood data"
	errNarrativeFailed  = "Failed to generate AI analysis"
)

// Enricher provides neighborhood context for a formatted address. A failed
// lookup comes back as a degraded Result, never an error that crosses this
// boundary.
type Enricher interface {
	PlaceDetails(ctx context.Context, formattedAddress string) places.Result
}

// Narrator generates the analysis narrative and listing descriptions.
type Narrator interface {
	PropertyAnalysis(ctx context.Context, prompt string) (*ai.Narrative, error)
	PropertyDescription(ctx context.Context, property *transport.PropertyRecord) (string, error)
}

// Service orchestrates a single analysis request. It holds no per-request
// state; every request is processed independently.
type Service struct {
	enricher Enricher
	narrator Narrator
	val      *pv.Validator
	log      *logger.Logger
}

func New(enricher Enricher, narrator Narrator, val *pv.Validator, log *logger.Logger) *Service {
	return &Service{
		enricher: enricher,
		narrator: narrator,
		val:      val,
		log:      log,
	}
}

// Validate checks a document against the schema and returns every violation,
// not just the first.
func (s *Service) Validate(doc *transport.RealEstateDocument) []pv.FieldError {
	if err := s.val.Struct(doc); err != nil {
		return pv.FieldErrors(err)
	}
	return nil
}

// Analyze runs the pipeline: validate, enrich, compute metrics, generate the
// narrative, assemble. A validation failure is terminal and skips all
// downstream calls. Failures of either external dependency degrade their
// response section and nothing else; in particular, enrichment failure never
// blocks or alters the metrics.
func (s *Service) Analyze(ctx context.Context, doc *transport.RealEstateDocument) (*transport.AnalysisResponse, []pv.FieldError) {
	if errs := s.Validate(doc); len(errs) > 0 {
		return nil, errs
	}

	log := s.log.WithContext(ctx)
	propertyID := doc.Property.ID

	address := doc.Property.Address
	formattedAddress := fmt.Sprintf("%s, %s, %s %s", address.Street, address.City, address.State, address.Zip)

	enrichment := s.enricher.PlaceDetails(ctx, formattedAddress)
	var enrichmentSection interface{}
	if enrichment.OK() {
		enrichmentSection = enrichment.Data
	} else {
		log.UpstreamFailure("places", propertyID, enrichment.Err)
		enrichmentSection = transport.DegradedSection{Error: errEnrichmentFailed}
	}

	metrics := CalculateInvestmentMetrics(doc)

	// enrichment.Data is nil when degraded; the prompt builder then omits
	// the neighborhood section entirely.
	prompt := BuildAnalysisPrompt(doc, enrichment.Data)

	var narrativeSection interface{}
	if narrative, err := s.narrator.PropertyAnalysis(ctx, prompt); err != nil {
		log.UpstreamFailure("gemini", propertyID, err)
		narrativeSection = transport.DegradedSection{Error: errNarrativeFailed}
	} else {
		narrativeSection = narrative
	}

	return &transport.AnalysisResponse{
		Message:           msgAnalysisComplete,
		Property:          doc.Property,
		EnrichmentData:    enrichmentSection,
		InvestmentMetrics: metrics,
		Narrative:         narrativeSection,
	}, nil
}

// Describe generates a listing description for a property. Unlike the
// analysis narrative this is the endpoint's sole purpose, so a generation
// failure is surfaced as an upstream error instead of a degraded section.
func (s *Service) Describe(ctx context.Context, req *transport.DescriptionRequest) (string, error) {
	if err := s.val.Struct(req); err != nil {
		return "", apperr.Validation("Invalid property data.").WithDetails(pv.FieldErrors(err))
	}

	description, err := s.narrator.PropertyDescription(ctx, req.Property)
	if err != nil {
		s.log.WithContext(ctx).UpstreamFailure("gemini", req.Property.ID, err)
		return "", apperr.Wrap(apperr.KindUpstream, "Failed to generate property description", err)
	}
	return description, nil
}
