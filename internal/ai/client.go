// Package ai wraps the Gemini text-generation API behind the narrow
// completion surface the rest of the application needs.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"realestate_api_backend/internal/analysis/transport"
	"realestate_api_backend/platform/config"
	"realestate_api_backend/platform/logger"

	genai "google.golang.org/genai"
)

// ErrEmptyCompletion is returned when the model produced no candidates.
var ErrEmptyCompletion = errors.New("ai: empty completion from model")

// ErrNotConfigured is returned by the Unconfigured stand-in used when no API
// key is present. Callers degrade on it like on any other failure.
var ErrNotConfigured = errors.New("ai: client not configured")

// Narrative is a generated property analysis plus generation metadata.
type Narrative struct {
	Analysis string `json:"analysis"`
	Model    string `json:"model"`
	Tokens   int32  `json:"tokens"`
}

// Client is a thin wrapper around the official genai client.
type Client struct {
	cli   *genai.Client
	model string
	log   *logger.Logger
}

func NewClient(ctx context.Context, cfg config.AIConfig, log *logger.Logger) (*Client, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GetGeminiAPIKey(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Client{cli: cli, model: cfg.GetGeminiModel(), log: log}, nil
}

// PropertyAnalysis sends the assembled analysis prompt and returns the
// narrative with model and token accounting.
func (c *Client) PropertyAnalysis(ctx context.Context, prompt string) (*Narrative, error) {
	resp, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	narrative := &Narrative{
		Analysis: strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text),
		Model:    c.model,
	}
	if resp.UsageMetadata != nil {
		narrative.Tokens = resp.UsageMetadata.TotalTokenCount
	}
	return narrative, nil
}

// PropertyDescription generates a listing description for a property.
func (c *Client) PropertyDescription(ctx context.Context, property *transport.PropertyRecord) (string, error) {
	var b strings.Builder
	b.WriteString("Write a compelling real estate listing description for the following property:\n\n")
	fmt.Fprintf(&b, "Address: %s, %s, %s %s\n", property.Address.Street, property.Address.City, property.Address.State, property.Address.Zip)
	if property.Bedrooms != nil {
		fmt.Fprintf(&b, "Bedrooms: %s\n", formatNumber(*property.Bedrooms))
	}
	if property.Bathrooms != nil {
		fmt.Fprintf(&b, "Bathrooms: %s\n", formatNumber(*property.Bathrooms))
	}
	if property.SquareFootage != nil {
		fmt.Fprintf(&b, "Square Footage: %s\n", formatNumber(*property.SquareFootage))
	}
	if property.YearBuilt != nil {
		fmt.Fprintf(&b, "Year Built: %s\n", formatNumber(*property.YearBuilt))
	}
	if property.PropertyType != "" {
		fmt.Fprintf(&b, "Property Type: %s\n", property.PropertyType)
	}
	b.WriteString("\nWrite in a professional, engaging style that highlights the property's features and selling points.\n")

	resp, err := c.generate(ctx, b.String())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}

// formatNumber renders a figure in plain decimal notation, never scientific.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Chat answers a free-form user prompt in the voice of a real estate
// assistant.
func (c *Client) Chat(ctx context.Context, userPrompt string) (string, error) {
	resp, err := c.generate(ctx, "Real estate professional assistant: "+userPrompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}

func (c *Client) generate(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	resp, err := c.cli.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		nil,
	)
	if err != nil {
		c.log.Error("generation request failed", "model", c.model, "error", err)
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyCompletion
	}
	return resp, nil
}

// Unconfigured satisfies the same surface as Client but fails every call.
// It is wired in when no API key is configured so dependent endpoints
// degrade instead of panicking.
type Unconfigured struct{}

func (Unconfigured) PropertyAnalysis(context.Context, string) (*Narrative, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) PropertyDescription(context.Context, *transport.PropertyRecord) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) Chat(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
