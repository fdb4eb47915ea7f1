// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides settings for the pass-through IP rate limiter.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// AIConfig provides settings for the Gemini text-generation client.
type AIConfig interface {
	GetGeminiAPIKey() string
	GetGeminiModel() string
	IsAIEnabled() bool
}

// PlacesConfig provides settings for the places/geocoding enrichment client.
type PlacesConfig interface {
	GetPlacesAPIKey() string
	GetGeocodeBaseURL() string
	GetPlacesBaseURL() string
	GetNearbySearchBaseURL() string
	IsPlacesEnabled() bool
}

// ScraperConfig provides settings for the scraping proxy service.
type ScraperConfig interface {
	GetScraperAPIKey() string
	GetScraperBaseURL() string
	IsScraperEnabled() bool
}

// VoiceConfig provides settings for the voice-call service.
type VoiceConfig interface {
	GetVapiAPIKey() string
	GetVapiAssistantID() string
	GetVapiBaseURL() string
	GetVoiceDefaultRegion() string
	IsVoiceEnabled() bool
}

// Config holds all application configuration loaded from the environment.
// It is constructed once at process start and passed by reference into the
// modules that need it; there is no package-level state.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	RateLimitRPS   float64
	RateLimitBurst int

	GeminiAPIKey string
	GeminiModel  string

	PlacesAPIKey        string
	GeocodeBaseURL      string
	PlacesBaseURL       string
	NearbySearchBaseURL string

	ScraperAPIKey  string
	ScraperBaseURL string

	VapiAPIKey         string
	VapiAssistantID    string
	VapiBaseURL        string
	VoiceDefaultRegion string
}

func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }
func (c *Config) GetGeminiAPIKey() string  { return c.GeminiAPIKey }
func (c *Config) GetGeminiModel() string   { return c.GeminiModel }
func (c *Config) IsAIEnabled() bool        { return c.GeminiAPIKey != "" }
func (c *Config) GetPlacesAPIKey() string  { return c.PlacesAPIKey }
func (c *Config) GetGeocodeBaseURL() string {
	return c.GeocodeBaseURL
}
func (c *Config) GetPlacesBaseURL() string { return c.PlacesBaseURL }
func (c *Config) GetNearbySearchBaseURL() string {
	return c.NearbySearchBaseURL
}
func (c *Config) IsPlacesEnabled() bool      { return c.PlacesAPIKey != "" }
func (c *Config) GetScraperAPIKey() string   { return c.ScraperAPIKey }
func (c *Config) GetScraperBaseURL() string  { return c.ScraperBaseURL }
func (c *Config) IsScraperEnabled() bool     { return c.ScraperAPIKey != "" }
func (c *Config) GetVapiAPIKey() string      { return c.VapiAPIKey }
func (c *Config) GetVapiAssistantID() string { return c.VapiAssistantID }
func (c *Config) GetVapiBaseURL() string     { return c.VapiBaseURL }
func (c *Config) GetVoiceDefaultRegion() string {
	return c.VoiceDefaultRegion
}
func (c *Config) IsVoiceEnabled() bool { return c.VapiAPIKey != "" }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:        corsAllowAll,
		CORSOrigins:         corsOrigins,
		CORSAllowCreds:      strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RateLimitRPS:        mustFloat(getEnv("RATE_LIMIT_RPS", "10")),
		RateLimitBurst:      mustInt(getEnv("RATE_LIMIT_BURST", "20")),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		PlacesAPIKey:        getEnv("GOOGLE_PLACES_API_KEY", ""),
		GeocodeBaseURL:      getEnv("GEOCODE_BASE_URL", "https://maps.googleapis.com/maps/api/geocode/json"),
		PlacesBaseURL:       getEnv("PLACES_BASE_URL", "https://places.googleapis.com/v1/places"),
		NearbySearchBaseURL: getEnv("NEARBY_SEARCH_BASE_URL", "https://maps.googleapis.com/maps/api/place/nearbysearch/json"),
		ScraperAPIKey:       getEnv("SCRAPER_API_KEY", ""),
		ScraperBaseURL:      getEnv("SCRAPER_BASE_URL", "https://api.scraperapi.com"),
		VapiAPIKey:          getEnv("VAPI_PUBLIC_TOKEN", ""),
		VapiAssistantID:     getEnv("VAPI_ASSISTANT_ID", ""),
		VapiBaseURL:         getEnv("VAPI_BASE_URL", "https://api.vapi.ai"),
		VoiceDefaultRegion:  getEnv("VOICE_DEFAULT_REGION", "US"),
	}

	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.RateLimitRPS <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
