// Package scrape wraps the scraping proxy service. The proxy fetches the
// target page on our behalf; no extraction or HTML parsing happens here.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"realestate_api_backend/platform/config"
	"realestate_api_backend/platform/logger"
)

// Result is the pass-through payload for a proxied fetch.
type Result struct {
	URL        string `json:"url"`
	StatusCode int    `json:"statusCode"`
	Data       string `json:"data"`
}

type Service struct {
	client *http.Client
	cfg    config.ScraperConfig
	log    *logger.Logger
}

func NewService(cfg config.ScraperConfig, log *logger.Logger) *Service {
	return &Service{
		client: &http.Client{Timeout: 30 * time.Second},
		cfg:    cfg,
		log:    log,
	}
}

// Fetch proxies the target URL through the scraping service and returns the
// upstream status and body verbatim.
func (s *Service) Fetch(ctx context.Context, target string) (*Result, error) {
	params := url.Values{}
	params.Set("api_key", s.cfg.GetScraperAPIKey())
	params.Set("url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.GetScraperBaseURL()+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).Info("scraping website", "url", target)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("scraper request failed", "url", target, "error", err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read scraper response: %w", err)
	}

	return &Result{
		URL:        target,
		StatusCode: resp.StatusCode,
		Data:       string(body),
	}, nil
}
