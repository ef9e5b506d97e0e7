package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"numberfacts/internal/logger"
)

const (
	// maxFactBytes caps a response body; facts are a sentence or two.
	maxFactBytes = 64 << 10

	userAgent = "numberfacts/1.0"
)

// StatusError reports a non-2xx answer from the facts API.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// FactsService fetches plain-text trivia from the Numbers API.
type FactsService struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

// NewFactsService builds a service for baseURL. A nil client gets one with
// the given timeout.
func NewFactsService(baseURL string, client *http.Client, timeout time.Duration, log logger.Logger) *FactsService {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &FactsService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  log,
	}
}

// NumberFact returns the trivia sentence for number. The input is forwarded
// as typed.
func (s *FactsService) NumberFact(ctx context.Context, number string) (string, error) {
	return s.get(ctx, url.PathEscape(number), "trivia")
}

// DateFact returns the trivia sentence for month/day.
func (s *FactsService) DateFact(ctx context.Context, month, day string) (string, error) {
	return s.get(ctx, url.PathEscape(month), url.PathEscape(day), "date")
}

func (s *FactsService) get(ctx context.Context, segments ...string) (string, error) {
	endpoint := s.baseURL + "/" + strings.Join(segments, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	s.logger.Debug("FactsService", "response received", map[string]interface{}{
		"url":         endpoint,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode, URL: endpoint}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFactBytes))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", endpoint, err)
	}
	return string(body), nil
}
