// Package ai implements the client for the external animal health
// classification service. The client fails open: any transport error, timeout,
// or malformed response is absorbed into a synthesized fallback result so the
// scan workflow always receives a well-formed classification.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/farmsight/farm-health-api/internal/api/metrics"
	"github.com/farmsight/farm-health-api/internal/core/domain"
	"github.com/farmsight/farm-health-api/internal/core/ports"
)

const defaultTimeout = 60 * time.Second

const fallbackMessage = "AI service unavailable - using fallback random result"

// Config captures the settings for the classification client.
type Config struct {
	BaseURL string
	Timeout time.Duration // request ceiling; inference backends can be slow
}

// Client calls POST <BaseURL>/analyze with a multipart image payload.
type Client struct {
	baseURL string
	http    *http.Client
	randMu  sync.Mutex // rand.Rand is not safe for concurrent use
	rand    *rand.Rand
	logger  zerolog.Logger
}

// NewClient builds a Client. rng drives fallback synthesis and must be
// non-nil so tests can seed deterministic fallbacks; the client serializes
// all access to it.
func NewClient(cfg Config, rng *rand.Rand, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		rand:    rng,
		logger:  logger,
	}
}

// Classify sends the image to the AI service and returns its assessment. It
// never returns an error: soft failures produce a fallback result instead.
func (c *Client) Classify(ctx context.Context, image ports.ImageUpload) *domain.Classification {
	start := time.Now()
	result, reason := c.analyze(ctx, image)
	if reason == "" {
		metrics.ClassifierRequestDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
		return result
	}

	metrics.ClassifierRequestDuration.WithLabelValues("fallback").Observe(time.Since(start).Seconds())
	metrics.ClassifierFallbackTotal.WithLabelValues(reason).Inc()
	c.logger.Warn().Str("reason", reason).Msg("AI service soft failure, synthesizing fallback result")
	return c.fallback()
}

// analyze performs the upstream call. A non-empty reason marks a soft failure.
func (c *Client) analyze(ctx context.Context, image ports.ImageUpload) (*domain.Classification, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="image"; filename=%q`, image.Filename))
	header.Set("Content-Type", image.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "request_failed"
	}
	if _, err := part.Write(image.Data); err != nil {
		return nil, "request_failed"
	}
	if err := writer.Close(); err != nil {
		return nil, "request_failed"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", body)
	if err != nil {
		return nil, "request_failed"
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "request_failed"
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "bad_status"
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "bad_payload"
	}

	var classification domain.Classification
	if err := json.Unmarshal(data, &classification); err != nil {
		return nil, "bad_payload"
	}
	// The service reports its own errors as 200 with an error body.
	if !domain.ValidResult(classification.Result) {
		return nil, "bad_payload"
	}

	return &classification, ""
}

// fallback synthesizes a plausible result: uniform outcome, confidence drawn
// from [0.6, 1.0). Availability over accuracy.
func (c *Client) fallback() *domain.Classification {
	results := []domain.ScanResult{
		domain.ResultHealthy,
		domain.ResultTreatable,
		domain.ResultUntreatable,
	}

	c.randMu.Lock()
	// Rounding to 3 decimals can land exactly on 1.0 when the draw falls
	// within 0.000125 of the top of the range.
	confidence := math.Round((0.6+c.rand.Float64()*0.4)*1000) / 1000
	result := results[c.rand.Intn(len(results))]
	c.randMu.Unlock()

	return &domain.Classification{
		Result:     result,
		Confidence: confidence,
		AnimalType: "unknown",
		Message:    fallbackMessage,
		ScanID:     time.Now().Unix(),
		HealthAssessment: domain.HealthAssessment{
			Status:       "unknown",
			Confidence:   0.7,
			Observations: "AI service unavailable",
			KeyIssues:    []string{"Service unavailable"},
		},
		Recommendations: domain.Recommendations{
			Treatable:        true,
			Message:          "Please try again later when the AI service is available",
			MonitoringAdvice: "Manual inspection recommended",
		},
	}
}
