// Package emailjs sends templated emails through the EmailJS REST API.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tftrival/site/internal/services/site/contact"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the public EmailJS API origin.
	DefaultBaseURL = "https://api.emailjs.com"
	// SendPath is the send endpoint under the base URL.
	SendPath = "/api/v1.0/email/send"
)

const tracerName = "github.com/tftrival/site/internal/services/site/integration/emailjs"

// Config configures the EmailJS client.
type Config struct {
	BaseURL string
	// AccessToken is the optional private key for accounts that require it.
	AccessToken string
	// Timeout bounds one send. Zero means the caller's context alone.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client posts emails to EmailJS.
type Client struct {
	cfg    Config
	tracer trace.Tracer
}

type sendRequest struct {
	ServiceID      string                 `json:"service_id"`
	TemplateID     string                 `json:"template_id"`
	UserID         string                 `json:"user_id"`
	TemplateParams contact.TemplateParams `json:"template_params"`
	AccessToken    string                 `json:"accessToken,omitempty"`
}

// NewClient builds a client with defaults for empty fields.
func NewClient(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{cfg: cfg, tracer: otel.Tracer(tracerName)}
}

// Send delivers email with a single POST. Any non-2xx answer is an error.
func (c *Client) Send(ctx context.Context, email contact.Email) (err error) {
	ctx, span := c.tracer.Start(ctx, "emailjs.send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("emailjs.service_id", email.ServiceID),
			attribute.String("emailjs.template_id", email.TemplateID),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      email.ServiceID,
		TemplateID:     email.TemplateID,
		UserID:         email.PublicKey,
		TemplateParams: email.Params,
		AccessToken:    strings.TrimSpace(c.cfg.AccessToken),
	})
	if err != nil {
		return fmt.Errorf("marshal send request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+SendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request failed: %w", err)
	}
	defer res.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		payload, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return fmt.Errorf("read send error body: %w", err)
		}
		return fmt.Errorf("send request status %d: %s", res.StatusCode, strings.TrimSpace(string(payload)))
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
	return nil
}
