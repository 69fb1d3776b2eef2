// Package mail sends the booking message through the EmailJS REST API
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lixenwraith/archive/config"
)

// ErrMissingConfig is returned when a required EmailJS identifier is unset
var ErrMissingConfig = errors.New("emailjs config incomplete")

const tracerName = "github.com/lixenwraith/archive/mail"

// maxErrorBody bounds the response body quoted in errors
const maxErrorBody = 512

type request struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Client posts messages to EmailJS
type Client struct {
	HTTP   *http.Client
	tracer trace.Tracer
}

// NewClient returns a Client using hc, or a default client when nil
func NewClient(hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{HTTP: hc, tracer: otel.Tracer(tracerName)}
}

// Send posts one message; any non-2xx status is an error
func (c *Client) Send(ctx context.Context, cfg config.Mail, params map[string]string) (err error) {
	ctx, span := c.tracer.Start(ctx, "emailjs.send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("emailjs.template_id", cfg.TemplateID)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if !cfg.Complete() {
		return ErrMissingConfig
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(request{
		ServiceID:      cfg.ServiceID,
		TemplateID:     cfg.TemplateID,
		UserID:         cfg.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultEmailJSEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("post emailjs: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("emailjs status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
