// Package httppost provides a displayer that delivers messages and records
// to an HTTP endpoint as JSON POST requests.
package httppost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/specialistvlad/fanoutgo/internal/ctxlog"
	"github.com/specialistvlad/fanoutgo/internal/record"
	"github.com/specialistvlad/fanoutgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the http_post displayer.
type Input struct {
	URL     string `hcl:"url"`
	Timeout string `hcl:"timeout,optional"`
}

// messageBody is the JSON payload for a displayed message.
type messageBody struct {
	Message string `json:"message"`
}

// recordBody is the JSON payload for a shown record.
type recordBody struct {
	Tag    int       `json:"tag"`
	Label  string    `json:"label"`
	Rows   int       `json:"rows"`
	Cols   int       `json:"cols"`
	Values []float64 `json:"values"`
}

// Displayer POSTs JSON payloads to a fixed URL.
type Displayer struct {
	url    string
	client *http.Client
}

// New builds an http_post displayer. The url argument is required; the
// timeout defaults to 10s.
func New(input *Input) (*Displayer, error) {
	if input.URL == "" {
		return nil, fmt.Errorf("http_post displayer requires a non-empty 'url' argument")
	}
	timeout := 10 * time.Second
	if input.Timeout != "" {
		parsed, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return nil, fmt.Errorf("http_post displayer: invalid timeout %q: %w", input.Timeout, err)
		}
		timeout = parsed
	}
	return &Displayer{url: input.URL, client: &http.Client{Timeout: timeout}}, nil
}

// DisplayMessage POSTs the message payload.
func (d *Displayer) DisplayMessage(ctx context.Context, msg string) error {
	return d.post(ctx, messageBody{Message: msg})
}

// ShowRecord POSTs the record payload.
func (d *Displayer) ShowRecord(ctx context.Context, rec *record.Record) error {
	return d.post(ctx, recordBody{
		Tag:    rec.Tag,
		Label:  rec.Label,
		Rows:   rec.Grid.Rows(),
		Cols:   rec.Grid.Cols(),
		Values: rec.Grid.Values(),
	})
}

func (d *Displayer) post(ctx context.Context, payload any) error {
	logger := ctxlog.FromContext(ctx)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	logger.Debug("Delivered payload over HTTP.", "url", d.url, "status", resp.Status)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("endpoint %s returned %s", d.url, resp.Status)
	}
	return nil
}

// Register registers the displayer type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterDisplayerType("http_post", &registry.RegisteredDisplayer{
		NewInput: func() any { return new(Input) },
		Build: func(ctx context.Context, deps *registry.BuildDeps, input any) (registry.Displayer, error) {
			return New(input.(*Input))
		},
	})
}
