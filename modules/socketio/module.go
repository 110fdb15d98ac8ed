// Package socketio provides a displayer that emits messages and records as
// socket.io events to a remote endpoint.
package socketio

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/specialistvlad/fanoutgo/internal/ctxlog"
	"github.com/specialistvlad/fanoutgo/internal/record"
	"github.com/specialistvlad/fanoutgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the socketio displayer.
type Input struct {
	URL                string `hcl:"url"`
	Namespace          string `hcl:"namespace,optional"`
	MessageEvent       string `hcl:"message_event,optional"`
	RecordEvent        string `hcl:"record_event,optional"`
	Timeout            string `hcl:"timeout,optional"`
	InsecureSkipVerify bool   `hcl:"insecure_skip_verify,optional"`
}

// Displayer emits events over a short-lived socket.io connection per call.
type Displayer struct {
	baseURL      string
	path         string
	namespace    string
	messageEvent string
	recordEvent  string
	timeout      time.Duration
	insecure     bool
}

// New builds a socketio displayer. The url argument is required; events
// default to "message" and "record", the timeout to 10s.
func New(input *Input) (*Displayer, error) {
	if input.URL == "" {
		return nil, fmt.Errorf("socketio displayer requires a non-empty 'url' argument")
	}
	parsedURL, err := url.Parse(input.URL)
	if err != nil {
		return nil, fmt.Errorf("socketio displayer: failed to parse URL: %w", err)
	}

	timeout := 10 * time.Second
	if input.Timeout != "" {
		parsed, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return nil, fmt.Errorf("socketio displayer: invalid timeout %q: %w", input.Timeout, err)
		}
		timeout = parsed
	}

	messageEvent := input.MessageEvent
	if messageEvent == "" {
		messageEvent = "message"
	}
	recordEvent := input.RecordEvent
	if recordEvent == "" {
		recordEvent = "record"
	}

	return &Displayer{
		baseURL:      fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host),
		path:         parsedURL.Path,
		namespace:    input.Namespace,
		messageEvent: messageEvent,
		recordEvent:  recordEvent,
		timeout:      timeout,
		insecure:     input.InsecureSkipVerify,
	}, nil
}

// DisplayMessage emits the message event.
func (d *Displayer) DisplayMessage(ctx context.Context, msg string) error {
	return d.emit(ctx, d.messageEvent, map[string]any{"message": msg})
}

// ShowRecord emits the record event with the record's full contents.
func (d *Displayer) ShowRecord(ctx context.Context, rec *record.Record) error {
	return d.emit(ctx, d.recordEvent, map[string]any{
		"tag":    rec.Tag,
		"label":  rec.Label,
		"rows":   rec.Grid.Rows(),
		"cols":   rec.Grid.Cols(),
		"values": rec.Grid.Values(),
	})
}

// emit connects, delivers one event, and disconnects. Each delivery is
// independent; a failed connection never leaves state behind.
func (d *Displayer) emit(ctx context.Context, event string, payload map[string]any) error {
	logger := ctxlog.FromContext(ctx).With("displayer", "socketio", "url", d.baseURL, "event", event)
	logger.Debug("Delivery started")
	defer logger.Debug("Delivery finished")

	done := make(chan error, 1)
	opCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	opts := socket.DefaultOptions()
	opts.SetPath(d.path)
	if d.insecure {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(d.baseURL, opts)
	io := manager.Socket(d.namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		logger.Debug("Connected, emitting event", "sid", io.Id())
		io.Emit(event, payload)
		done <- nil
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if err, ok := errs[0].(error); ok {
			done <- err
			return
		}
		done <- fmt.Errorf("connect error: %v", errs[0])
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		return fmt.Errorf("timed out connecting to %s", d.baseURL)
	case err := <-done:
		if err != nil {
			return fmt.Errorf("socketio delivery failed: %w", err)
		}
		return nil
	}
}

// Register registers the displayer type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterDisplayerType("socketio", &registry.RegisteredDisplayer{
		NewInput: func() any { return new(Input) },
		Build: func(ctx context.Context, deps *registry.BuildDeps, input any) (registry.Displayer, error) {
			return New(input.(*Input))
		},
	})
}
