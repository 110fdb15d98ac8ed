// Package testutil provides shared mock capabilities for tests that need to
// observe the demo driver's traversal without real producers or displayers.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/fanoutgo/internal/record"
)

// CallRecorder collects capability invocations across mocks, preserving the
// order in which they happened.
type CallRecorder struct {
	mu     sync.Mutex
	events []string
}

// Record appends one event.
func (r *CallRecorder) Record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events in order.
func (r *CallRecorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

// ScriptedProducer is a producer returning a fixed message, recording each
// call.
type ScriptedProducer struct {
	Name     string
	Message  string
	Err      error
	Recorder *CallRecorder
}

// GetMessage implements registry.Producer.
func (p *ScriptedProducer) GetMessage(ctx context.Context) (string, error) {
	if p.Recorder != nil {
		p.Recorder.Record("produce:" + p.Name)
	}
	return p.Message, p.Err
}

// RecordingDisplayer records every message and record it receives.
type RecordingDisplayer struct {
	Name       string
	Recorder   *CallRecorder
	DisplayErr error
	ShowErr    error

	mu       sync.Mutex
	Messages []string
	Records  []*record.Record
}

// DisplayMessage implements registry.Displayer.
func (d *RecordingDisplayer) DisplayMessage(ctx context.Context, msg string) error {
	if d.Recorder != nil {
		d.Recorder.Record(fmt.Sprintf("display:%s:%s", d.Name, msg))
	}
	d.mu.Lock()
	d.Messages = append(d.Messages, msg)
	d.mu.Unlock()
	return d.DisplayErr
}

// ShowRecord implements registry.Displayer.
func (d *RecordingDisplayer) ShowRecord(ctx context.Context, rec *record.Record) error {
	if d.Recorder != nil {
		d.Recorder.Record("show:" + d.Name)
	}
	d.mu.Lock()
	d.Records = append(d.Records, rec)
	d.mu.Unlock()
	return d.ShowErr
}
