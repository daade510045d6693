// Package trace is the converter's passive diagnostics hook. The converter
// emits named events while it walks a flow graph; callers subscribe by
// passing a Tracer. Events carry no correctness semantics.
package trace

import (
	"context"
	"log/slog"
	"sync"
)

// Event names emitted by the converter.
const (
	GraphDecoded    = "graph.decoded"
	ChainSingle     = "chain.single"
	ChainRoot       = "chain.root"
	ChainCycle      = "chain.cycle"
	SceneBuilt      = "scene.built"
	ResultsInjected = "scene.results_injected"
	SpaceBuilt      = "space.built"
)

// Field is a key-value pair attached to an event.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Strings(key string, values []string) Field {
	return Field{Key: key, Value: values}
}

type Event struct {
	Name   string
	Fields []Field
}

// Value returns the value of the named field, if present.
func (e Event) Value(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

type Tracer interface {
	Trace(ev Event)
}

// Func adapts a plain function to Tracer.
type Func func(ev Event)

func (f Func) Trace(ev Event) { f(ev) }

type nopTracer struct{}

func (nopTracer) Trace(Event) {}

// Nop discards every event.
var Nop Tracer = nopTracer{}

type multi []Tracer

// Multi fans every event out to each non-nil tracer in order.
func Multi(tracers ...Tracer) Tracer {
	var m multi
	for _, t := range tracers {
		if t != nil {
			m = append(m, t)
		}
	}
	return m
}

func (m multi) Trace(ev Event) {
	for _, t := range m {
		t.Trace(ev)
	}
}

// Emit is a nil-safe helper for emitting an event.
func Emit(t Tracer, name string, fields ...Field) {
	if t == nil {
		return
	}
	t.Trace(Event{Name: name, Fields: fields})
}

// ============================================================
// Recorder
// ============================================================

// Recorder keeps every event in memory. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Trace(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Named returns the recorded events with the given name.
func (r *Recorder) Named(name string) []Event {
	var out []Event
	for _, ev := range r.Events() {
		if ev.Name == name {
			out = append(out, ev)
		}
	}
	return out
}

// ============================================================
// slog adapter
// ============================================================

type slogTracer struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlog writes events to logger at the given level.
func NewSlog(logger *slog.Logger, level slog.Level) Tracer {
	return &slogTracer{logger: logger, level: level}
}

func (t *slogTracer) Trace(ev Event) {
	ctx := context.Background()
	if !t.logger.Enabled(ctx, t.level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(ev.Fields))
	for _, f := range ev.Fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	t.logger.LogAttrs(ctx, t.level, ev.Name, attrs...)
}
