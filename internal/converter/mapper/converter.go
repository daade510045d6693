package mapper

import (
	"errors"
	"fmt"
	"io"

	"updl-converter/internal/converter/graph"
	"updl-converter/internal/converter/models"
	"updl-converter/internal/converter/parser"
	"updl-converter/internal/converter/trace"
)

// ============================================================
// Converter
// ============================================================

// Converter compiles UPDL flow graphs. It holds no per-call state and may be
// shared between goroutines.
type Converter struct {
	tracer trace.Tracer
}

type Option func(*Converter)

// WithTracer subscribes t to conversion events.
func WithTracer(t trace.Tracer) Option {
	return func(c *Converter) {
		if t != nil {
			c.tracer = t
		}
	}
}

func New(opts ...Option) *Converter {
	c := &Converter{tracer: trace.Nop}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert reads a flow document from r and compiles it.
func (c *Converter) Convert(r io.Reader) (*models.Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read flow: %w", err)
	}
	return c.ProcessFlowData(data)
}

// ProcessFlowData compiles a flow document into either a single Space or a
// MultiScene. Only an undecodable document is an error; every irregularity
// inside a decoded graph falls back to defaults.
func (c *Converter) ProcessFlowData(data []byte) (*models.Result, error) {
	g, err := parser.DecodeGraph(data)
	if err != nil {
		if errors.Is(err, parser.ErrEmptyDocument) {
			return nil, &ConvertError{Op: "decode", Cause: ErrEmptyInput}
		}
		return nil, &ConvertError{Op: "decode", Cause: err}
	}

	ix := graph.NewIndex(g)
	trace.Emit(c.tracer, trace.GraphDecoded,
		trace.Int("nodes", len(ix.Nodes())),
		trace.Int("edges", len(ix.Edges())),
	)

	if chain, ok := graph.AnalyzeSpaceChain(ix, c.tracer); ok {
		return &models.Result{MultiScene: assembleMultiScene(ix, chain, c.tracer)}, nil
	}

	return &models.Result{UPDLSpace: assembleSingleSpace(ix, c.tracer)}, nil
}
