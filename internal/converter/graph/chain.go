package graph

import (
	"updl-converter/internal/converter/parser"
	"updl-converter/internal/converter/trace"
)

// ============================================================
// Space chain
// ============================================================

// Chain is the ordered walk over space nodes starting at the root.
type Chain struct {
	Spaces []parser.Node
	// Cyclic is set when the walk stopped because a successor was already visited.
	Cyclic bool
}

// Next returns the id of the space following position i, or "".
func (c *Chain) Next(i int) string {
	if i+1 < len(c.Spaces) {
		return c.Spaces[i+1].ID
	}
	return ""
}

// AnalyzeSpaceChain finds the space→space chain. It returns false when the
// graph holds at most one space or when no space is free of incoming
// space edges; callers then fall back to single-space conversion.
func AnalyzeSpaceChain(ix *Index, tr trace.Tracer) (*Chain, bool) {
	spaces := ix.OfKind(parser.KindSpace)
	if len(spaces) <= 1 {
		trace.Emit(tr, trace.ChainSingle, trace.Int("spaces", len(spaces)))
		return nil, false
	}

	next := make(map[string]string)
	incoming := make(map[string]bool)
	for _, e := range ix.Edges() {
		if ix.Kind(e.Source) != parser.KindSpace || ix.Kind(e.Target) != parser.KindSpace {
			continue
		}
		// first outgoing space edge wins
		if _, ok := next[e.Source]; !ok {
			next[e.Source] = e.Target
		}
		incoming[e.Target] = true
	}

	var roots []parser.Node
	for _, s := range spaces {
		if !incoming[s.ID] {
			roots = append(roots, s)
		}
	}
	if len(roots) == 0 {
		trace.Emit(tr, trace.ChainSingle,
			trace.Int("spaces", len(spaces)),
			trace.String("reason", "no root space"),
		)
		return nil, false
	}

	root := roots[0]
	candidates := make([]string, 0, len(roots))
	for _, r := range roots {
		candidates = append(candidates, r.ID)
	}
	trace.Emit(tr, trace.ChainRoot,
		trace.String("space_id", root.ID),
		trace.Strings("candidates", candidates),
	)

	chain := &Chain{}
	visited := make(map[string]bool)
	current := root
	for {
		visited[current.ID] = true
		chain.Spaces = append(chain.Spaces, current)

		nextID, ok := next[current.ID]
		if !ok {
			break
		}
		if visited[nextID] {
			chain.Cyclic = true
			trace.Emit(tr, trace.ChainCycle,
				trace.String("from", current.ID),
				trace.String("to", nextID),
			)
			break
		}
		n, ok := ix.Node(nextID)
		if !ok {
			break
		}
		current = n
	}

	return chain, true
}
