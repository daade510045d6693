package graph

import (
	"updl-converter/internal/converter/parser"
)

// ============================================================
// Index
// ============================================================

// Index holds id-keyed lookups over one flow graph. It is built once per
// conversion and discarded with it.
type Index struct {
	nodes []parser.Node
	edges []parser.Edge
	byID  map[string]int
	kinds map[string]parser.Kind
}

func NewIndex(g *parser.Graph) *Index {
	ix := &Index{
		byID:  make(map[string]int),
		kinds: make(map[string]parser.Kind),
	}
	if g == nil {
		return ix
	}

	ix.nodes = g.Nodes
	ix.edges = g.Edges
	for i, n := range g.Nodes {
		// first node wins on duplicate ids
		if _, exists := ix.byID[n.ID]; exists {
			continue
		}
		ix.byID[n.ID] = i
		ix.kinds[n.ID] = parser.KindOf(n)
	}
	return ix
}

func (ix *Index) Nodes() []parser.Node {
	return ix.nodes
}

func (ix *Index) Edges() []parser.Edge {
	return ix.edges
}

// Node looks a node up by id.
func (ix *Index) Node(id string) (parser.Node, bool) {
	i, ok := ix.byID[id]
	if !ok {
		return parser.Node{}, false
	}
	return ix.nodes[i], true
}

// Kind returns the kind of the node with the given id; unknown ids are KindUnknown.
func (ix *Index) Kind(id string) parser.Kind {
	return ix.kinds[id]
}

// OfKind returns the nodes of kind k in input order.
func (ix *Index) OfKind(k parser.Kind) []parser.Node {
	var out []parser.Node
	for _, n := range ix.nodes {
		if parser.KindOf(n) == k {
			out = append(out, n)
		}
	}
	return out
}

// UPDLNodes returns the nodes that belong to the domain graph in input order.
func (ix *Index) UPDLNodes() []parser.Node {
	var out []parser.Node
	for _, n := range ix.nodes {
		if IsUPDLNode(n) {
			out = append(out, n)
		}
	}
	return out
}

// Select returns the indexed nodes whose ids are in ids, in input order.
func (ix *Index) Select(ids map[string]struct{}) []parser.Node {
	var out []parser.Node
	seen := make(map[string]struct{}, len(ids))
	for _, n := range ix.nodes {
		if _, ok := ids[n.ID]; !ok {
			continue
		}
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, n)
	}
	return out
}

// ScopedEdges returns the edges whose source and target are both in ids,
// in input order.
func (ix *Index) ScopedEdges(ids map[string]struct{}) []parser.Edge {
	var out []parser.Edge
	for _, e := range ix.edges {
		_, src := ids[e.Source]
		_, dst := ids[e.Target]
		if src && dst {
			out = append(out, e)
		}
	}
	return out
}

// IDSet collects node ids into a set.
func IDSet(nodes ...[]parser.Node) map[string]struct{} {
	set := make(map[string]struct{})
	for _, group := range nodes {
		for _, n := range group {
			set[n.ID] = struct{}{}
		}
	}
	return set
}
