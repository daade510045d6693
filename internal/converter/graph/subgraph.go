package graph

import (
	"updl-converter/internal/converter/parser"
)

// ============================================================
// Scene subgraph
// ============================================================

// ConnectedNodes returns the non-space, non-data nodes of one scene: the
// direct predecessors of the space, components and events pointing at them,
// and actions pointing at those events. Depth is fixed at these two layers.
func ConnectedNodes(ix *Index, spaceID string) []parser.Node {
	set := make(map[string]struct{})
	for _, e := range ix.Edges() {
		if e.Target == spaceID {
			set[e.Source] = struct{}{}
		}
	}

	behaviours := make(map[string]struct{})
	for _, e := range ix.Edges() {
		k := ix.Kind(e.Source)
		if k != parser.KindComponent && k != parser.KindEvent {
			continue
		}
		if _, ok := set[e.Target]; ok {
			behaviours[e.Source] = struct{}{}
		}
	}
	for id := range behaviours {
		set[id] = struct{}{}
	}

	actions := make(map[string]struct{})
	for _, e := range ix.Edges() {
		if ix.Kind(e.Source) != parser.KindAction || ix.Kind(e.Target) != parser.KindEvent {
			continue
		}
		if _, ok := set[e.Target]; ok {
			actions[e.Source] = struct{}{}
		}
	}
	for id := range actions {
		set[id] = struct{}{}
	}

	for id := range set {
		if k := ix.Kind(id); k == parser.KindSpace || k == parser.KindData {
			delete(set, id)
		}
	}
	return ix.Select(set)
}

// ============================================================
// Data nodes
// ============================================================

// ConnectedDataNodes returns the data nodes pointing at the space followed
// by data nodes linked to one of those in either direction. Only one hop
// beyond the direct nodes is followed.
func ConnectedDataNodes(ix *Index, spaceID string) []parser.Node {
	direct := make(map[string]struct{})
	for _, e := range ix.Edges() {
		if e.Target == spaceID && ix.Kind(e.Source) == parser.KindData {
			direct[e.Source] = struct{}{}
		}
	}

	out := ix.Select(direct)
	included := IDSet(out)

	directNodes := out
	for _, d := range directNodes {
		for _, e := range ix.Edges() {
			var other string
			switch d.ID {
			case e.Source:
				other = e.Target
			case e.Target:
				other = e.Source
			default:
				continue
			}
			if ix.Kind(other) != parser.KindData {
				continue
			}
			if _, ok := included[other]; ok {
				continue
			}
			n, ok := ix.Node(other)
			if !ok {
				continue
			}
			included[other] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

// ObjectsTargeting returns object nodes with an edge pointing at id, in
// input order.
func ObjectsTargeting(ix *Index, id string) []parser.Node {
	set := make(map[string]struct{})
	for _, e := range ix.Edges() {
		if e.Target == id && ix.Kind(e.Source) == parser.KindObject {
			set[e.Source] = struct{}{}
		}
	}
	return ix.Select(set)
}
