package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ============================================================
// Flow graph structures
// ============================================================

// NodeData is the part of an editor node the converter reads. Everything
// else the editor stores (position on canvas, ports, UI state) is dropped.
type NodeData struct {
	Category string
	Name     string
	Label    string
	Inputs   map[string]any
}

type Node struct {
	ID   string
	Data NodeData
}

type Edge struct {
	ID           string
	Source       string
	Target       string
	SourceHandle string
	TargetHandle string
}

type Graph struct {
	Nodes []Node
	Edges []Edge
}

// ErrEmptyDocument is returned for blank input.
var ErrEmptyDocument = errors.New("empty flow document")

// document mirrors the top-level JSON object. Fields are decoded loosely so
// that a wrong-shaped node or edge never fails the whole document.
type document struct {
	Nodes any `json:"nodes"`
	Edges any `json:"edges"`
}

// ============================================================
// Parser
// ============================================================

// DecodeGraph parses the editor JSON. Only a malformed top-level document is
// an error; irregular nodes and edges are normalized.
func DecodeGraph(data []byte) (*Graph, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode flow JSON: %w", err)
	}

	g := &Graph{
		Nodes: []Node{},
		Edges: []Edge{},
	}

	if rawNodes, ok := doc.Nodes.([]any); ok {
		for _, raw := range rawNodes {
			obj, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			g.Nodes = append(g.Nodes, decodeNode(obj))
		}
	}

	if rawEdges, ok := doc.Edges.([]any); ok {
		for _, raw := range rawEdges {
			obj, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			g.Edges = append(g.Edges, decodeEdge(obj))
		}
	}

	return g, nil
}

func decodeNode(obj map[string]any) Node {
	n := Node{ID: scalarString(obj["id"])}

	data, _ := obj["data"].(map[string]any)
	if data == nil {
		return n
	}

	n.Data.Category = scalarString(data["category"])
	n.Data.Name = scalarString(data["name"])
	n.Data.Label = scalarString(data["label"])
	if inputs, ok := data["inputs"].(map[string]any); ok {
		n.Data.Inputs = inputs
	}
	return n
}

func decodeEdge(obj map[string]any) Edge {
	return Edge{
		ID:           scalarString(obj["id"]),
		Source:       scalarString(obj["source"]),
		Target:       scalarString(obj["target"]),
		SourceHandle: scalarString(obj["sourceHandle"]),
		TargetHandle: scalarString(obj["targetHandle"]),
	}
}

// scalarString renders string and numeric ids alike; other shapes yield "".
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// ============================================================
// Node kinds
// ============================================================

// Kind is the lower-cased node name the editor assigns to each UPDL node.
type Kind string

const (
	KindUnknown   Kind = ""
	KindSpace     Kind = "space"
	KindObject    Kind = "object"
	KindCamera    Kind = "camera"
	KindLight     Kind = "light"
	KindData      Kind = "data"
	KindEntity    Kind = "entity"
	KindComponent Kind = "component"
	KindEvent     Kind = "event"
	KindAction    Kind = "action"
	KindUniverso  Kind = "universo"
)

// CategoryUPDL marks nodes that belong to the domain graph regardless of name.
const CategoryUPDL = "UPDL"

var knownKinds = map[Kind]struct{}{
	KindSpace:     {},
	KindObject:    {},
	KindCamera:    {},
	KindLight:     {},
	KindData:      {},
	KindEntity:    {},
	KindComponent: {},
	KindEvent:     {},
	KindAction:    {},
	KindUniverso:  {},
}

// KindOf returns the node kind, or KindUnknown when the name is not a UPDL tag.
func KindOf(n Node) Kind {
	k := Kind(strings.ToLower(strings.TrimSpace(n.Data.Name)))
	if _, ok := knownKinds[k]; ok {
		return k
	}
	return KindUnknown
}
