package mapper

import (
	"strings"

	"updl-converter/internal/converter/graph"
	"updl-converter/internal/converter/models"
	"updl-converter/internal/converter/parser"
	"updl-converter/internal/converter/trace"
)

const (
	resultsSpaceType = "results"
	resultsSuffix    = "-results"
	resultsName      = "Results"
)

// ============================================================
// Space assembly
// ============================================================

// assembleSpace builds a Space from a space node and the already scoped
// scene content.
func assembleSpace(spaceNode parser.Node, c content, att Attachment) models.Space {
	space := models.Space{ID: spaceNode.ID}
	if p, ok := parser.DecodePayload(spaceNode); ok {
		if sp, ok := p.(parser.SpacePayload); ok {
			space = newSpace(spaceNode.ID, sp)
		}
	}
	space.Objects = c.objects
	space.Cameras = c.cameras
	space.Lights = c.lights
	space.Datas = c.datas
	space.Entities = att.Entities
	space.Components = att.Components
	space.Events = att.Events
	space.Actions = att.Actions
	return space
}

// resolveData converts data nodes and fills each one with the objects that
// point at it.
func resolveData(ix *graph.Index, dataNodes []parser.Node) []models.DataNode {
	datas := partition(dataNodes).datas
	for i := range datas {
		objs := partition(graph.ObjectsTargeting(ix, datas[i].ID)).objects
		datas[i].Objects = objs
	}
	return datas
}

// isResultsSpace reports whether a space node is flagged as a results scene.
func isResultsSpace(n parser.Node) bool {
	p, ok := parser.DecodePayload(n)
	if !ok {
		return false
	}
	sp, ok := p.(parser.SpacePayload)
	if !ok {
		return false
	}
	return sp.ResultsScene || strings.EqualFold(sp.SpaceType, resultsSpaceType)
}

// ============================================================
// Scene assembly
// ============================================================

// buildScene extracts the subgraph of one space and assembles its scene.
// Attachment only sees edges whose endpoints both lie in the scene.
func buildScene(ix *graph.Index, spaceNode parser.Node, order int, nextID string, tr trace.Tracer) models.Scene {
	sub := graph.ConnectedNodes(ix, spaceNode.ID)
	dataNodes := graph.ConnectedDataNodes(ix, spaceNode.ID)

	scope := graph.IDSet([]parser.Node{spaceNode}, sub, dataNodes)
	edges := ix.ScopedEdges(scope)

	c := partition(sub)
	c.datas = resolveData(ix, dataNodes)
	att := Attach(sub, edges)

	scene := models.Scene{
		SpaceID:     spaceNode.ID,
		SpaceData:   assembleSpace(spaceNode, c, att),
		DataNodes:   c.datas,
		ObjectNodes: c.objects,
		NextSceneID: nextID,
		IsLast:      nextID == "",
		Order:       order,
	}

	trace.Emit(tr, trace.SceneBuilt,
		trace.String("space_id", spaceNode.ID),
		trace.Int("order", order),
		trace.Int("entities", len(att.Entities)),
		trace.Int("data_nodes", len(c.datas)),
		trace.Int("objects", len(c.objects)),
		trace.Int("edges", len(edges)),
	)
	return scene
}

// assembleMultiScene walks the chain and appends a results scene when the
// last natural scene is not one already.
func assembleMultiScene(ix *graph.Index, chain *graph.Chain, tr trace.Tracer) *models.MultiScene {
	scenes := make([]models.Scene, 0, len(chain.Spaces)+1)
	for i, sp := range chain.Spaces {
		scenes = append(scenes, buildScene(ix, sp, i, chain.Next(i), tr))
	}

	if n := len(scenes); n > 0 {
		lastNode := chain.Spaces[n-1]
		scenes[n-1].IsResultsScene = isResultsSpace(lastNode)

		// A chain whose root has no successor stays a single scene even when
		// other spaces exist; only walked chains get a results scene.
		if n > 1 && !scenes[n-1].IsResultsScene {
			results := resultsScene(lastNode.ID, scenes[n-1].Order+1)
			scenes[n-1].IsLast = false
			scenes[n-1].NextSceneID = results.SpaceID
			scenes = append(scenes, results)

			trace.Emit(tr, trace.ResultsInjected,
				trace.String("space_id", results.SpaceID),
				trace.Int("order", results.Order),
			)
		}
	}

	return &models.MultiScene{
		Scenes:            scenes,
		CurrentSceneIndex: 0,
		TotalScenes:       len(scenes),
		IsCompleted:       false,
	}
}

// resultsScene is the synthetic terminal scene appended after lastID.
func resultsScene(lastID string, order int) models.Scene {
	id := lastID + resultsSuffix
	space := newSpace(id, parser.SpacePayload{Name: resultsName, SpaceType: resultsSpaceType})
	return models.Scene{
		SpaceID:        id,
		SpaceData:      space,
		DataNodes:      []models.DataNode{},
		ObjectNodes:    []models.Object3D{},
		IsLast:         true,
		Order:          order,
		IsResultsScene: true,
	}
}

// ============================================================
// Single-space assembly
// ============================================================

// assembleSingleSpace converts the whole graph as one space. The first space
// node supplies the space fields; it returns nil when there is none.
func assembleSingleSpace(ix *graph.Index, tr trace.Tracer) *models.Space {
	nodes := ix.UPDLNodes()

	var spaceNode *parser.Node
	for i := range nodes {
		if parser.KindOf(nodes[i]) == parser.KindSpace {
			spaceNode = &nodes[i]
			break
		}
	}
	if spaceNode == nil {
		trace.Emit(tr, trace.SpaceBuilt, trace.Bool("empty", true))
		return nil
	}

	var dataNodes []parser.Node
	for _, n := range nodes {
		if parser.KindOf(n) == parser.KindData {
			dataNodes = append(dataNodes, n)
		}
	}

	c := partition(nodes)
	c.datas = resolveData(ix, dataNodes)
	att := Attach(nodes, ix.Edges())

	space := assembleSpace(*spaceNode, c, att)
	trace.Emit(tr, trace.SpaceBuilt,
		trace.String("space_id", space.ID),
		trace.Int("objects", len(space.Objects)),
		trace.Int("entities", len(space.Entities)),
		trace.Int("data_nodes", len(space.Datas)),
	)
	return &space
}
