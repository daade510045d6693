package mapper

import (
	"updl-converter/internal/converter/models"
	"updl-converter/internal/converter/parser"
)

// ============================================================
// Node → record
// ============================================================

// record converts a node into its domain record. The second result is false
// for kinds that produce no record (unknown, universo).
func record(n parser.Node) (any, bool) {
	payload, ok := parser.DecodePayload(n)
	if !ok {
		return nil, false
	}

	switch p := payload.(type) {
	case parser.SpacePayload:
		return newSpace(n.ID, p), true
	case parser.ObjectPayload:
		return newObject(n.ID, p), true
	case parser.CameraPayload:
		return models.Camera{
			ID:       n.ID,
			Name:     p.Name,
			Position: p.Position,
			Rotation: p.Rotation,
			Scale:    p.Scale,
			FOV:      p.FOV,
			Near:     p.Near,
			Far:      p.Far,
		}, true
	case parser.LightPayload:
		return models.Light{
			ID:        n.ID,
			Name:      p.Name,
			Type:      p.Type,
			Position:  p.Position,
			Rotation:  p.Rotation,
			Scale:     p.Scale,
			Color:     p.Color,
			Intensity: p.Intensity,
			Distance:  p.Distance,
			Decay:     p.Decay,
		}, true
	case parser.DataPayload:
		return models.DataNode{
			ID:           n.ID,
			Name:         p.Name,
			DataType:     p.DataType,
			Content:      p.Content,
			IsCorrect:    p.IsCorrect,
			NextSpace:    p.NextSpace,
			Objects:      []models.Object3D{},
			EnablePoints: p.EnablePoints,
			PointsValue:  p.PointsValue,
			Metadata: models.DataMetadata{
				Difficulty: p.Difficulty,
				Tags:       p.Tags,
			},
		}, true
	case parser.EntityPayload:
		return models.Entity{
			ID:         n.ID,
			Name:       p.Name,
			EntityType: p.EntityType,
			Transform:  p.Transform,
			Tags:       p.Tags,
			Components: []models.Component{},
			Events:     []models.Event{},
		}, true
	case parser.ComponentPayload:
		return models.Component{
			ID:            n.ID,
			ComponentType: p.Type,
			Primitive:     p.Primitive,
			Color:         p.Color,
			ScriptName:    p.ScriptName,
			Props:         p.Props,
			InventoryData: p.Inventory,
			WeaponData:    p.Weapon,
			TradingData:   p.Trading,
			MineableData:  p.Mineable,
			PortalData:    p.Portal,
		}, true
	case parser.EventPayload:
		return models.Event{
			ID:        n.ID,
			EventType: p.Type,
			Source:    p.Source,
			Actions:   []models.Action{},
		}, true
	case parser.ActionPayload:
		return models.Action{
			ID:         n.ID,
			ActionType: p.Type,
			Target:     p.Target,
			Params:     p.Params,
		}, true
	case parser.UniversoPayload:
		return nil, false
	}
	return nil, false
}

func newSpace(id string, p parser.SpacePayload) models.Space {
	return models.Space{
		ID:             id,
		Name:           p.Name,
		SpaceType:      p.SpaceType,
		IsRootNode:     p.IsRootNode,
		Description:    p.Description,
		Objects:        []models.Object3D{},
		Cameras:        []models.Camera{},
		Lights:         []models.Light{},
		Datas:          []models.DataNode{},
		Entities:       []models.Entity{},
		Components:     []models.Component{},
		Events:         []models.Event{},
		Actions:        []models.Action{},
		ShowPoints:     p.ShowPoints,
		LeadCollection: p.Lead,
		Settings:       p.Settings,
	}
}

func newObject(id string, p parser.ObjectPayload) models.Object3D {
	return models.Object3D{
		ID:        id,
		Name:      p.Name,
		Type:      p.Type,
		Position:  p.Position,
		Rotation:  p.Rotation,
		Scale:     p.Scale,
		Color:     p.Color,
		Primitive: p.Primitive,
		Visible:   p.Visible,
	}
}

// ============================================================
// Partition
// ============================================================

// content is the scene content of a node set, partitioned by kind.
type content struct {
	objects []models.Object3D
	cameras []models.Camera
	lights  []models.Light
	datas   []models.DataNode
}

// partition converts objects, cameras, lights and data nodes. Entity-tree
// kinds are left to Attach.
func partition(nodes []parser.Node) content {
	c := content{
		objects: []models.Object3D{},
		cameras: []models.Camera{},
		lights:  []models.Light{},
		datas:   []models.DataNode{},
	}
	for _, n := range nodes {
		switch parser.KindOf(n) {
		case parser.KindObject, parser.KindCamera, parser.KindLight, parser.KindData:
		default:
			continue
		}
		rec, ok := record(n)
		if !ok {
			continue
		}
		switch r := rec.(type) {
		case models.Object3D:
			c.objects = append(c.objects, r)
		case models.Camera:
			c.cameras = append(c.cameras, r)
		case models.Light:
			c.lights = append(c.lights, r)
		case models.DataNode:
			c.datas = append(c.datas, r)
		}
	}
	return c
}
