package parser

import (
	"strings"

	"updl-converter/internal/converter/models"
)

// ============================================================
// Typed payloads
// ============================================================

// Payload is the typed view of a node's inputs. Exactly one concrete type
// exists per Kind; defaults are already applied.
type Payload interface {
	Kind() Kind
}

type SpacePayload struct {
	Name         string
	SpaceType    string
	IsRootNode   bool
	Description  string
	ShowPoints   bool
	Lead         models.LeadCollection
	Settings     models.SpaceSettings
	ResultsScene bool
}

type ObjectPayload struct {
	Name      string
	Type      string
	Primitive string
	Position  models.Vector3
	Rotation  models.Vector3
	Scale     models.Vector3
	Color     string
	Visible   bool
}

type CameraPayload struct {
	Name     string
	Position models.Vector3
	Rotation models.Vector3
	Scale    models.Vector3
	FOV      float64
	Near     float64
	Far      float64
}

type LightPayload struct {
	Name      string
	Type      string
	Position  models.Vector3
	Rotation  models.Vector3
	Scale     models.Vector3
	Color     string
	Intensity float64
	Distance  *float64
	Decay     *float64
}

type DataPayload struct {
	Name         string
	DataType     string
	Content      string
	IsCorrect    bool
	NextSpace    string
	EnablePoints bool
	PointsValue  float64
	Difficulty   float64
	Tags         []string
}

type EntityPayload struct {
	Name       string
	EntityType string
	Transform  models.Transform
	Tags       []string
}

type ComponentPayload struct {
	Type       string
	Primitive  string
	Color      string
	ScriptName string
	Props      map[string]any

	Inventory *models.InventoryData
	Weapon    *models.WeaponData
	Trading   *models.TradingData
	Mineable  *models.MineableData
	Portal    *models.PortalData
}

type EventPayload struct {
	Type   string
	Source string
}

type ActionPayload struct {
	Type   string
	Target string
	Params map[string]any
}

// UniversoPayload marks the platform gateway node. It is classified as UPDL
// but produces no scene record.
type UniversoPayload struct {
	Name string
}

func (SpacePayload) Kind() Kind     { return KindSpace }
func (ObjectPayload) Kind() Kind    { return KindObject }
func (CameraPayload) Kind() Kind    { return KindCamera }
func (LightPayload) Kind() Kind     { return KindLight }
func (DataPayload) Kind() Kind      { return KindData }
func (EntityPayload) Kind() Kind    { return KindEntity }
func (ComponentPayload) Kind() Kind { return KindComponent }
func (EventPayload) Kind() Kind     { return KindEvent }
func (ActionPayload) Kind() Kind    { return KindAction }
func (UniversoPayload) Kind() Kind  { return KindUniverso }

// Component-specific defaults.
const (
	defaultMaxCapacity      = 20
	defaultFireRate         = 1
	defaultDamage           = 10
	defaultPricePerTon      = 10
	defaultInteractionRange = 8
	defaultResourceType     = "asteroidMass"
	defaultMaxYield         = 50
	defaultCooldownTime     = 3
)

// ============================================================
// Decoder
// ============================================================

// DecodePayload builds the typed payload for a node. It returns false for
// nodes whose kind is unknown.
func DecodePayload(n Node) (Payload, bool) {
	in := n.Data.Inputs

	switch KindOf(n) {
	case KindSpace:
		return decodeSpace(n, in), true
	case KindObject:
		return ObjectPayload{
			Name:      displayName(n, in, "objectName", "Object"),
			Type:      StrOr(in, "objectType", "box"),
			Primitive: StrOr(in, "primitive", StrOr(in, "objectType", "box")),
			Position:  vectorInput(in, "position", models.ZeroVector()),
			Rotation:  vectorInput(in, "rotation", models.ZeroVector()),
			Scale:     scaleInput(in),
			Color:     StrOr(in, "color", "#ffffff"),
			Visible:   BoolOr(in, "visible", true),
		}, true
	case KindCamera:
		return CameraPayload{
			Name:     displayName(n, in, "cameraName", "Camera"),
			Position: vectorInput(in, "position", models.ZeroVector()),
			Rotation: vectorInput(in, "rotation", models.ZeroVector()),
			Scale:    scaleInput(in),
			FOV:      NumOr(in, "fov", 75),
			Near:     NumOr(in, "near", 0.1),
			Far:      NumOr(in, "far", 1000),
		}, true
	case KindLight:
		p := LightPayload{
			Name:      displayName(n, in, "lightName", "Light"),
			Type:      StrOr(in, "lightType", "point"),
			Position:  vectorInput(in, "position", models.ZeroVector()),
			Rotation:  vectorInput(in, "rotation", models.ZeroVector()),
			Scale:     scaleInput(in),
			Color:     StrOr(in, "color", ""),
			Intensity: NumOr(in, "intensity", 1),
		}
		if d, ok := Num(in, "distance"); ok {
			p.Distance = &d
		}
		if d, ok := Num(in, "decay"); ok {
			p.Decay = &d
		}
		return p, true
	case KindData:
		return DataPayload{
			Name:         displayName(n, in, "dataName", "Data"),
			DataType:     StrOr(in, "dataType", "question"),
			Content:      StrOr(in, "content", ""),
			IsCorrect:    BoolOr(in, "isCorrect", false),
			NextSpace:    StrOr(in, "nextSpace", ""),
			EnablePoints: BoolOr(in, "enablePoints", false),
			PointsValue:  NumOr(in, "pointsValue", 0),
			Difficulty:   NumOr(in, "difficulty", 1),
			Tags:         ParseTags(in["tags"]),
		}, true
	case KindEntity:
		return EntityPayload{
			Name:       displayName(n, in, "entityName", "Entity"),
			EntityType: StrOr(in, "entityType", "static"),
			Transform:  ParseTransform(in["transform"]),
			Tags:       ParseTags(in["tags"]),
		}, true
	case KindComponent:
		return decodeComponent(in), true
	case KindEvent:
		return EventPayload{
			Type:   StrOr(in, "eventType", "OnStart"),
			Source: StrOr(in, "source", ""),
		}, true
	case KindAction:
		return ActionPayload{
			Type:   StrOr(in, "actionType", "custom"),
			Target: StrOr(in, "target", ""),
			Params: ParseObject(in["params"]),
		}, true
	case KindUniverso:
		return UniversoPayload{Name: displayName(n, in, "name", "Universo")}, true
	}
	return nil, false
}

func decodeSpace(n Node, in map[string]any) SpacePayload {
	p := SpacePayload{
		Name:        displayName(n, in, "spaceName", "Space"),
		SpaceType:   StrOr(in, "spaceType", "root"),
		IsRootNode:  BoolOr(in, "isRootNode", false),
		Description: StrOr(in, "description", ""),
		ShowPoints:  BoolOr(in, "showPoints", false),
		Lead: models.LeadCollection{
			CollectName:  BoolOr(in, "collectLeadName", false),
			CollectEmail: BoolOr(in, "collectLeadEmail", false),
			CollectPhone: BoolOr(in, "collectLeadPhone", false),
		},
		Settings: models.SpaceSettings{
			Background: StrOr(in, "backgroundColor", "#000000"),
		},
		ResultsScene: BoolOr(in, "isResultsScene", false),
	}

	if fog, ok := decodeEmbedded(in["fog"]).(map[string]any); ok {
		p.Settings.Fog = &models.FogSettings{
			Enabled: BoolOr(fog, "enabled", true),
			Color:   StrOr(fog, "color", "#ffffff"),
			Near:    NumOr(fog, "near", 1),
			Far:     NumOr(fog, "far", 100),
		}
	}
	if physics, ok := decodeEmbedded(in["physics"]).(map[string]any); ok {
		p.Settings.Physics = &models.PhysicsSettings{
			Enabled: BoolOr(physics, "enabled", true),
			Gravity: NumOr(physics, "gravity", -9.81),
		}
	}
	return p
}

func decodeComponent(in map[string]any) ComponentPayload {
	p := ComponentPayload{
		Type:       StrOr(in, "componentType", "render"),
		Primitive:  StrOr(in, "primitive", ""),
		Color:      StrOr(in, "color", ""),
		ScriptName: StrOr(in, "scriptName", ""),
		Props:      ParseObject(in["props"]),
	}

	switch strings.ToLower(p.Type) {
	case "inventory":
		p.Inventory = &models.InventoryData{
			MaxCapacity: NumOr(in, "maxCapacity", defaultMaxCapacity),
			CurrentLoad: NumOr(in, "currentLoad", 0),
		}
	case "weapon":
		p.Weapon = &models.WeaponData{
			FireRate: NumOr(in, "fireRate", defaultFireRate),
			Damage:   NumOr(in, "damage", defaultDamage),
		}
	case "trading":
		p.Trading = &models.TradingData{
			PricePerTon:      NumOr(in, "pricePerTon", defaultPricePerTon),
			InteractionRange: NumOr(in, "interactionRange", defaultInteractionRange),
		}
	case "mineable":
		p.Mineable = &models.MineableData{
			ResourceType: StrOr(in, "resourceType", defaultResourceType),
			MaxYield:     NumOr(in, "maxYield", defaultMaxYield),
		}
	case "portal":
		p.Portal = &models.PortalData{
			TargetWorld:  StrOr(in, "targetWorld", ""),
			CooldownTime: NumOr(in, "cooldownTime", defaultCooldownTime),
		}
	}
	return p
}

// displayName prefers the kind-specific input, then the editor label.
func displayName(n Node, in map[string]any, key, def string) string {
	if s := StrOr(in, key, ""); s != "" {
		return s
	}
	if strings.TrimSpace(n.Data.Label) != "" {
		return n.Data.Label
	}
	return def
}
