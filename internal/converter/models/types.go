package models

// ============================================================
// Geometry primitives
// ============================================================

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ZeroVector is the default position and rotation.
func ZeroVector() Vector3 { return Vector3{} }

// UnitVector is the default scale.
func UnitVector() Vector3 { return Vector3{X: 1, Y: 1, Z: 1} }

type Transform struct {
	Position Vector3 `json:"position"`
	Rotation Vector3 `json:"rotation"`
	Scale    Vector3 `json:"scale"`
}

// DefaultTransform returns zero position/rotation and unit scale.
func DefaultTransform() Transform {
	return Transform{Position: ZeroVector(), Rotation: ZeroVector(), Scale: UnitVector()}
}

// ============================================================
// Scene content
// ============================================================

type Object3D struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Position  Vector3 `json:"position"`
	Rotation  Vector3 `json:"rotation"`
	Scale     Vector3 `json:"scale"`
	Color     string  `json:"color"`
	Primitive string  `json:"primitive,omitempty"`
	Visible   bool    `json:"visible"`
}

type Camera struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position Vector3 `json:"position"`
	Rotation Vector3 `json:"rotation"`
	Scale    Vector3 `json:"scale"`
	FOV      float64 `json:"fov"`
	Near     float64 `json:"near"`
	Far      float64 `json:"far"`
}

type Light struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Position  Vector3  `json:"position"`
	Rotation  Vector3  `json:"rotation"`
	Scale     Vector3  `json:"scale"`
	Color     string   `json:"color,omitempty"`
	Intensity float64  `json:"intensity"`
	Distance  *float64 `json:"distance,omitempty"`
	Decay     *float64 `json:"decay,omitempty"`
}

type DataMetadata struct {
	Difficulty float64  `json:"difficulty"`
	Tags       []string `json:"tags"`
}

// DataNode is a quiz-style content block (question, answer, intro...).
type DataNode struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	DataType     string       `json:"dataType"`
	Content      string       `json:"content"`
	IsCorrect    bool         `json:"isCorrect"`
	NextSpace    string       `json:"nextSpace,omitempty"`
	Objects      []Object3D   `json:"objects"`
	EnablePoints bool         `json:"enablePoints"`
	PointsValue  float64      `json:"pointsValue"`
	Metadata     DataMetadata `json:"metadata"`
}

// ============================================================
// Entity hierarchy
// ============================================================

type Action struct {
	ID         string         `json:"id"`
	ActionType string         `json:"actionType"`
	Target     string         `json:"target,omitempty"`
	Params     map[string]any `json:"params"`
}

type Event struct {
	ID        string   `json:"id"`
	EventType string   `json:"eventType"`
	Source    string   `json:"source,omitempty"`
	Actions   []Action `json:"actions"`
}

type InventoryData struct {
	MaxCapacity float64 `json:"maxCapacity"`
	CurrentLoad float64 `json:"currentLoad"`
}

type WeaponData struct {
	FireRate float64 `json:"fireRate"`
	Damage   float64 `json:"damage"`
}

type TradingData struct {
	PricePerTon      float64 `json:"pricePerTon"`
	InteractionRange float64 `json:"interactionRange"`
}

type MineableData struct {
	ResourceType string  `json:"resourceType"`
	MaxYield     float64 `json:"maxYield"`
}

type PortalData struct {
	TargetWorld  string  `json:"targetWorld"`
	CooldownTime float64 `json:"cooldownTime"`
}

// Component carries the common fields plus at most one type-specific block,
// flattened into the JSON object.
type Component struct {
	ID            string         `json:"id"`
	ComponentType string         `json:"componentType"`
	Primitive     string         `json:"primitive,omitempty"`
	Color         string         `json:"color,omitempty"`
	ScriptName    string         `json:"scriptName,omitempty"`
	Props         map[string]any `json:"props"`

	*InventoryData
	*WeaponData
	*TradingData
	*MineableData
	*PortalData
}

type Entity struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	EntityType string      `json:"entityType"`
	Transform  Transform   `json:"transform"`
	Tags       []string    `json:"tags"`
	Components []Component `json:"components"`
	Events     []Event     `json:"events"`
}

// ============================================================
// Space
// ============================================================

type LeadCollection struct {
	CollectName  bool `json:"collectName"`
	CollectEmail bool `json:"collectEmail"`
	CollectPhone bool `json:"collectPhone"`
}

type FogSettings struct {
	Enabled bool    `json:"enabled"`
	Color   string  `json:"color"`
	Near    float64 `json:"near"`
	Far     float64 `json:"far"`
}

type PhysicsSettings struct {
	Enabled bool    `json:"enabled"`
	Gravity float64 `json:"gravity"`
}

type SpaceSettings struct {
	Background string           `json:"background"`
	Fog        *FogSettings     `json:"fog,omitempty"`
	Physics    *PhysicsSettings `json:"physics,omitempty"`
}

type Space struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	SpaceType      string         `json:"spaceType"`
	IsRootNode     bool           `json:"isRootNode"`
	Description    string         `json:"description"`
	Objects        []Object3D     `json:"objects"`
	Cameras        []Camera       `json:"cameras"`
	Lights         []Light        `json:"lights"`
	Datas          []DataNode     `json:"datas"`
	Entities       []Entity       `json:"entities"`
	Components     []Component    `json:"components"`
	Events         []Event        `json:"events"`
	Actions        []Action       `json:"actions"`
	ShowPoints     bool           `json:"showPoints"`
	LeadCollection LeadCollection `json:"leadCollection"`
	Settings       SpaceSettings  `json:"settings"`
}

// ============================================================
// Scenes
// ============================================================

type Scene struct {
	SpaceID        string     `json:"spaceId"`
	SpaceData      Space      `json:"spaceData"`
	DataNodes      []DataNode `json:"dataNodes"`
	ObjectNodes    []Object3D `json:"objectNodes"`
	NextSceneID    string     `json:"nextSceneId,omitempty"`
	IsLast         bool       `json:"isLast"`
	Order          int        `json:"order"`
	IsResultsScene bool       `json:"isResultsScene"`
}

type MultiScene struct {
	Scenes            []Scene `json:"scenes"`
	CurrentSceneIndex int     `json:"currentSceneIndex"`
	TotalScenes       int     `json:"totalScenes"`
	IsCompleted       bool    `json:"isCompleted"`
}

// Result holds either the single-space compilation or the multi-scene one.
type Result struct {
	UPDLSpace  *Space      `json:"updlSpace,omitempty"`
	MultiScene *MultiScene `json:"multiScene,omitempty"`
}

// Kind names the populated branch of the result.
func (r *Result) Kind() string {
	switch {
	case r == nil:
		return "empty"
	case r.MultiScene != nil:
		return "multi_scene"
	case r.UPDLSpace != nil:
		return "space"
	default:
		return "empty"
	}
}
