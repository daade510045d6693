package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"updl-converter/internal/converter/models"
)

// ============================================================
// Scalar readers
// ============================================================

// Str reads a string input; numbers are formatted, other shapes are ignored.
func Str(inputs map[string]any, key string) (string, bool) {
	switch v := inputs[key].(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}

// StrOr returns the input when it is a non-blank string, otherwise def.
func StrOr(inputs map[string]any, key, def string) string {
	if s, ok := Str(inputs, key); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}

// Num reads a number given as a JSON number or a numeric string.
func Num(inputs map[string]any, key string) (float64, bool) {
	return toNumber(inputs[key])
}

// NumOr returns the number stored under key or def.
func NumOr(inputs map[string]any, key string, def float64) float64 {
	if n, ok := Num(inputs, key); ok {
		return n
	}
	return def
}

// Bool reads a JSON boolean or a "true"/"false" string.
func Bool(inputs map[string]any, key string) (bool, bool) {
	switch v := inputs[key].(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err == nil {
			return b, true
		}
	}
	return false, false
}

// BoolOr returns the boolean stored under key or def.
func BoolOr(inputs map[string]any, key string, def bool) bool {
	if b, ok := Bool(inputs, key); ok {
		return b
	}
	return def
}

// toNumber rejects NaN and infinities so the caller's default applies; the
// result must stay encodable as JSON.
func toNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ============================================================
// Structured readers
// ============================================================

// decodeEmbedded unpacks a JSON-encoded string value. Non-strings pass through.
func decodeEmbedded(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.TrimSpace(s)
	if s == "" || (s[0] != '{' && s[0] != '[') {
		return v
	}
	var out any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}

// ParseVector accepts [x,y,z], {x,y,z}, "x,y,z" or a JSON-encoded string of
// the first two forms. Missing or unreadable components keep the default.
func ParseVector(v any, def models.Vector3) models.Vector3 {
	switch t := decodeEmbedded(v).(type) {
	case []any:
		return vectorFromList(t, def)
	case map[string]any:
		out := def
		if x, ok := toNumber(t["x"]); ok {
			out.X = x
		}
		if y, ok := toNumber(t["y"]); ok {
			out.Y = y
		}
		if z, ok := toNumber(t["z"]); ok {
			out.Z = z
		}
		return out
	case string:
		parts := strings.Split(t, ",")
		if len(parts) < 2 {
			return def
		}
		list := make([]any, 0, len(parts))
		for _, p := range parts {
			list = append(list, p)
		}
		return vectorFromList(list, def)
	}
	return def
}

func vectorFromList(list []any, def models.Vector3) models.Vector3 {
	out := def
	dst := []*float64{&out.X, &out.Y, &out.Z}
	for i := 0; i < len(list) && i < len(dst); i++ {
		if n, ok := toNumber(list[i]); ok {
			*dst[i] = n
		}
	}
	return out
}

// ParseScale is ParseVector plus a single number meaning uniform scale.
func ParseScale(v any) models.Vector3 {
	if n, ok := toNumber(v); ok {
		return models.Vector3{X: n, Y: n, Z: n}
	}
	return ParseVector(v, models.UnitVector())
}

// ParseTransform reads an entity transform given as an object or as a JSON
// string. Both short (pos/rot) and long (position/rotation) keys are read.
func ParseTransform(v any) models.Transform {
	tr := models.DefaultTransform()

	obj, ok := decodeEmbedded(v).(map[string]any)
	if !ok {
		return tr
	}

	if p, ok := firstPresent(obj, "pos", "position"); ok {
		tr.Position = ParseVector(p, models.ZeroVector())
	}
	if r, ok := firstPresent(obj, "rot", "rotation"); ok {
		tr.Rotation = ParseVector(r, models.ZeroVector())
	}
	if s, ok := obj["scale"]; ok {
		tr.Scale = ParseScale(s)
	}
	return tr
}

func firstPresent(obj map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// ParseTags accepts a comma-separated string or an array of strings.
// The result is never nil.
func ParseTags(v any) []string {
	tags := []string{}
	switch t := v.(type) {
	case string:
		for _, part := range strings.Split(t, ",") {
			if part = strings.TrimSpace(part); part != "" {
				tags = append(tags, part)
			}
		}
	case []any:
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				tags = append(tags, s)
			}
		}
	}
	return tags
}

// ParseObject returns a shallow copy of an object input or of a JSON-encoded
// object string. Anything else yields an empty map.
func ParseObject(v any) map[string]any {
	out := map[string]any{}
	obj, ok := decodeEmbedded(v).(map[string]any)
	if !ok {
		return out
	}
	for k, val := range obj {
		out[k] = val
	}
	return out
}

// vectorInput reads key as a vector, falling back to flat keyX/keyY/keyZ inputs.
func vectorInput(inputs map[string]any, key string, def models.Vector3) models.Vector3 {
	if v, ok := inputs[key]; ok {
		return ParseVector(v, def)
	}
	out := def
	out.X = NumOr(inputs, key+"X", out.X)
	out.Y = NumOr(inputs, key+"Y", out.Y)
	out.Z = NumOr(inputs, key+"Z", out.Z)
	return out
}

// scaleInput is vectorInput for scale, where a single number is uniform.
func scaleInput(inputs map[string]any) models.Vector3 {
	if v, ok := inputs["scale"]; ok {
		return ParseScale(v)
	}
	return vectorInput(inputs, "scale", models.UnitVector())
}
