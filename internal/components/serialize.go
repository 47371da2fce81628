package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Scene files go through encoding/json, so every number arrives as
// float64 and every array as []any.

// colorToAny uses []int: encoding/json would write []uint8 as base64.
func colorToAny(c rl.Color) []int {
	return []int{int(c.R), int(c.G), int(c.B), int(c.A)}
}

func anyToColor(v any) (rl.Color, bool) {
	arr, ok := v.([]any)
	if !ok || len(arr) < 4 {
		return rl.Color{}, false
	}
	var out [4]uint8
	for i := range out {
		f, ok := arr[i].(float64)
		if !ok {
			return rl.Color{}, false
		}
		out[i] = uint8(f)
	}
	return rl.NewColor(out[0], out[1], out[2], out[3]), true
}

func vec2ToAny(v rl.Vector2) []float32 {
	return []float32{v.X, v.Y}
}

func anyToVec2(v any) (rl.Vector2, bool) {
	arr, ok := v.([]any)
	if !ok || len(arr) < 2 {
		return rl.Vector2{}, false
	}
	x, okX := arr[0].(float64)
	y, okY := arr[1].(float64)
	if !okX || !okY {
		return rl.Vector2{}, false
	}
	return rl.Vector2{X: float32(x), Y: float32(y)}, true
}

func readColor(data map[string]any, key string, dst *rl.Color) {
	if c, ok := anyToColor(data[key]); ok {
		*dst = c
	}
}

func readVec2(data map[string]any, key string, dst *rl.Vector2) {
	if v, ok := anyToVec2(data[key]); ok {
		*dst = v
	}
}

func readFloat32(data map[string]any, key string, dst *float32) {
	if v, ok := data[key].(float64); ok {
		*dst = float32(v)
	}
}

func readInt32(data map[string]any, key string, dst *int32) {
	if v, ok := data[key].(float64); ok {
		*dst = int32(v)
	}
}

func readBool(data map[string]any, key string, dst *bool) {
	if v, ok := data[key].(bool); ok {
		*dst = v
	}
}

func readString(data map[string]any, key string, dst *string) {
	if v, ok := data[key].(string); ok {
		*dst = v
	}
}
