package engine

import "testing"

func TestGameObjectRefResolve(t *testing.T) {
	scene := NewScene("Picker")
	panel := NewGameObject("Panel")
	swatch := NewGameObject("Swatch")
	scene.AddGameObject(panel)
	scene.AddGameObject(swatch)

	var ref GameObjectRef
	if ref.IsValid() || ref.Get(scene) != nil {
		t.Error("Zero ref should be invalid and resolve to nil")
	}

	ref.Set(panel)
	if !ref.IsValid() || ref.Get(scene) != panel {
		t.Errorf("Set(panel) resolved to %v", ref.Get(scene))
	}
	if ref.Get(nil) != nil {
		t.Error("Get with nil scene should return nil")
	}

	other := GameObjectRef{UID: swatch.UID}
	if other.Get(scene) == ref.Get(scene) {
		t.Error("Different refs should return different objects")
	}

	ref.Set(nil)
	if ref.IsValid() {
		t.Error("Set(nil) should clear the ref")
	}
	ref.Set(swatch)
	ref.Clear()
	if ref.UID != 0 {
		t.Error("Clear should reset UID")
	}
}

func TestGameObjectRefDangling(t *testing.T) {
	scene := NewScene("Picker")
	panel := NewGameObject("Panel")
	scene.AddGameObject(panel)
	ref := GameObjectRef{UID: panel.UID}

	panel.Destroy()

	if !ref.IsValid() {
		t.Error("IsValid only looks at the UID")
	}
	if ref.Get(scene) != nil {
		t.Error("Ref to a destroyed object should resolve to nil")
	}
}

func TestGameObjectRefSurvivesJSONNumbers(t *testing.T) {
	// Scene files carry UIDs as float64.
	ref := GameObjectRef{UID: 12345}
	back := GameObjectRef{UID: uint64(float64(ref.UID))}
	if back != ref {
		t.Errorf("Round trip through float64 changed the ref: %v", back)
	}
}
