package engine

import (
	"fmt"
	"sort"
)

// ScriptFactory builds a script component from the props stored in a scene
// file. Numbers arrive as float64.
type ScriptFactory func(props map[string]any) Component

// ScriptSerializer returns the props of c, or nil if c is not the script
// it was registered for.
type ScriptSerializer func(c Component) map[string]any

// ScriptApplier sets one prop on c and reports whether it did.
type ScriptApplier func(c Component, propName string, value any) bool

type scriptEntry struct {
	factory    ScriptFactory
	serializer ScriptSerializer
	applier    ScriptApplier
	fieldTypes map[string]string
}

var scriptRegistry = map[string]scriptEntry{}

func registerScript(name string, e scriptEntry) {
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = e
}

// RegisterScript registers a named script. serializer may be nil for
// scripts that are never saved. Registering a name twice panics.
func RegisterScript(name string, factory ScriptFactory, serializer ScriptSerializer) {
	registerScript(name, scriptEntry{factory: factory, serializer: serializer})
}

// RegisterScriptWithApplier also registers a prop applier. Scene loading
// uses it to patch props after every object exists.
func RegisterScriptWithApplier(name string, factory ScriptFactory, serializer ScriptSerializer, applier ScriptApplier) {
	registerScript(name, scriptEntry{factory: factory, serializer: serializer, applier: applier})
}

// RegisterScriptWithMetadata also records the declared type of each
// prop, e.g. "GameObjectRef" for props holding an object UID.
func RegisterScriptWithMetadata(name string, factory ScriptFactory, serializer ScriptSerializer, applier ScriptApplier, fieldTypes map[string]string) {
	registerScript(name, scriptEntry{factory: factory, serializer: serializer, applier: applier, fieldTypes: fieldTypes})
}

// scriptOf finds the registration whose serializer claims c.
func scriptOf(c Component) (string, scriptEntry, map[string]any, bool) {
	for name, e := range scriptRegistry {
		if e.serializer == nil {
			continue
		}
		if props := e.serializer(c); props != nil {
			return name, e, props, true
		}
	}
	return "", scriptEntry{}, nil, false
}

func CreateScript(name string, props map[string]any) Component {
	e, ok := scriptRegistry[name]
	if !ok {
		return nil
	}
	return e.factory(props)
}

// SerializeScript returns the registered name and props of c.
func SerializeScript(c Component) (string, map[string]any, bool) {
	name, _, props, ok := scriptOf(c)
	return name, props, ok
}

// GetScriptFieldType returns the declared type of a script prop, or "".
func GetScriptFieldType(c Component, propName string) string {
	_, e, _, ok := scriptOf(c)
	if !ok {
		return ""
	}
	return e.fieldTypes[propName]
}

// GetRegisteredScripts returns the registered script names, sorted.
func GetRegisteredScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ApplyScriptProperty(c Component, propName string, value any) bool {
	for _, e := range scriptRegistry {
		if e.applier != nil && e.applier(c, propName, value) {
			return true
		}
	}
	return false
}

func HasScriptApplier(c Component) bool {
	_, e, _, ok := scriptOf(c)
	return ok && e.applier != nil
}
