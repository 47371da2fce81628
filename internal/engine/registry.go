package engine

import (
	"fmt"
	"sort"
)

// ComponentFactory creates an empty built-in component ready for
// Deserialize.
type ComponentFactory func() Serializable

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent makes a built-in component constructible by type name
// from scene files. Panics on duplicate names.
func RegisterComponent(typeName string, factory ComponentFactory) {
	if _, exists := componentRegistry[typeName]; exists {
		panic(fmt.Sprintf("component %q already registered", typeName))
	}
	componentRegistry[typeName] = factory
}

// CreateComponent builds a registered component and restores it from data.
// Returns nil for unknown type names.
func CreateComponent(typeName string, data map[string]any) Serializable {
	factory, ok := componentRegistry[typeName]
	if !ok {
		return nil
	}
	c := factory()
	if data != nil {
		c.Deserialize(data)
	}
	return c
}

// RegisteredComponents returns the registered type names, sorted.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
