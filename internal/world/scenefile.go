package world

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gridpaint/internal/engine"
	"gridpaint/internal/logx"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	UID        uint64           `json:"uid,omitempty"`
	Name       string           `json:"name"`
	Tags       []string         `json:"tags,omitempty"`
	Active     *bool            `json:"active,omitempty"`
	Position   [3]float32       `json:"position"`
	Rotation   [3]float32       `json:"rotation"`
	Scale      [3]float32       `json:"scale"`
	Components []map[string]any `json:"components,omitempty"`
	Children   []ObjectDef      `json:"children,omitempty"`
}

const scriptType = "Script"

// --- Loading ---

// LoadScene reads a scene file into w.Scene.
func (w *World) LoadScene(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	defer f.Close()
	if err := w.ReadScene(f); err != nil {
		return fmt.Errorf("load scene %s: %w", path, err)
	}
	return nil
}

// ReadScene decodes a scene from r and adds its objects to w.Scene.
// Services are bound before any object starts.
func (w *World) ReadScene(r io.Reader) error {
	var sf SceneFile
	if err := json.NewDecoder(r).Decode(&sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	// Objects without a stored UID get fresh ones above every stored UID.
	engine.EnsureUIDAbove(maxUID(sf.Objects))

	l := loader{byName: make(map[string]*engine.GameObject)}
	roots := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, def := range sf.Objects {
		roots = append(roots, l.build(def))
	}
	l.resolveRefs()

	for _, g := range roots {
		w.Scene.AddGameObject(g)
	}
	logx.Logger().Info("world: scene loaded", "objects", l.count, "unknown", l.unknown)
	return nil
}

func maxUID(defs []ObjectDef) uint64 {
	var m uint64
	for _, d := range defs {
		m = max(m, d.UID, maxUID(d.Children))
	}
	return m
}

type pendingRef struct {
	comp engine.Component
	prop string
	name string
}

type loader struct {
	byName  map[string]*engine.GameObject
	pending []pendingRef
	count   int
	unknown int
}

func (l *loader) build(def ObjectDef) *engine.GameObject {
	g := engine.NewGameObject(def.Name)
	if def.UID != 0 {
		g.UID = def.UID
	}
	if _, dup := l.byName[def.Name]; !dup {
		l.byName[def.Name] = g
	}
	l.count++

	g.Tags = def.Tags
	if def.Active != nil {
		g.Active = *def.Active
	}
	g.Transform.Position = rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]}
	g.Transform.Rotation = rl.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]}

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = rl.Vector3{X: def.Scale[0], Y: def.Scale[1], Z: def.Scale[2]}
	}

	for _, data := range def.Components {
		if c := l.component(data); c != nil {
			g.AddComponent(c)
		}
	}
	for _, child := range def.Children {
		g.AddChild(l.build(child))
	}
	return g
}

func (l *loader) component(data map[string]any) engine.Component {
	typeName, _ := data["type"].(string)
	if typeName != scriptType {
		if c := engine.CreateComponent(typeName, data); c != nil {
			return c
		}
		l.unknown++
		logx.Logger().Warn("world: unknown component", "type", typeName)
		return nil
	}

	name, _ := data["name"].(string)
	props, _ := data["props"].(map[string]any)
	c := engine.CreateScript(name, props)
	if c == nil {
		l.unknown++
		logx.Logger().Warn("world: unknown script", "name", name)
		return nil
	}
	// Object references may be written as names; they are resolved once
	// every object exists.
	for prop, v := range props {
		if s, ok := v.(string); ok && engine.GetScriptFieldType(c, prop) == "GameObjectRef" {
			l.pending = append(l.pending, pendingRef{comp: c, prop: prop, name: s})
		}
	}
	return c
}

func (l *loader) resolveRefs() {
	for _, p := range l.pending {
		target, ok := l.byName[p.name]
		if !ok {
			logx.Logger().Warn("world: unresolved reference", "prop", p.prop, "name", p.name)
			continue
		}
		engine.ApplyScriptProperty(p.comp, p.prop, float64(target.UID))
	}
}

// --- Saving ---

// SaveScene writes every root object of w.Scene and its children.
func (w *World) SaveScene(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	if err := w.WriteScene(f); err != nil {
		f.Close()
		return fmt.Errorf("write scene %s: %w", path, err)
	}
	return f.Close()
}

func (w *World) WriteScene(out io.Writer) error {
	var sf SceneFile
	for _, g := range w.Scene.Roots() {
		sf.Objects = append(sf.Objects, encodeObject(g))
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sf); err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	return nil
}

func encodeObject(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		UID:      g.UID,
		Name:     g.Name,
		Tags:     g.Tags,
		Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
		Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
		Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
	}
	if !g.Active {
		inactive := false
		def.Active = &inactive
	}
	for _, c := range g.Components() {
		if data := serializeComponent(c); data != nil {
			def.Components = append(def.Components, data)
		}
	}
	for _, child := range g.Children {
		def.Children = append(def.Children, encodeObject(child))
	}
	return def
}

func serializeComponent(c engine.Component) map[string]any {
	if s, ok := c.(engine.Serializable); ok {
		data := s.Serialize()
		data["type"] = s.TypeName()
		return data
	}
	if name, props, ok := engine.SerializeScript(c); ok {
		return map[string]any{"type": scriptType, "name": name, "props": props}
	}
	return nil
}
