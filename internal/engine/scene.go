package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject

	// OnObjectAdded fires for every object added to the scene, including
	// ones spawned at runtime, before the object is started. Subscribe here
	// instead of scanning the scene periodically for new objects.
	OnObjectAdded EventWithArg[*GameObject]
	// OnObjectRemoved fires after an object left the scene.
	OnObjectRemoved EventWithArg[*GameObject]

	started bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

// AddGameObject adds g and its children to the scene. Objects added after
// Start are started immediately, right after OnObjectAdded listeners ran.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	if _, exists := s.uidMap[g.UID]; exists {
		return
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
	s.OnObjectAdded.Invoke(g)
	if s.started {
		g.Start()
	}
	for _, child := range g.Children {
		s.AddGameObject(child)
	}
}

// RemoveGameObject removes g and its children from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.uidMap, g.UID)
			if g.Scene == s {
				g.Scene = nil
			}
			s.OnObjectRemoved.Invoke(g)
			return
		}
	}
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	if uid == 0 {
		return nil
	}
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Roots returns the objects without a parent, in insertion order.
func (s *Scene) Roots() []*GameObject {
	var roots []*GameObject
	for _, g := range s.GameObjects {
		if g.Parent == nil {
			roots = append(roots, g)
		}
	}
	return roots
}

func (s *Scene) Start() {
	s.started = true
	for _, g := range append([]*GameObject(nil), s.GameObjects...) {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range append([]*GameObject(nil), s.GameObjects...) {
		if g.ActiveInHierarchy() {
			g.Update(deltaTime)
		}
	}
}
