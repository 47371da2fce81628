package engine

// GameObjectRef is a serializable reference to a GameObject by UID. Scripts
// hold refs instead of pointers so scene files can store them.
//
//	type PanelToggle struct {
//	    engine.BaseComponent
//	    Target engine.GameObjectRef
//	}
//
//	func (p *PanelToggle) Toggle() {
//	    if panel := p.Target.Get(p.GetGameObject().Scene); panel != nil {
//	        panel.SetActive(!panel.Active)
//	    }
//	}
type GameObjectRef struct {
	UID uint64 // 0 means none
}

// Get resolves the ref in scene. Empty refs and objects that left the
// scene resolve to nil.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the ref is set. It does not consult any scene.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
