package colorpick

// Commit records the selection that was active before the current edit as
// an undo step. Call it once an edit is finished (pointer release, text
// entry) rather than on every drag event. Clears the redo stack.
func (p *Picker) Commit() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.hsv == p.committed {
		return
	}
	if len(p.undo) >= p.cfg.HistoryLimit {
		p.undo = p.undo[1:]
	}
	p.undo = append(p.undo, p.committed)
	p.redo = p.redo[:0]
	p.committed = p.hsv
}

// Undo steps back one committed edit. An edit that was never committed is
// rolled back first. Returns false when there is nothing to undo.
func (p *Picker) Undo() bool {
	p.mu.Lock()
	var prev HSV
	switch {
	case p.hsv != p.committed:
		prev = p.committed
	case len(p.undo) > 0:
		prev = p.undo[len(p.undo)-1]
		p.undo = p.undo[:len(p.undo)-1]
		p.redo = append(p.redo, p.hsv)
		p.committed = prev
	default:
		p.mu.Unlock()
		return false
	}
	p.setLocked(prev)
	c := p.changeLocked()
	p.mu.Unlock()

	p.bus.Publish(c)
	return true
}

// Redo reapplies the last undone step.
func (p *Picker) Redo() bool {
	p.mu.Lock()
	if len(p.redo) == 0 {
		p.mu.Unlock()
		return false
	}

	next := p.redo[len(p.redo)-1]
	p.redo = p.redo[:len(p.redo)-1]
	p.undo = append(p.undo, p.committed)
	p.committed = next
	p.setLocked(next)
	c := p.changeLocked()
	p.mu.Unlock()

	p.bus.Publish(c)
	return true
}

// HistoryLen returns the number of undo and redo steps available.
func (p *Picker) HistoryLen() (undo, redo int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.undo), len(p.redo)
}
