package scene

// TransitionFunc is called after the manager switched scenes.
type TransitionFunc func(from, to Scene)

// Manager owns the active scene. Replacing it releases the previous one, so
// two scenes are never alive at once.
type Manager struct {
	env       *Env
	current   Scene
	listeners []TransitionFunc
}

// NewManager creates a manager starting on the menu.
func NewManager(env *Env) *Manager {
	return &Manager{env: env, current: NewMenu(env)}
}

// Current returns the active scene.
func (m *Manager) Current() Scene {
	return m.current
}

// Env returns the environment shared by the scenes.
func (m *Manager) Env() *Env {
	return m.env
}

// OnTransition registers fn to run after every scene change.
func (m *Manager) OnTransition(fn TransitionFunc) {
	m.listeners = append(m.listeners, fn)
}

// Advance runs one tick of the active scene. When the scene hands over to a
// successor, the successor becomes active and is returned; otherwise nil.
func (m *Manager) Advance(dt float64) Scene {
	next := m.current.Advance(dt)
	if next == nil {
		return nil
	}

	prev := m.current
	m.current = next

	keyvals := []any{"from", prev.Kind(), "to", next.Kind()}
	switch s := next.(type) {
	case *World:
		keyvals = append(keyvals, "world", s.Level().Number)
	case *GameOver:
		keyvals = append(keyvals, "explored", s.WorldsExplored())
	}
	m.env.Log.Info("scene changed", keyvals...)

	for _, fn := range m.listeners {
		fn(prev, next)
	}
	return next
}
