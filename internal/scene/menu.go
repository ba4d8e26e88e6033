package scene

import "github.com/vovakirdan/axesporen/internal/core"

// Menu is the title scene. It opens with an intro panel; Escape dismisses the
// panel and Space then starts the first world.
type Menu struct {
	env          *Env
	report       *reporter
	isInit       bool
	panelVisible bool
}

// NewMenu creates a menu showing its intro panel.
func NewMenu(env *Env) *Menu {
	return &Menu{
		env:          env,
		report:       newReporter(env.Log, KindMenu),
		panelVisible: true,
	}
}

// Kind implements Scene.
func (m *Menu) Kind() Kind { return KindMenu }

// PanelVisible reports whether the intro panel is still shown.
func (m *Menu) PanelVisible() bool { return m.panelVisible }

// Advance implements Scene. The start check runs before the panel update, so
// the tick that dismisses the panel never also starts the game.
func (m *Menu) Advance(float64) Scene {
	m.init()

	next := m.change()
	m.updatePanel()

	m.drawPlanets()
	if m.panelVisible {
		m.drawPanel()
	} else {
		m.drawTitle()
	}

	return next
}

func (m *Menu) init() {
	if m.isInit {
		return
	}
	m.isInit = true
	a := m.env.Config.Audio
	m.report.check("play", m.env.Audio.Play(a.MenuTrack, a.MenuVolume))
}

func (m *Menu) change() Scene {
	if !m.env.Input.IsKeyPressed(core.KeyConfirm) || m.panelVisible {
		return nil
	}

	w, err := NewWorld(m.env, 1)
	if err != nil {
		m.env.Log.Error("cannot build first world", "err", err)
		return nil
	}
	m.report.check("stop", m.env.Audio.Stop())
	return w
}

func (m *Menu) updatePanel() {
	if m.env.Input.IsKeyPressed(core.KeyDismiss) {
		m.panelVisible = false
	}
}

func (m *Menu) drawPlanets() {
	planets := []struct {
		id   string
		pos  core.Vector2D[int]
		size core.Vector2D[int]
	}{
		{SpritePlanet0, core.V(300, 300), core.V(600, 600)},
		{SpritePlanet2, core.V(200, 100), core.V(100, 100)},
		{SpritePlanet3, core.V(500, 100), core.V(20, 20)},
		{SpritePlanet1, core.V(100, 100), core.V(200, 200)},
	}
	for _, p := range planets {
		size := p.size
		m.report.check("draw_sprite", m.env.Sprites.DrawSprite(p.id, p.pos, nil, &size))
	}
}

func (m *Menu) drawPanel() {
	win := core.Convert[int](m.env.WindowSize())
	size := core.V(win.X-64, win.Y-64)
	m.report.check("draw_sprite", m.env.Sprites.DrawSprite(SpritePanel, core.V(32, 32), nil, &size))

	lines := []struct {
		text  string
		x, y  int
		size  int
		color core.Color
	}{
		{"Axesporen", 160, 64, 30, core.ColorAmber},
		{"find the door to the next world", 96, 128, 25, core.ColorAmber},
		{"-> move with WASD, ZQSD or arrows", 96, 160, 25, core.ColorSand},
		{"-> aim with the mouse, X to fire", 96, 192, 25, core.ColorSand},
		{"-> keep away from the crocodiles", 96, 224, 25, core.ColorSand},
		{"[press escape]", 192, win.Y - 120, 30, core.ColorRed},
	}
	for _, l := range lines {
		m.report.check("draw_text", m.env.Text.DrawText(l.text, l.x, l.y, l.size, l.color))
	}
}

func (m *Menu) drawTitle() {
	h := int(m.env.WindowSize().Y)
	m.report.check("draw_text", m.env.Text.DrawText("Axesporen", 32, 64, 40, core.ColorPurple))
	m.report.check("draw_text", m.env.Text.DrawText("[press space]", 192, h-96, 32, core.ColorRed))
}
