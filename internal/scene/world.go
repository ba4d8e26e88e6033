package scene

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/axesporen/internal/core"
	"github.com/vovakirdan/axesporen/internal/physics"
	"github.com/vovakirdan/axesporen/internal/world"
)

// cullMargin is how far outside the window, in pixels, tiles are still drawn.
const cullMargin = 100

// entitySize is the drawn size of the player, enemies and goal.
var entitySize = core.V(32, 32)

// World is the gameplay scene of one generated level.
type World struct {
	env      *Env
	report   *reporter
	isInit   bool
	level    *Level
	camera   core.Vec2
	cursor   core.Vec2
	blocking mapset.Set[world.TileType]
}

// NewWorld generates level n and places the camera and aim cursor around the
// player.
func NewWorld(env *Env, n int) (*World, error) {
	level, err := BuildLevel(env.Config, n, env.Rand)
	if err != nil {
		return nil, err
	}

	start := level.Player.Position()
	return &World{
		env:      env,
		report:   newReporter(env.Log, KindWorld),
		level:    level,
		camera:   start,
		cursor:   start.Add(core.V(env.Config.Rules.CursorMin, 0)),
		blocking: physics.Blocking(),
	}, nil
}

// Kind implements Scene.
func (w *World) Kind() Kind { return KindWorld }

// Level returns the level being played.
func (w *World) Level() *Level { return w.level }

// Camera returns the top-left corner of the view in world pixels.
func (w *World) Camera() core.Vec2 { return w.camera }

// Cursor returns the aim point in world pixels.
func (w *World) Cursor() core.Vec2 { return w.cursor }

// Advance implements Scene. The order is fixed: player, enemies, cursor,
// camera, transitions (goal before enemies), then drawing.
func (w *World) Advance(dt float64) Scene {
	w.init()

	w.updatePlayer(dt)
	w.updateEnemies(dt)
	w.updateCursor()
	w.updateCamera()
	w.fire()

	next := w.transition()

	w.draw()

	return next
}

func (w *World) init() {
	if w.isInit {
		return
	}
	w.isInit = true
	a := w.env.Config.Audio
	w.report.check("play", w.env.Audio.Play(a.WorldTrack, a.WorldVolume))
}

// updatePlayer moves the player axis by axis. Each pressed direction is
// tried on its own and kept only if it does not run into a wall.
func (w *World) updatePlayer(dt float64) {
	p := w.level.Player
	step := p.Speed * dt

	moves := []struct {
		key string
		d   core.Vec2
	}{
		{core.KeyUp, core.V(0, -step)},
		{core.KeyRight, core.V(step, 0)},
		{core.KeyDown, core.V(0, step)},
		{core.KeyLeft, core.V(-step, 0)},
	}
	for _, m := range moves {
		if w.env.Input.IsKeyPressed(m.key) {
			p.TryMove(m.d, w.level.Terrain, w.blocking)
		}
	}
}

func (w *World) updateEnemies(dt float64) {
	target := w.level.Player.Position()
	for _, e := range w.level.Enemies {
		e.Update(dt, target)
	}
}

// updateCursor keeps the aim point on the ray from the player to the mouse,
// between cursor_min and cursor_max away from the player.
func (w *World) updateCursor() {
	player := w.level.Player.Position()
	mouse := w.env.Input.MousePosition().Add(w.camera)

	toMouse := core.FromPoints(player, mouse)
	dir, ok := toMouse.Normalized()
	if !ok {
		return
	}
	rules := w.env.Config.Rules
	dist := core.ClampF(toMouse.Magnitude(), rules.CursorMin, rules.CursorMax)
	w.cursor = player.Add(dir.Scale(dist))
}

func (w *World) updateCamera() {
	w.camera = w.level.Player.Position().Sub(w.env.WindowSize().Scale(0.5))
}

func (w *World) fire() {
	if w.env.Input.IsKeyPressed(core.KeyFire) {
		w.report.check("play_sound", w.env.Audio.PlaySound(w.env.Config.Audio.FireEffect, 1))
	}
}

func (w *World) transition() Scene {
	rules := w.env.Config.Rules
	body := w.level.Player.Body

	if body.ProximityCollides(w.level.Goal.Position, rules.GoalDistance) {
		next, err := NewWorld(w.env, w.level.Number+1)
		if err != nil {
			w.env.Log.Error("cannot build next world", "world", w.level.Number+1, "err", err)
			return nil
		}
		return next
	}

	for _, e := range w.level.Enemies {
		if body.ProximityCollides(e.Position(), rules.EnemyDistance) {
			w.report.check("stop", w.env.Audio.Stop())
			return NewGameOver(w.env, w.level.Number)
		}
	}
	return nil
}

// draw renders the frame. It reads gameplay state and never changes it.
func (w *World) draw() {
	w.drawTerrain()
	w.drawEntity(SpriteGoal, w.level.Goal.Position)
	w.drawEntity(SpritePlayer, w.level.Player.Position())
	for _, e := range w.level.Enemies {
		w.drawEntity(SpriteEnemy, e.Position())
	}
	w.drawEntity(SpriteCursor, w.cursor)
	w.drawHUD()
}

// drawTerrain draws the chunks around the player, skipping tiles outside the
// window plus a margin.
func (w *World) drawTerrain() {
	size := w.env.WindowSize()
	ts := w.level.Terrain.TileSize()
	dest := core.V(ts, ts)
	view := core.NewRect(1-cullMargin, 1-cullMargin, int(size.X)+cullMargin-1, int(size.Y)+cullMargin-1)

	for _, chunk := range w.level.Terrain.ChunksAround(w.level.Player.Position()) {
		chunk.ForEach(func(t world.Tile) {
			pos := core.Convert[int](t.Position.Scale(float64(ts)).Sub(w.camera))
			if !view.Contains(pos.X, pos.Y) {
				return
			}
			w.report.check("draw_sprite", w.env.Sprites.DrawSprite(TileSprite(t.Type), pos, nil, &dest))
		})
	}
}

// drawEntity draws a sprite centred on a world position.
func (w *World) drawEntity(id string, at core.Vec2) {
	half := core.Convert[float64](entitySize).Scale(0.5)
	pos := core.Convert[int](at.Sub(w.camera).Sub(half))
	dest := entitySize
	w.report.check("draw_sprite", w.env.Sprites.DrawSprite(id, pos, nil, &dest))
}

func (w *World) drawHUD() {
	const fontSize = 14

	panel := core.V(400, 100)
	w.report.check("draw_sprite", w.env.Sprites.DrawSprite(SpritePanel, core.V(0, 0), nil, &panel))

	lines := []string{
		fmt.Sprintf("count enemies = %d", len(w.level.Enemies)),
		fmt.Sprintf("lvl %d", w.level.Number),
	}
	for i, line := range lines {
		w.report.check("draw_text", w.env.Text.DrawText(line, 32, fontSize*i+32, fontSize, core.ColorMagenta))
	}
}
