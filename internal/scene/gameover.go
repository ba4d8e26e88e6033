package scene

import (
	"fmt"

	"github.com/vovakirdan/axesporen/internal/core"
)

// GameOver shows how many worlds the run explored. Space returns to the menu.
type GameOver struct {
	env      *Env
	report   *reporter
	isInit   bool
	explored int
}

// NewGameOver creates the scene for a run that ended in world n.
func NewGameOver(env *Env, explored int) *GameOver {
	return &GameOver{
		env:      env,
		report:   newReporter(env.Log, KindGameOver),
		explored: explored,
	}
}

// Kind implements Scene.
func (g *GameOver) Kind() Kind { return KindGameOver }

// WorldsExplored returns the world number the run ended in.
func (g *GameOver) WorldsExplored() int { return g.explored }

// Advance implements Scene.
func (g *GameOver) Advance(float64) Scene {
	if !g.isInit {
		g.isInit = true
		a := g.env.Config.Audio
		g.report.check("play", g.env.Audio.Play(a.MenuTrack, a.MenuVolume))
	}

	var next Scene
	if g.env.Input.IsKeyPressed(core.KeyConfirm) {
		next = NewMenu(g.env)
	}

	h := int(g.env.WindowSize().Y)
	g.report.check("draw_text", g.env.Text.DrawText("Game Over", 32, 64, 40, core.ColorPurple))
	g.report.check("draw_text", g.env.Text.DrawText(fmt.Sprintf("explored %d worlds", g.explored), 64, 128, 30, core.ColorMaroon))
	g.report.check("draw_text", g.env.Text.DrawText("[press space]", 192, h-96, 32, core.ColorRed))

	return next
}
