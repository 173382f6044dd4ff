package leap

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/leap-of-faith/internal/core"
	"github.com/vovakirdan/leap-of-faith/internal/registry"
)

// Render draws the current game state to the screen. The field is drawn
// on its own buffer and centred, so tiles below the baseline stay hidden.
func (g *Game) Render(dst *core.Screen) {
	v := core.NewScreen(g.cfg.Field.Width, g.cfg.Field.Height)
	defer dst.Blit(v, max((dst.Width()-v.Width())/2, 0), max((dst.Height()-v.Height())/2, 0))

	g.drawBackdrop(v)
	if g.phase == PhasePreGame {
		g.drawHeroSelect(v)
		return
	}

	g.drawTerrain(v)
	g.drawHero(v)
	g.drawHUD(v)

	if g.phase == PhaseDying {
		v.DrawTextCentered(v.Height()/2, fmt.Sprintf(" FELL ON LEVEL %d ", g.world.Score.Level()), core.ColorBrightRed)
	}
	if g.paused {
		v.DrawTextCentered(v.Height()/2, " PAUSED ", core.ColorBrightWhite)
	}
}

func (g *Game) drawBackdrop(v *core.Screen) {
	b := g.world.Backdrop
	ww := g.cfg.Field.WallWidth
	wh := g.cfg.Field.WallHeight

	for y := 0; y < v.Height(); y++ {
		glyph := wallGlyph
		if int(math.Floor(float64(y)-b.Offset()))%wh == 0 {
			glyph = mortarGlyph
		}
		for x := 0; x < ww; x++ {
			v.SetColor(x, y, glyph, core.ColorGray)
			v.SetColor(v.Width()-1-x, y, glyph, core.ColorGray)
		}
	}

	for x := ww; x < v.Width()-ww; x++ {
		if (x-ww)%2 == 0 {
			v.SetColor(x, 0, sawFrames[(b.SawFrame()+x/2)%len(sawFrames)], core.ColorBrightWhite)
		} else {
			v.SetColor(x, 0, 'v', core.ColorWhite)
		}
	}
}

// faded dims a color during the death delay.
func (g *Game) faded(c core.Color) core.Color {
	switch f := g.Fade(); {
	case f > 0.66:
		return c
	case f > 0.33:
		return core.ColorGray
	default:
		return core.ColorDarkGray
	}
}

func (g *Game) drawTerrain(v *core.Screen) {
	tick := g.world.Tick
	for _, t := range g.world.Terrain.Tiles() {
		style := tileStyles[t.Kind]
		color := style.color
		switch {
		case t.Kind == KindSpike && t.DamageDealt:
			color = core.ColorRed
		case t.Kind == KindHeal && t.HealDealt:
			color = core.ColorGray
		case t.BreakArmed && (tick/4)%2 == 0:
			color = core.ColorOrange
		}
		color = g.faded(color)

		cell := t.Rect().Cell()
		shift := tick / 4
		for i := 0; i < cell.W; i++ {
			glyph := style.glyph
			switch t.Kind {
			case KindConveyorLeft:
				if (i+shift)%3 != 0 {
					glyph = '-'
				}
			case KindConveyorRight:
				if (i-shift%3+3)%3 != 0 {
					glyph = '-'
				}
			}
			for j := 0; j < cell.H; j++ {
				v.SetColor(cell.X+i, cell.Y+j, glyph, color)
			}
		}
	}
}

func (g *Game) drawHero(v *core.Screen) {
	h := g.world.Hero
	if h == nil {
		return
	}
	def := heroDefFor(h.Kind)
	color := def.info.Color
	if h.HitPlaying() && (g.world.Tick/3)%2 == 0 {
		color = core.ColorBrightRed
	}
	rows := heroSprite(h.Motion, h.Frame(), h.Facing, def.head)
	cell := h.Rect().Cell()
	v.DrawSprite(cell.X, cell.Y, rows, g.faded(color))
}

func (g *Game) drawHUD(v *core.Screen) {
	h := g.world.Hero
	x := g.cfg.Field.WallWidth + 1
	for i := 0; i < g.cfg.Hero.MaxHealth; i++ {
		r := heartEmpty
		if i < h.Health {
			r = heartFull
		}
		v.SetColor(x+i*2, 1, r, core.ColorBrightRed)
	}

	level := fmt.Sprintf("LEVEL %d", g.world.Score.Level())
	v.DrawTextColor(v.Width()-g.cfg.Field.WallWidth-1-utf8.RuneCountInString(level), 1, level, core.ColorBrightWhite)
}

func (g *Game) drawHeroSelect(v *core.Screen) {
	v.DrawTextCentered(3, "LEAP OF FAITH", core.ColorBrightYellow)
	v.DrawTextCentered(5, fmt.Sprintf("The %d-Floor Trials", g.cfg.Progress.TopLevel), core.ColorYellow)

	heroes := registry.List()
	frame := int(float64(g.preview)*g.cfg.Hero.AnimationIncrement) % motionFrames[MotionIdle]
	for i, info := range heroes {
		cx := v.Width() * (i + 1) / (len(heroes) + 1)
		def := heroDefFor(info.ID)
		rows := heroSprite(MotionIdle, frame, FacingRight, def.head)
		v.DrawSprite(cx-1, 9, rows, info.Color)

		label := fmt.Sprintf("[%s] %s", info.Key(), info.Title)
		v.DrawTextColor(cx-utf8.RuneCountInString(label)/2, 12, label, core.ColorWhite)
	}

	v.DrawTextCentered(15, fmt.Sprintf("Press 1-%d to choose a hero", len(heroes)), core.ColorBrightWhite)

	if g.played {
		if g.lastWon {
			v.DrawTextCentered(17, "You reached the bottom of the shaft!", core.ColorBrightGreen)
		} else {
			v.DrawTextCentered(17, fmt.Sprintf("Last run ended on level %d", g.lastLevel), core.ColorBrightRed)
		}
		if info, ok := registry.Lookup(g.lastHero); ok {
			v.DrawTextCentered(18, fmt.Sprintf("Enter: go again as %s", info.Title), core.ColorGray)
		}
	}

	v.DrawTextCentered(v.Height()-2, "←/→ move   P pause   Q quit", core.ColorGray)
}
