package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"starfighter/game"
)

// dustMote is one background star. Positions are relative to the screen
// size so a resize keeps the field evenly spread.
type dustMote struct {
	pos   game.Vector // 0..1 on both axes
	speed float64     // screen heights per second
	size  float64
}

// newDust scatters count motes over the screen
func newDust(count int, rng *rand.Rand) []dustMote {
	dust := make([]dustMote, count)
	for i := range dust {
		dust[i] = dustMote{
			pos:   game.Vector{X: rng.Float64(), Y: rng.Float64()},
			speed: dustBaseSpeed * (0.5 + rng.Float64()),
			size:  0.5 + rng.Float64()*1.5,
		}
	}
	return dust
}

// updateDust drifts the dust down, wrapping at the bottom edge
func (g *Game) updateDust(dt float64) {
	for i := range g.dust {
		g.dust[i].pos.Y += g.dust[i].speed * dt
		if g.dust[i].pos.Y > 1 {
			g.dust[i].pos.Y -= 1
		}
	}
}

// drawDust draws the dust field
func (g *Game) drawDust(screen *ebiten.Image) {
	w, h := g.Size()
	for _, d := range g.dust {
		vector.DrawFilledCircle(screen, float32(d.pos.X*w), float32(d.pos.Y*h), float32(d.size), colorDust, false)
	}
}
