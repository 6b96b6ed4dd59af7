package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"starfighter/game"
)

// predictShotPath returns where a shot fired right now would be at each
// trail step, stopping once it leaves the screen
func (g *Game) predictShotPath() []game.Vector {
	w, h := g.Size()
	shot := game.NewShot(g.state.BarrelAngle, g, g.state.Config())

	positions := make([]game.Vector, 0, aimTrailSegmentCount+1)
	pos := shot.Position()
	positions = append(positions, pos)

	for i := 0; i < aimTrailSegmentCount; i++ {
		pos = pos.Add(shot.Velocity.Scale(aimTrailStep))
		positions = append(positions, pos)
		if pos.X < 0 || pos.X > w || pos.Y < 0 || pos.Y > h {
			break
		}
	}
	return positions
}

// drawPredictiveTrail draws the predicted shot path as segments with fading opacity
func (g *Game) drawPredictiveTrail(screen *ebiten.Image, positions []game.Vector, trailColor color.NRGBA) {
	if len(positions) <= 1 {
		return
	}

	for i := 0; i < len(positions)-1; i++ {
		p1, p2 := positions[i], positions[i+1]

		// Earlier segments are more opaque, later segments fade out
		progress := float64(i) / float64(len(positions)-1)
		fadedColor := scaleAlpha(trailColor, 1.0-progress*0.8)

		vector.StrokeLine(screen, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), 1, fadedColor, true)
	}
}
