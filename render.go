package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"starfighter/game"
	"starfighter/view"
)

// drawScene draws the backdrop, the entities and the barrel
func (g *Game) drawScene(screen *ebiten.Image) {
	w, h := g.Size()

	screen.Fill(view.BackgroundColor)
	drawRect(screen, 0, 0, w, h, g.scene.Background)
	g.drawDust(screen)

	for _, sp := range g.scene.Sprites() {
		switch sp.Kind {
		case view.KindEnemy:
			drawEnemy(screen, sp)
		default:
			drawRect(screen, sp.Pos.X-sp.Width/2, sp.Pos.Y-sp.Height/2, sp.Width, sp.Height, view.SpriteColor(sp))
		}
	}

	g.explosions.Draw(screen)
	g.drawBarrel(screen)
}

// drawEnemy draws an enemy ship pointing down: wings across the top of its
// bounds, a hull down the middle and a cockpit
func drawEnemy(dst *ebiten.Image, sp *view.Sprite) {
	clr := view.SpriteColor(sp)
	left := sp.Pos.X - sp.Width/2
	top := sp.Pos.Y - sp.Height/2

	// Wings
	drawRect(dst, left, top, sp.Width, sp.Height*0.35, clr)

	// Hull
	hullWidth := sp.Width * enemyHullRatio
	drawRect(dst, sp.Pos.X-hullWidth/2, top, hullWidth, sp.Height, clr)

	// Cockpit
	vector.DrawFilledCircle(dst, float32(sp.Pos.X), float32(sp.Pos.Y+sp.Height*0.15),
		float32(sp.Width*enemyCockpitRatio), colorCockpit, true)
}

// drawBarrel draws the cannon at the bottom of the screen. The barrel sink
// rotation is measured from vertical.
func (g *Game) drawBarrel(screen *ebiten.Image) {
	cfg := g.state.Config()
	anchor := game.BarrelAnchor(g, cfg)
	tip := anchor.Add(game.Direction(g.scene.BarrelRotation - math.Pi/2).Scale(cfg.BarrelLength))

	vector.StrokeLine(screen, float32(anchor.X), float32(anchor.Y), float32(tip.X), float32(tip.Y),
		barrelWidth, view.BarrelColor, true)
	vector.DrawFilledCircle(screen, float32(anchor.X), float32(anchor.Y), barrelBaseRadius, view.BarrelColor, true)
}

// drawRect draws a filled rectangle
func drawRect(dst *ebiten.Image, x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// drawRectOutline draws an outlined rectangle
func drawRectOutline(dst *ebiten.Image, x, y, width, height float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(width), float32(height), 1, clr, false)
}
