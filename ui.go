package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"starfighter/view"
)

// drawHUD draws the status readout in the top left corner
func (g *Game) drawHUD(screen *ebiten.Image) {
	for i, line := range g.scene.StatusLines() {
		g.drawText(screen, line, hudMarginX, hudMarginY+float64(i*lineHeight), 1, view.TextColor)
	}
}

// drawModal draws the message box in the middle of the screen
func (g *Game) drawModal(screen *ebiten.Image) {
	if !g.scene.ModalVisible() {
		return
	}

	msg := g.scene.Message
	opacity := g.scene.ModalOpacity
	w, h := g.Size()

	titleHeight := lineHeight * modalTitleScale
	boxHeight := modalPadding*2 + titleHeight + modalTitleGap + float64(len(msg.Lines)*lineHeight)
	boxX := (w - modalWidth) / 2
	boxY := (h - boxHeight) / 2

	drawRect(screen, boxX, boxY, modalWidth, boxHeight, scaleAlpha(view.ModalColor, opacity))
	drawRectOutline(screen, boxX, boxY, modalWidth, boxHeight, scaleAlpha(view.TextColor, opacity))

	// Title, scaled up and centered
	y := boxY + modalPadding
	g.drawCentered(screen, msg.Title, w/2, y, modalTitleScale, scaleAlpha(view.TextColor, opacity))

	y += titleHeight + modalTitleGap
	for _, line := range msg.Lines {
		g.drawCentered(screen, line, w/2, y, 1, scaleAlpha(view.TextColor, opacity))
		y += lineHeight
	}
}

// drawDebug outlines every sprite and prints frame statistics
func (g *Game) drawDebug(screen *ebiten.Image) {
	for _, sp := range g.scene.Sprites() {
		drawRectOutline(screen, sp.Pos.X-sp.Width/2, sp.Pos.Y-sp.Height/2, sp.Width, sp.Height, colorDebug)
	}
	g.drawPredictiveTrail(screen, g.predictShotPath(), colorAimTrail)

	_, h := g.Size()
	info := fmt.Sprintf("FPS: %0.1f | TPS: %0.1f | Entities: %d | Queued: %d | Phase: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.state.Entities), len(g.state.EnemySpawns), g.state.Phase())
	if g.profiler.IsProfiling() {
		info += " | PROFILING"
	}
	ebitenutil.DebugPrintAt(screen, info, hudMarginX, int(h)-lineHeight-hudMarginY)
}

// drawText draws one line with its top left corner at x, y
func (g *Game) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, g.face, opts)
}

// drawCentered draws one line horizontally centered on cx
func (g *Game) drawCentered(screen *ebiten.Image, str string, cx, y, scale float64, clr color.Color) {
	width, _ := text.Measure(str, g.face, 0)
	g.drawText(screen, str, cx-width*scale/2, y, scale, clr)
}

// scaleAlpha returns the color with its alpha multiplied by opacity
func scaleAlpha(clr color.NRGBA, opacity float64) color.NRGBA {
	if opacity > 1 {
		opacity = 1
	}
	clr.A = uint8(float64(clr.A) * opacity)
	return clr
}
