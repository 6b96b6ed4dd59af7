package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput processes window keys and forwards the pointer to the game
func (g *Game) handleInput() error {
	// F1 toggles the debug overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	// F2 captures a CPU profile and trace
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		if err := g.profiler.CaptureProfile("manual"); err != nil {
			g.logger.Warn("profile capture skipped", "err", err)
		} else {
			g.logger.Info("profiling started", "dir", g.profiler.profilesDir)
		}
	}

	// Handle Alt+Enter or F to toggle fullscreen
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if (altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter)) || inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleFullscreen()
	}

	// Escape leaves fullscreen first, then quits
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !ebiten.IsFullscreen() {
			return ebiten.Termination
		}
		g.toggleFullscreen()
	}

	// Aim before firing so a click shoots where it points
	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.state.OnPointerMove(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.state.OnPointerClick()
	}

	// A tap aims and fires
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		g.state.OnPointerMove(float64(tx), float64(ty))
		g.state.OnPointerClick()
	}

	return nil
}

// toggleFullscreen switches between fullscreen and a window
func (g *Game) toggleFullscreen() {
	fullscreen := ebiten.IsFullscreen()
	if !fullscreen {
		// Keep the windowed size for when we come back
		g.prefs.SetWindowSize(ebiten.WindowSize())
	}
	ebiten.SetFullscreen(!fullscreen)
	g.prefs.SetFullscreen(!fullscreen)
	g.logger.Debug("fullscreen toggled", "fullscreen", !fullscreen)
}
