package view

import (
	"image/color"

	"starfighter/game"
)

var (
	// StyleColors holds the fill color of each enemy style
	StyleColors = map[game.Style]color.NRGBA{
		game.StyleRed:    {R: 230, G: 60, B: 60, A: 255},
		game.StyleGreen:  {R: 70, G: 210, B: 90, A: 255},
		game.StylePurple: {R: 170, G: 90, B: 230, A: 255},
		game.StyleBlue:   {R: 70, G: 140, B: 240, A: 255},
	}

	// BackgroundColor is drawn under the level backdrop
	BackgroundColor = color.NRGBA{R: 3, G: 5, B: 16, A: 255}

	ShotColor   = color.NRGBA{R: 255, G: 240, B: 120, A: 255}
	BarrelColor = color.NRGBA{R: 200, G: 200, B: 210, A: 255}
	TextColor   = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	ModalColor  = color.NRGBA{R: 10, G: 12, B: 28, A: 220}
)

// SpriteColor returns the fill color of a sprite
func SpriteColor(sp *Sprite) color.NRGBA {
	if sp.Kind == KindShot {
		return ShotColor
	}
	if clr, ok := StyleColors[sp.Style]; ok {
		return clr
	}
	// Fallback
	return color.NRGBA{R: 255, G: 100, B: 0, A: 255}
}
