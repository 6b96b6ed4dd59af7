// Package view keeps the last values the game wrote into its sinks so that a
// host can draw them at its own pace.
package view

import (
	"image/color"
	"strings"

	"starfighter/game"
)

// Kind tells a host how to draw a sprite
type Kind int

const (
	KindShot Kind = iota
	KindEnemy
)

// Sprite is the projection of one entity
type Sprite struct {
	Kind  Kind
	Style game.Style // enemies only
	Pos   game.Vector

	// Width and Height of the entity bounds in pixels
	Width, Height float64

	scene    *Scene
	attached bool
}

// Move implements game.Sprite
func (sp *Sprite) Move(pos game.Vector) {
	sp.Pos = pos
}

// Detach implements game.Sprite
func (sp *Sprite) Detach() {
	if !sp.attached {
		return
	}
	sp.attached = false
	sp.scene.removeSprite(sp)
	if sp.scene.OnDetach != nil {
		sp.scene.OnDetach(sp)
	}
}

// Scene implements every sink of the game
type Scene struct {
	sprites []*Sprite

	// BarrelRotation is in radians from vertical
	BarrelRotation float64

	Status string

	Background color.Color

	Message      game.Message
	ModalOpacity float64

	// OnDetach is called with every sprite removed from the scene
	OnDetach func(sp *Sprite)
}

// NewScene creates an empty scene with a transparent background
func NewScene() *Scene {
	return &Scene{
		sprites:    make([]*Sprite, 0, 64),
		Background: color.Transparent,
	}
}

// Sinks returns the scene wired into every sink slot
func (s *Scene) Sinks() game.Sinks {
	return game.Sinks{
		Container: s,
		Barrel:    s,
		Status:    s,
		Backdrop:  s,
		Modal:     s,
	}
}

// Attach implements game.Container
func (s *Scene) Attach(entity game.Entity) game.Sprite {
	bounds := entity.Bounds()
	sp := &Sprite{
		Pos:      entity.Position(),
		Width:    bounds.Right - bounds.Left,
		Height:   bounds.Bottom - bounds.Top,
		scene:    s,
		attached: true,
	}

	switch e := entity.(type) {
	case *game.Shot:
		sp.Kind = KindShot
	case *game.Enemy:
		sp.Kind = KindEnemy
		sp.Style = e.Spawn.Style
	}

	s.sprites = append(s.sprites, sp)
	return sp
}

func (s *Scene) removeSprite(sp *Sprite) {
	for i, other := range s.sprites {
		if other == sp {
			s.sprites = append(s.sprites[:i], s.sprites[i+1:]...)
			return
		}
	}
}

// Sprites returns the attached sprites in attach order
func (s *Scene) Sprites() []*Sprite {
	return s.sprites
}

// SetRotation implements game.Barrel
func (s *Scene) SetRotation(radians float64) {
	s.BarrelRotation = radians
}

// SetText implements game.Status
func (s *Scene) SetText(text string) {
	s.Status = text
}

// StatusLines returns the status text split into lines
func (s *Scene) StatusLines() []string {
	if s.Status == "" {
		return nil
	}
	return strings.Split(s.Status, "\n")
}

// SetColor implements game.Backdrop
func (s *Scene) SetColor(clr color.Color) {
	s.Background = clr
}

// SetMessage implements game.Modal
func (s *Scene) SetMessage(msg game.Message) {
	s.Message = msg
}

// SetOpacity implements game.Modal
func (s *Scene) SetOpacity(opacity float64) {
	s.ModalOpacity = opacity
}

// ModalVisible reports whether the modal should be drawn
func (s *Scene) ModalVisible() bool {
	return s.ModalOpacity > 0
}
