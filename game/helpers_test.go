package game

import (
	"image/color"
	"math/rand"
	"testing"
)

// recordingSinks remembers everything the game wrote
type recordingSinks struct {
	attached int
	detached int
	rotation float64
	status   string
	color    color.Color
	message  Message
	opacity  float64
}

type recordingSprite struct {
	sinks *recordingSinks
	pos   Vector
}

func (sp *recordingSprite) Move(pos Vector) { sp.pos = pos }
func (sp *recordingSprite) Detach()         { sp.sinks.detached++ }

func (r *recordingSinks) Attach(entity Entity) Sprite {
	r.attached++
	return &recordingSprite{sinks: r, pos: entity.Position()}
}

func (r *recordingSinks) SetRotation(radians float64) { r.rotation = radians }
func (r *recordingSinks) SetText(text string)         { r.status = text }
func (r *recordingSinks) SetColor(clr color.Color)    { r.color = clr }
func (r *recordingSinks) SetMessage(msg Message)      { r.message = msg }
func (r *recordingSinks) SetOpacity(opacity float64)  { r.opacity = opacity }

func (r *recordingSinks) sinks() Sinks {
	return Sinks{Container: r, Barrel: r, Status: r, Backdrop: r, Modal: r}
}

var testViewport = FixedViewport{Width: 1024, Height: 768}

func newTestCatalog(t *testing.T, seed int64) *Catalog {
	t.Helper()

	def, err := ParseCatalog(DefaultCatalogData())
	if err != nil {
		t.Fatalf("ParseCatalog() failed: %v", err)
	}
	return NewCatalog(def, DefaultConfig(), testViewport, rand.New(rand.NewSource(seed)))
}

// newTestState returns a level 1 game with recording sinks attached
func newTestState(t *testing.T) (*State, *recordingSinks) {
	t.Helper()

	state := NewState(DefaultConfig(), newTestCatalog(t, 1), testViewport, nil)
	rec := &recordingSinks{}
	state.Attach(rec.sinks())
	return state, rec
}

func straightSpawn(x, y float64) EnemySpawn {
	return EnemySpawn{
		Position: Vector{X: x, Y: y},
		Delay:    1,
		Style:    StyleRed,
		Speed:    0.1,
		Motion:   Straight{},
	}
}

func almostEqual(a, b float64) bool {
	const epsilon = 1e-9
	d := a - b
	return d < epsilon && d > -epsilon
}
