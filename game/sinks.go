package game

import "image/color"

// Sprite is the visual representation of a single entity
type Sprite interface {
	Move(pos Vector)
	Detach()
}

// Container receives new entities and returns their sprite
type Container interface {
	Attach(entity Entity) Sprite
}

// Barrel shows the turret rotation, in radians from vertical
type Barrel interface {
	SetRotation(radians float64)
}

// Status shows the level, lives and score readout
type Status interface {
	SetText(text string)
}

// Backdrop shows the level background color
type Backdrop interface {
	SetColor(clr color.Color)
}

// Modal shows a timed message over the game
type Modal interface {
	SetMessage(msg Message)
	SetOpacity(opacity float64)
}

// Message is the content of a modal
type Message struct {
	Title string
	Lines []string
}

// Sinks are the outputs the game writes into. Any of them may be nil, in
// which case writes to it are skipped. State.Attach also treats a slot
// holding a nil pointer as nil.
type Sinks struct {
	Container Container
	Barrel    Barrel
	Status    Status
	Backdrop  Backdrop
	Modal     Modal
}
