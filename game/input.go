package game

import "math"

// Phase is the input state of the game
type Phase int

const (
	// PhasePlaying accepts shots
	PhasePlaying Phase = iota

	// PhaseModalWait shows a timed modal; clicks are ignored
	PhaseModalWait

	// PhaseGameOver waits for a click to restart
	PhaseGameOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseModalWait:
		return "modal-wait"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Phase returns the current input state
func (s *State) Phase() Phase {
	switch {
	case s.IsGameOver:
		return PhaseGameOver
	case s.ModalTime > 0:
		return PhaseModalWait
	default:
		return PhasePlaying
	}
}

// OnPointerMove aims the barrel at the pointer. Aiming works in every phase.
func (s *State) OnPointerMove(x, y float64) {
	anchor := BarrelAnchor(s.viewport, s.cfg)
	angle := math.Atan2(y-anchor.Y, x-anchor.X)
	s.BarrelAngle = ClampBarrelAngle(angle, s.cfg.BarrelMaxRadians())
}

// OnPointerClick restarts a finished game, or fires a shot when no modal is showing
func (s *State) OnPointerClick() {
	if s.IsGameOver {
		s.Restart()
		return
	}
	if s.ModalTime > 0 {
		return
	}

	s.ShotCount++
	s.AddEntity(NewShot(s.BarrelAngle, s.viewport, s.cfg))
}
