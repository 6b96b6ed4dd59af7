package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Style is the visual style of an enemy
type Style int

const (
	StyleRed Style = iota
	StyleGreen
	StylePurple
	StyleBlue
	StyleCount // Total number of styles
)

var styleNames = [StyleCount]string{"red", "green", "purple", "blue"}

// String returns the lower case style name
func (s Style) String() string {
	if s < 0 || s >= StyleCount {
		return fmt.Sprintf("style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle looks up a style by name, ignoring case
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("unknown enemy style %q", name)
}

// UnmarshalYAML decodes a style from its name
func (s *Style) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	style, err := ParseStyle(name)
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// Motion is the movement pattern of an enemy. The set of implementations is
// closed: Straight, Sine and Snake.
type Motion interface {
	// Variant returns the pattern name used in level files and logs
	Variant() string
	isMotion()
}

// Straight enemies move straight down
type Straight struct{}

// Sine enemies move down while swinging horizontally around their spawn X
type Sine struct {
	Radius float64 // pixels
	Speed  float64 // oscillation rate
}

// Snake enemies follow a polyline; position is a function of age only
type Snake struct {
	Lines []Vector
}

func (Straight) Variant() string { return "normal" }
func (Sine) Variant() string     { return "sine" }
func (Snake) Variant() string    { return "snake" }

func (Straight) isMotion() {}
func (Sine) isMotion()     {}
func (Snake) isMotion()    {}

// variantOf names a motion; a missing motion moves straight down
func variantOf(m Motion) string {
	if m == nil {
		return Straight{}.Variant()
	}
	return m.Variant()
}

// EnemySpawn describes one enemy before it enters the screen
type EnemySpawn struct {
	// Position is where the enemy appears
	Position Vector

	// Delay is the time in seconds after the previous spawn before this one appears
	Delay float64

	Style Style

	// Speed is in screen heights per second
	Speed float64

	Motion Motion
}
