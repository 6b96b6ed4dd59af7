package game

import (
	_ "embed"
	"fmt"
	"image/color"
	"math/rand"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultCatalogData []byte

// DefaultCatalogData returns the built-in level file
func DefaultCatalogData() []byte {
	return defaultCatalogData
}

// CatalogConfig is the level file: the levels in play order and the backdrop table
type CatalogConfig struct {
	Backgrounds []BackdropConfig `yaml:"backgrounds"`
	Levels      []LevelConfig    `yaml:"levels"`
}

// BackdropConfig is a translucent HSL color
type BackdropConfig struct {
	Hue        float64 `yaml:"hue"`        // degrees
	Saturation float64 `yaml:"saturation"` // 0..1
	Lightness  float64 `yaml:"lightness"`  // 0..1
	Alpha      float64 `yaml:"alpha"`      // 0..1
}

// LevelConfig is one level: its waves, spawned in order
type LevelConfig struct {
	Name  string       `yaml:"name"`
	Waves []WaveConfig `yaml:"waves"`
}

// WaveConfig expands into Count enemies built from Templates
type WaveConfig struct {
	Count     int             `yaml:"count"`
	Pick      string          `yaml:"pick"` // "cycle" (default) or "random"
	Templates []SpawnTemplate `yaml:"templates"`
}

// SpawnTemplate describes enemies of one kind. Ranges are sampled per enemy.
type SpawnTemplate struct {
	Variant    string  `yaml:"variant"` // "normal", "sine" or "snake"
	Style      Style   `yaml:"style"`
	Delay      Range   `yaml:"delay"`
	Speed      Range   `yaml:"speed"`
	SpawnWidth float64 `yaml:"spawnWidth"` // horizontal room needed, defaults to the enemy width
	SineRadius Range   `yaml:"sineRadius"`
	SineSpeed  Range   `yaml:"sineSpeed"`
	Enter      string  `yaml:"enter"` // snakes only: "right" (default), "left" or "random"
}

const (
	pickCycle  = "cycle"
	pickRandom = "random"

	enterRight  = "right"
	enterLeft   = "left"
	enterRandom = "random"
)

// Range is a number drawn uniformly from [Min, Max]. In YAML it is written
// either as a plain number or as [min, max].
type Range struct {
	Min, Max float64
}

// UnmarshalYAML accepts a scalar, a two element sequence or a {min, max} mapping
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := value.Decode(&v); err != nil {
			return err
		}
		*r = Range{Min: v, Max: v}
	case yaml.SequenceNode:
		var vs []float64
		if err := value.Decode(&vs); err != nil {
			return err
		}
		if len(vs) != 2 {
			return fmt.Errorf("line %d: range needs exactly 2 values, got %d", value.Line, len(vs))
		}
		*r = Range{Min: vs[0], Max: vs[1]}
	case yaml.MappingNode:
		var m struct {
			Min float64 `yaml:"min"`
			Max float64 `yaml:"max"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		*r = Range{Min: m.Min, Max: m.Max}
	default:
		return fmt.Errorf("line %d: cannot decode range", value.Line)
	}
	return nil
}

// Sample draws a value from the range
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// ParseCatalog parses and validates a level file
func ParseCatalog(data []byte) (*CatalogConfig, error) {
	var catalog CatalogConfig
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse level catalog YAML: %w", err)
	}
	if err := validateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("invalid level catalog: %w", err)
	}
	return &catalog, nil
}

// LoadCatalog reads a level file from disk
func LoadCatalog(path string) (*CatalogConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level catalog file %s: %w", path, err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// validateCatalog checks every level, wave and template
func validateCatalog(catalog *CatalogConfig) error {
	if len(catalog.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}

	for i, bg := range catalog.Backgrounds {
		if bg.Alpha < 0 || bg.Alpha > 1 {
			return fmt.Errorf("background %d: alpha must be between 0 and 1, got %v", i, bg.Alpha)
		}
	}

	for i, level := range catalog.Levels {
		if len(level.Waves) == 0 {
			return fmt.Errorf("level %d: at least one wave is required", i+1)
		}
		for j, wave := range level.Waves {
			if wave.Count < 1 {
				return fmt.Errorf("level %d, wave %d: count must be at least 1, got %d", i+1, j, wave.Count)
			}
			if wave.Pick != "" && wave.Pick != pickCycle && wave.Pick != pickRandom {
				return fmt.Errorf("level %d, wave %d: pick must be one of: cycle, random, got %q", i+1, j, wave.Pick)
			}
			if len(wave.Templates) == 0 {
				return fmt.Errorf("level %d, wave %d: at least one template is required", i+1, j)
			}
			for k, tmpl := range wave.Templates {
				if err := validateTemplate(tmpl); err != nil {
					return fmt.Errorf("level %d, wave %d, template %d: %w", i+1, j, k, err)
				}
			}
		}
	}
	return nil
}

func validateTemplate(tmpl SpawnTemplate) error {
	switch tmpl.Variant {
	case "normal":
	case "sine":
		if tmpl.SineRadius.Min < 0 {
			return fmt.Errorf("sineRadius cannot be negative")
		}
		if tmpl.SineSpeed.Max <= 0 {
			return fmt.Errorf("sineSpeed must be positive")
		}
	case "snake":
		switch tmpl.Enter {
		case "", enterRight, enterLeft, enterRandom:
		default:
			return fmt.Errorf("enter must be one of: right, left, random, got %q", tmpl.Enter)
		}
	default:
		return fmt.Errorf("variant must be one of: normal, sine, snake, got %q", tmpl.Variant)
	}

	for name, r := range map[string]Range{
		"delay": tmpl.Delay, "speed": tmpl.Speed,
		"sineRadius": tmpl.SineRadius, "sineSpeed": tmpl.SineSpeed,
	} {
		if r.Max < r.Min {
			return fmt.Errorf("%s range is reversed: [%v, %v]", name, r.Min, r.Max)
		}
	}
	if tmpl.Delay.Min < 0 {
		return fmt.Errorf("delay cannot be negative")
	}
	if tmpl.Speed.Min <= 0 {
		return fmt.Errorf("speed must be positive")
	}
	if tmpl.SpawnWidth < 0 {
		return fmt.Errorf("spawnWidth cannot be negative")
	}
	return nil
}

// Catalog turns level definitions into spawn queues. Spawn positions are
// random and depend on the viewport size at the time a level is created.
type Catalog struct {
	levels      []LevelConfig
	backgrounds []color.Color
	cfg         Config
	viewport    Viewport
	rng         *rand.Rand
}

// NewCatalog creates a catalog from parsed level definitions
func NewCatalog(def *CatalogConfig, cfg Config, vp Viewport, rng *rand.Rand) *Catalog {
	backgrounds := make([]color.Color, len(def.Backgrounds))
	for i, bg := range def.Backgrounds {
		backgrounds[i] = bg.Color()
	}
	return &Catalog{
		levels:      def.Levels,
		backgrounds: backgrounds,
		cfg:         cfg,
		viewport:    vp,
		rng:         rng,
	}
}

// Color converts the HSL backdrop to a color with alpha
func (b BackdropConfig) Color() color.Color {
	r, g, bl := colorful.Hsl(b.Hue, b.Saturation, b.Lightness).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(b.Alpha*255 + 0.5)}
}

// LevelCount returns the number of levels in the catalog
func (c *Catalog) LevelCount() int {
	return len(c.levels)
}

// CreateLevel returns the spawn queue for a level, numbered from 1. Levels
// past the end return an empty queue, which means the game is won.
func (c *Catalog) CreateLevel(level int) []EnemySpawn {
	if level < 1 || level > len(c.levels) {
		return []EnemySpawn{}
	}

	var spawns []EnemySpawn
	for _, wave := range c.levels[level-1].Waves {
		for i := 0; i < wave.Count; i++ {
			tmpl := wave.Templates[i%len(wave.Templates)]
			if wave.Pick == pickRandom {
				tmpl = wave.Templates[c.rng.Intn(len(wave.Templates))]
			}
			spawns = append(spawns, c.spawnFromTemplate(tmpl))
		}
	}
	return spawns
}

// Background returns the backdrop table entry at index, transparent past the end
func (c *Catalog) Background(index int) color.Color {
	if index < 0 || index >= len(c.backgrounds) {
		return color.Transparent
	}
	return c.backgrounds[index]
}

// RandomSpawnPosition picks a spot just above the screen, keeping the given
// width plus the scene padding away from both edges
func (c *Catalog) RandomSpawnPosition(spawnWidth float64) Vector {
	w, _ := c.viewport.Size()
	padding := c.cfg.ScenePadding + spawnWidth/2
	return Vector{
		X: c.rng.Float64()*(w-padding*2) + padding,
		Y: -c.cfg.EnemyHeight,
	}
}

// spawnFromTemplate draws one enemy from a template
func (c *Catalog) spawnFromTemplate(tmpl SpawnTemplate) EnemySpawn {
	spawnWidth := tmpl.SpawnWidth
	if spawnWidth == 0 {
		spawnWidth = c.cfg.EnemyWidth
	}

	spawn := EnemySpawn{
		Delay:    tmpl.Delay.Sample(c.rng),
		Style:    tmpl.Style,
		Position: c.RandomSpawnPosition(spawnWidth),
		Speed:    tmpl.Speed.Sample(c.rng),
	}

	switch tmpl.Variant {
	case "sine":
		spawn.Motion = Sine{
			Radius: tmpl.SineRadius.Sample(c.rng),
			Speed:  tmpl.SineSpeed.Sample(c.rng),
		}
	case "snake":
		fromRight := tmpl.Enter != enterLeft
		if tmpl.Enter == enterRandom {
			fromRight = c.rng.Float64() > 0.5
		}
		spawn.Motion = Snake{Lines: RandomSnakePolyline(fromRight, c.viewport, c.cfg)}
	default:
		spawn.Motion = Straight{}
	}
	return spawn
}
