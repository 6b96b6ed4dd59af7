package game

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the default window width in pixels
	ScreenWidth int `yaml:"screenWidth"`

	// ScreenHeight is the default window height in pixels
	ScreenHeight int `yaml:"screenHeight"`

	// BarrelOffsetY is where the barrel pivot sits relative to the bottom of the screen
	BarrelOffsetY float64 `yaml:"barrelOffsetY"`

	// BarrelLength is the barrel length in pixels; shots leave from its tip
	BarrelLength float64 `yaml:"barrelLength"`

	// BarrelMaxDegrees is how far the barrel rotates in both directions from straight up
	BarrelMaxDegrees float64 `yaml:"barrelMaxDegrees"`

	// ScenePadding is kept free on both sides of the screen when spawning
	ScenePadding float64 `yaml:"scenePadding"`

	EnemyWidth  float64 `yaml:"enemyWidth"`
	EnemyHeight float64 `yaml:"enemyHeight"`
	ShotWidth   float64 `yaml:"shotWidth"`
	ShotHeight  float64 `yaml:"shotHeight"`

	// ShotSpeed is in screen heights per second, so shots scale with the window
	ShotSpeed float64 `yaml:"shotSpeed"`

	// BonusScore is multiplied by the level accuracy when a level is finished
	BonusScore float64 `yaml:"bonusScore"`

	// KillScore is awarded per enemy shot down
	KillScore int `yaml:"killScore"`

	// StartLives is the number of enemies allowed to reach the bottom before game over
	StartLives int `yaml:"startLives"`

	// Modal durations in seconds
	LevelModalTime   float64 `yaml:"levelModalTime"`
	WhoopsModalTime  float64 `yaml:"whoopsModalTime"`
	RestartModalTime float64 `yaml:"restartModalTime"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1024,
		ScreenHeight:     768,
		BarrelOffsetY:    -30,
		BarrelLength:     38,
		BarrelMaxDegrees: 80,
		ScenePadding:     20,
		EnemyWidth:       60,
		EnemyHeight:      50,
		ShotWidth:        10,
		ShotHeight:       10,
		ShotSpeed:        0.8,
		BonusScore:       1000,
		KillScore:        50,
		StartLives:       3,
		LevelModalTime:   5,
		WhoopsModalTime:  2,
		RestartModalTime: 1,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable game
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.BarrelMaxDegrees <= 0 || c.BarrelMaxDegrees >= 180 {
		return fmt.Errorf("barrelMaxDegrees must be between 0 and 180, got %v", c.BarrelMaxDegrees)
	}
	if c.EnemyWidth <= 0 || c.EnemyHeight <= 0 {
		return fmt.Errorf("enemy size must be positive, got %vx%v", c.EnemyWidth, c.EnemyHeight)
	}
	if c.ShotWidth <= 0 || c.ShotHeight <= 0 {
		return fmt.Errorf("shot size must be positive, got %vx%v", c.ShotWidth, c.ShotHeight)
	}
	if c.ShotSpeed <= 0 {
		return fmt.Errorf("shotSpeed must be positive, got %v", c.ShotSpeed)
	}
	if c.StartLives < 1 {
		return fmt.Errorf("startLives must be at least 1, got %d", c.StartLives)
	}
	if c.LevelModalTime < 0 || c.WhoopsModalTime < 0 || c.RestartModalTime < 0 {
		return fmt.Errorf("modal times cannot be negative")
	}
	return nil
}

// BarrelMaxRadians returns BarrelMaxDegrees in radians
func (c Config) BarrelMaxRadians() float64 {
	return c.BarrelMaxDegrees * math.Pi / 180
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadAssets loads the config and the level catalog a host starts with. An
// empty path selects the built-in default.
func LoadAssets(configPath, levelsPath string) (Config, *CatalogConfig, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			return cfg, nil, err
		}
	}

	var (
		catalog *CatalogConfig
		err     error
	)
	if levelsPath != "" {
		catalog, err = LoadCatalog(levelsPath)
	} else {
		catalog, err = ParseCatalog(DefaultCatalogData())
	}
	if err != nil {
		return cfg, nil, err
	}
	return cfg, catalog, nil
}
