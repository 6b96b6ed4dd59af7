// Package settings keeps host preferences between runs.
package settings

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name the preferences are stored under
const AppName = "starfighter"

// Storage path
const (
	settingsObject   = "settings"
	settingsProperty = "window"
)

// Settings are the window preferences of the desktop host
type Settings struct {
	// Fullscreen restores fullscreen mode on start
	Fullscreen bool `yaml:"fullscreen"`

	// WindowWidth and WindowHeight are the last windowed size; 0 uses the config size
	WindowWidth  int `yaml:"windowWidth"`
	WindowHeight int `yaml:"windowHeight"`
}

// Default returns the settings used when nothing was saved yet
func Default() Settings {
	return Settings{}
}

// Manager loads and saves settings. A nil store keeps them in memory only.
type Manager struct {
	store    *gdata.Manager
	settings Settings
	logger   *log.Logger
}

// Open opens the gdata store for AppName
func Open() (*gdata.Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}
	return store, nil
}

// NewManager creates a manager and loads saved settings. A load failure is
// logged and the defaults are used.
func NewManager(store *gdata.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Manager{
		store:    store,
		settings: Default(),
		logger:   logger,
	}
	if err := m.Load(); err != nil {
		logger.Warn("using default settings", "err", err)
	}
	return m
}

// Load reads the saved settings. Missing data leaves the defaults in place.
func (m *Manager) Load() error {
	m.settings = Default()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if loaded.WindowWidth < 0 || loaded.WindowHeight < 0 {
		return fmt.Errorf("invalid saved window size %dx%d", loaded.WindowWidth, loaded.WindowHeight)
	}

	m.settings = loaded
	m.logger.Debug("settings loaded", "fullscreen", loaded.Fullscreen, "width", loaded.WindowWidth, "height", loaded.WindowHeight)
	return nil
}

// Save writes the settings to the store
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	m.logger.Debug("settings saved")
	return nil
}

// Settings returns the current settings
func (m *Manager) Settings() Settings {
	return m.settings
}

// SetFullscreen changes the fullscreen preference; call Save to persist it
func (m *Manager) SetFullscreen(enabled bool) {
	m.settings.Fullscreen = enabled
}

// SetWindowSize remembers the windowed size. Non-positive sizes are ignored.
func (m *Manager) SetWindowSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.settings.WindowWidth = width
	m.settings.WindowHeight = height
}

// WindowSize returns the saved window size, or the given fallback when none was saved
func (m *Manager) WindowSize(fallbackWidth, fallbackHeight int) (int, int) {
	if m.settings.WindowWidth == 0 || m.settings.WindowHeight == 0 {
		return fallbackWidth, fallbackHeight
	}
	return m.settings.WindowWidth, m.settings.WindowHeight
}
