package game

import (
	"io"
	"math"
	"reflect"

	"github.com/charmbracelet/log"
)

// ModalForever is the modal time of the win and game over messages, which stay until a click
var ModalForever = math.Inf(1)

// State is the whole mutable game: one per running game. All methods must be
// called from the same goroutine; the host serializes frames and input.
type State struct {
	// Sinks the game renders into
	Sinks Sinks

	// BarrelAngle in radians from the positive x axis, clamped around straight up
	BarrelAngle float64

	// Entities in insertion order. Killed entities stay until PruneDeadEntities.
	Entities []Entity

	// Simulation clock in seconds since the run started
	LastUpdateTime float64
	LastSpawnTime  float64

	// ShotCount is the number of shots fired this level
	ShotCount int

	// EnemyCount is the number of enemies the level started with
	EnemyCount int

	// EnemySpawns is the queue of enemies not spawned yet
	EnemySpawns []EnemySpawn

	Lives int
	Level int
	Score int

	// ModalTime is how long the modal stays visible; 0 hides it
	ModalTime float64

	IsGameOver bool

	// levelStarted is set once the current level's first enemy has spawned
	levelStarted bool

	cfg      Config
	viewport Viewport
	catalog  *Catalog
	logger   *log.Logger
}

// NewState creates a game at level 1 with no sinks attached. A nil logger discards output.
func NewState(cfg Config, catalog *Catalog, vp Viewport, logger *log.Logger) *State {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &State{
		BarrelAngle: -math.Pi / 2,
		Entities:    make([]Entity, 0, 64),
		cfg:         cfg,
		viewport:    vp,
		catalog:     catalog,
		logger:      logger,
	}
	s.resetProgress()
	return s
}

// resetProgress loads level 1 and resets lives, score and counters
func (s *State) resetProgress() {
	s.Level = 1
	s.Score = 0
	s.Lives = s.cfg.StartLives
	s.ShotCount = 0
	s.EnemySpawns = s.catalog.CreateLevel(s.Level)
	s.EnemyCount = len(s.EnemySpawns)
	s.IsGameOver = false
	s.levelStarted = false
}

// Config returns the configuration the game was created with
func (s *State) Config() Config {
	return s.cfg
}

// Attach connects the sinks and paints the opening backdrop. A slot holding
// a nil pointer is treated as empty.
func (s *State) Attach(sinks Sinks) {
	s.Sinks = Sinks{
		Container: nilIfTyped(sinks.Container),
		Barrel:    nilIfTyped(sinks.Barrel),
		Status:    nilIfTyped(sinks.Status),
		Backdrop:  nilIfTyped(sinks.Backdrop),
		Modal:     nilIfTyped(sinks.Modal),
	}
	s.paintBackdrop(s.Level - 1)
}

// Restart starts over from level 1, keeping the attached sinks. Play resumes
// after a short grace period.
func (s *State) Restart() {
	s.resetProgress()
	s.ModalTime = s.cfg.RestartModalTime
	s.paintBackdrop(s.Level - 1)
	s.logger.Info("game restarted", "spawns", len(s.EnemySpawns))
}

// ReloadUnspawnedLevel draws the current level's queue again when none of
// its enemies has spawned yet, so spawn positions fit a viewport that
// changed size. It reports whether the queue was rebuilt.
func (s *State) ReloadUnspawnedLevel() bool {
	if s.levelStarted || s.IsGameOver {
		return false
	}

	s.EnemySpawns = s.catalog.CreateLevel(s.Level)
	s.EnemyCount = len(s.EnemySpawns)
	s.logger.Debug("level queue rebuilt", "level", s.Level, "spawns", len(s.EnemySpawns))
	return true
}

// AddEntity puts an entity into play. Nothing happens until a container is attached.
func (s *State) AddEntity(entity Entity) {
	if s.Sinks.Container == nil {
		return
	}

	b := entity.base()
	b.sprite = s.Sinks.Container.Attach(entity)
	s.Entities = append(s.Entities, entity)
}

// KillAllEntities kills every entity in play
func (s *State) KillAllEntities() {
	for _, entity := range s.Entities {
		KillEntity(entity)
	}
}

// PruneDeadEntities drops killed entities, keeping the order of the rest
func (s *State) PruneDeadEntities() {
	live := s.Entities[:0]
	for _, entity := range s.Entities {
		if !entity.IsDead() {
			live = append(live, entity)
		}
	}
	for i := len(live); i < len(s.Entities); i++ {
		s.Entities[i] = nil
	}
	s.Entities = live
}

// liveEnemies returns the enemies that are in play and not killed
func (s *State) liveEnemies() []*Enemy {
	var enemies []*Enemy
	for _, entity := range s.Entities {
		if enemy, ok := entity.(*Enemy); ok && !enemy.IsDead() {
			enemies = append(enemies, enemy)
		}
	}
	return enemies
}

// showModal sets the modal message and keeps it visible for duration seconds
func (s *State) showModal(msg Message, duration float64) {
	if s.Sinks.Modal != nil {
		s.Sinks.Modal.SetMessage(msg)
	}
	s.ModalTime = duration
}

func (s *State) paintBackdrop(index int) {
	if s.Sinks.Backdrop != nil {
		s.Sinks.Backdrop.SetColor(s.catalog.Background(index))
	}
}

// nilIfTyped turns an interface holding a nil pointer into a nil interface
func nilIfTyped[T any](sink T) T {
	v := reflect.ValueOf(sink)
	if v.IsValid() && v.Kind() == reflect.Pointer && v.IsNil() {
		var zero T
		return zero
	}
	return sink
}
