package main

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"starfighter/game"
	"starfighter/settings"
	"starfighter/view"
)

// Game runs one star fighter game inside an ebiten window. It is the
// viewport of the game: the layout size is the screen size.
type Game struct {
	state *game.State
	scene *view.Scene
	prefs *settings.Manager

	logger *log.Logger
	face   text.Face

	// Current layout size in pixels
	width, height int

	// Wall clock the simulation time is measured from
	start time.Time

	// Wall clock time of the previous frame, for effects
	lastUpdate time.Time

	// Last pointer position fed into the game
	cursorX, cursorY int

	// Effects that live only in this host
	dust       []dustMote
	explosions *ParticleSystem

	// Debug overlay: entity bounds, aim guide and frame rate
	debug    bool
	profiler *Profiler
}

// NewGame creates a game at level 1 with the scene attached. width and height
// are the size the window opens with.
func NewGame(cfg game.Config, def *game.CatalogConfig, rng *rand.Rand, width, height int, prefs *settings.Manager, profilesDir string, logger *log.Logger) *Game {
	now := time.Now()

	// Effects do not need to be reproducible
	fx := rand.New(rand.NewSource(now.UnixNano()))

	g := &Game{
		scene:      view.NewScene(),
		prefs:      prefs,
		logger:     logger,
		face:       text.NewGoXFace(basicfont.Face7x13),
		width:      width,
		height:     height,
		start:      now,
		lastUpdate: now,
		cursorX:    -1,
		cursorY:    -1,
		dust:       newDust(dustCount, fx),
		explosions: NewExplosionParticleSystem(fx),
		profiler:   NewProfiler(profilesDir, logger),
	}

	// Enemies burst when they leave the scene
	g.scene.OnDetach = func(sp *view.Sprite) {
		if sp.Kind == view.KindEnemy {
			g.explosions.Burst(sp.Pos, view.SpriteColor(sp))
		}
	}

	catalog := game.NewCatalog(def, cfg, g, rng)
	g.state = game.NewState(cfg, catalog, g, logger)
	g.state.Attach(g.scene.Sinks())
	return g
}

// Size implements game.Viewport
func (g *Game) Size() (float64, float64) {
	return float64(g.width), float64(g.height)
}

// Update feeds input and the frame time into the game
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	g.state.Update(now.Sub(g.start).Seconds())
	g.updateDust(dt)
	g.explosions.Update(dt)
	return nil
}

// Draw renders the scene
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen)
	g.drawHUD(screen)
	g.drawModal(screen)
	if g.debug {
		g.drawDebug(screen)
	}
}

// Layout follows the window size so the playfield scales with it. Enemies
// queued before the first spawn are placed again for the new size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.state.ReloadUnspawnedLevel() {
			g.logger.Debug("spawns placed for new size", "width", outsideWidth, "height", outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

// rememberWindow stores the window state in the preferences
func (g *Game) rememberWindow() {
	g.prefs.SetFullscreen(ebiten.IsFullscreen())
	if !ebiten.IsFullscreen() {
		g.prefs.SetWindowSize(ebiten.WindowSize())
	}
}
