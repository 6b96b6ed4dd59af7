package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"starfighter/game"
	"starfighter/settings"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", game.GetEnv("STARFIGHTER_CONFIG", ""), "YAML file overriding the default config (or set STARFIGHTER_CONFIG)")
	levelsPath := flag.String("levels", game.GetEnv("STARFIGHTER_LEVELS", ""), "YAML level catalog replacing the built-in levels (or set STARFIGHTER_LEVELS)")
	seed := flag.Int64("seed", 0, "Random seed for spawn positions; 0 seeds from the clock")
	profilesDir := flag.String("profiles", "profiles", "Directory F2 writes CPU profiles and traces into")
	debug := flag.Bool("debug", false, "Log every spawn and start with the debug overlay (F1 toggles it)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "starfighter",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, catalog, err := game.LoadAssets(*configPath, *levelsPath)
	if err != nil {
		logger.Fatal("failed to load game data", "err", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Info("starting", "levels", len(catalog.Levels), "seed", *seed)

	// Window preferences survive restarts; without a store they stay in memory
	store, err := settings.Open()
	if err != nil {
		logger.Warn("settings will not be saved", "err", err)
	}
	prefs := settings.NewManager(store, logger)

	// Set up window
	width, height := prefs.WindowSize(cfg.ScreenWidth, cfg.ScreenHeight)

	g := NewGame(cfg, catalog, rand.New(rand.NewSource(*seed)), width, height, prefs, *profilesDir, logger)
	g.debug = *debug

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(prefs.Settings().Fullscreen)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game loop failed", "err", err)
	}

	g.rememberWindow()
	if err := prefs.Save(); err != nil {
		logger.Error("failed to save settings", "err", err)
	}
}
