package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"starfighter/game"
)

// options are the command line settings of the terminal host
type options struct {
	configPath string
	levelsPath string
	logPath    string
	seed       int64
	debug      bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", game.GetEnv("STARFIGHTER_CONFIG", ""), "YAML file overriding the default config (or set STARFIGHTER_CONFIG)")
	flag.StringVar(&opts.levelsPath, "levels", game.GetEnv("STARFIGHTER_LEVELS", ""), "YAML level catalog replacing the built-in levels (or set STARFIGHTER_LEVELS)")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed for spawn positions; 0 seeds from the clock")
	flag.StringVar(&opts.logPath, "log", "", "File to write logs to; the terminal is busy drawing the game")
	flag.BoolVar(&opts.debug, "debug", false, "Log every spawn")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run plays one game until the player quits. Every resource it opens is
// released before it returns.
func run(opts options) error {
	logOut, closeLog, err := openLog(opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "starfighter-tty",
	})
	if opts.debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, catalog, err := game.LoadAssets(opts.configPath, opts.levelsPath)
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", seed, "levels", len(catalog.Levels))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	term := NewTerminal(screen, cfg, catalog, rand.New(rand.NewSource(seed)), logger)
	defer term.cleanup()

	term.run()
	logger.Info("stopped", "score", term.state.Score, "level", term.state.Level)
	return nil
}

// openLog opens the log file, or discards logs when path is empty
func openLog(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}
