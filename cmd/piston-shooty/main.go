package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/audio"
	"github.com/GamesFromRust/piston-shooty/config"
	"github.com/GamesFromRust/piston-shooty/game"
	"github.com/GamesFromRust/piston-shooty/level"
	"github.com/GamesFromRust/piston-shooty/logger"
	"github.com/GamesFromRust/piston-shooty/world"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/piston-shooty.log")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "piston-shooty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logFile, err := logger.OpenFile(*debugFlag)
	if err != nil {
		return err
	}
	var out io.Writer = io.Discard
	if logFile != nil {
		defer logFile.Close()
		out = logFile
	}
	logger.Init(cfg.Log, out)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	fini := finiOnce(screen)
	defer fini()
	defer recoverCrash(fini, "PISTON-SHOOTY")
	screen.EnableMouse()
	screen.HideCursor()

	// Audio failure is non-fatal: every handle stays silent
	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		logger.Log.WithError(err).Warn("Audio unavailable, continuing without sound")
	}
	defer sounds.Cleanup()

	assets, err := asset.NewManager(cfg.Textures)
	if err != nil {
		return fmt.Errorf("load textures: %w", err)
	}
	levels, err := loadLevels(cfg)
	if err != nil {
		return err
	}

	factory := &world.Factory{
		Levels:      levels,
		Assets:      assets,
		Sounds:      sounds,
		GunAxeDepth: cfg.GunAxeGunConfig.GunDepth,
	}
	machine := game.NewMachine(levels.Names(), factory.Load)

	logger.Log.WithField("levels", levels.Len()).Info("Game started")

	err = runLoop(screen, fini, machine)
	if errors.Is(err, errQuit) {
		logger.Log.Info("Game quit")
		return nil
	}
	return err
}

// loadLevels picks the built-in or on-disk catalogue and applies the configured order
func loadLevels(cfg *config.Config) (*level.Catalogue, error) {
	cat := level.Builtin()
	cat.Strict = cfg.StrictLevels()

	if cfg.Levels.Dir != "" {
		var err error
		cat, err = level.NewCatalogue(os.DirFS(cfg.Levels.Dir), cfg.StrictLevels())
		if err != nil {
			return nil, fmt.Errorf("levels in %s: %w", cfg.Levels.Dir, err)
		}
	}

	if cfg.Levels.Names != nil {
		if err := cat.Restrict(cfg.Levels.Names); err != nil {
			return nil, err
		}
	}
	if cat.Len() == 0 {
		return nil, errors.New("no levels to play")
	}
	return cat, nil
}
