// Command raycast-term plays the raycaster inside a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"raycastgame/internal/config"
	"raycastgame/internal/game"
	"raycastgame/internal/graphics"
	"raycastgame/internal/term"
	"raycastgame/internal/world"

	"github.com/gdamore/tcell/v2"
)

var (
	configPath = flag.String("config", "config.yaml", "path to the yaml configuration")
	mapPath    = flag.String("map", "", "map file to load instead of the configured one")
	fps        = flag.Int("fps", 30, "frames drawn per second")
	hold       = flag.Duration("hold", 150*time.Millisecond, "how long a key counts as held after its last event")
	logPath    = flag.String("log", "", "write logs to this file (discarded otherwise)")
)

func main() {
	flag.Parse()

	// Anything written to stderr would land on top of the frame.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatalf("log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	// run returns only after the screen is finalized, so the message is
	// readable.
	if err := run(); err != nil {
		log.Print(err)
		fatalf("%v", err)
	}
}

func run() error {
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("[Config] %w", err)
	}
	w, err := world.LoadWorld(cfg, *mapPath)
	if err != nil {
		return fmt.Errorf("[MapLoader] %w", err)
	}
	textures, err := graphics.NewTextureStore(cfg.Graphics.TextureSize).LoadSet(cfg.Graphics)
	if err != nil {
		return fmt.Errorf("[Textures] %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	loop := game.NewGameLoop(cfg, w, textures)
	if err := term.NewRunner(screen, loop, *fps, *hold).Run(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

// fatalf reports errors on stderr even when logging is discarded.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
