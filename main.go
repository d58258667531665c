package main

import (
	"flag"
	"fmt"
	"log"

	"raycastgame/internal/config"
	"raycastgame/internal/desktop"
	"raycastgame/internal/graphics"
	"raycastgame/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	if err := run(*configPath, *mapPath); err != nil {
		log.Fatal(err)
	}
}

// run loads everything the game needs and blocks until the window closes.
// Any startup or display failure is returned.
func run(configFile, mapFile string) error {
	// Load configuration
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("[Config] %w", err)
	}

	w, err := world.LoadWorld(cfg, mapFile)
	if err != nil {
		return fmt.Errorf("[MapLoader] %w", err)
	}

	textures, err := graphics.NewTextureStore(cfg.Graphics.TextureSize).LoadSet(cfg.Graphics)
	if err != nil {
		return fmt.Errorf("[Textures] %w", err)
	}

	if *cpuProfile != "" {
		stop, err := startCPUProfile(*cpuProfile)
		if err != nil {
			return fmt.Errorf("cpu profile: %w", err)
		}
		defer stop()
	}

	// Set window properties from config
	scale := max(cfg.Display.Scale, 1)
	ebiten.SetWindowSize(cfg.GetScreenWidth()*scale, cfg.GetScreenHeight()*scale)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := desktop.NewGame(cfg, w, textures)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
