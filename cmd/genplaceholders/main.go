// Command genplaceholders writes every procedural texture pattern as a PNG
// so the assets directory has editable starting images.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"raycastgame/internal/graphics"
)

var (
	outDir = flag.String("out", "assets/textures", "output directory")
	size   = flag.Int("size", 64, "texture side length (power of two)")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("creating %s: %v", *outDir, err)
	}
	for _, name := range graphics.PatternNames() {
		path := filepath.Join(*outDir, name+".png")
		if err := writePattern(path, name, *size); err != nil {
			log.Fatalf("[Textures] %v", err)
		}
		log.Printf("[Textures] wrote %s", path)
	}
}

func writePattern(path, name string, size int) error {
	tex, err := graphics.Pattern(name, size, nil)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, graphics.ToImage(tex)); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
