package graphics

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"raycastgame/internal/config"

	"golang.org/x/image/bmp"
)

func TestNewTextureRejectsNonPowerOfTwo(t *testing.T) {
	for _, size := range []int{0, 3, 48, 100} {
		_, err := NewTexture(size, make([]RGB, size*size))
		if !errors.Is(err, ErrNotPowerOfTwo) {
			t.Errorf("size %d: expected ErrNotPowerOfTwo, got %v", size, err)
		}
	}
	if _, err := NewTexture(4, make([]RGB, 15)); err == nil {
		t.Error("expected error for short pixel slice")
	}
}

func TestWrappedMasksCoordinates(t *testing.T) {
	pixels := make([]RGB, 16)
	for i := range pixels {
		pixels[i] = RGB{R: uint8(i)}
	}
	tex, err := NewTexture(4, pixels)
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}
	if tex.Mask() != 3 {
		t.Fatalf("mask = %d, want 3", tex.Mask())
	}

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 0},
		{5, 0, 1},
		{-1, 0, 3},
		{2, 6, 10},
		{7, -1, 15},
	}
	for _, tt := range tests {
		if got := tex.Wrapped(tt.x, tt.y).R; got != tt.want {
			t.Errorf("Wrapped(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPatternsFillWholeTile(t *testing.T) {
	for _, name := range PatternNames() {
		t.Run(name, func(t *testing.T) {
			tex, err := Pattern(name, 32, nil)
			if err != nil {
				t.Fatalf("Pattern(%q): %v", name, err)
			}
			if tex.Size() != 32 {
				t.Errorf("size = %d, want 32", tex.Size())
			}
		})
	}

	if _, err := Pattern("plasma", 32, nil); err == nil {
		t.Error("expected error for unknown pattern")
	}
	if _, err := Pattern("solid", 24, nil); !errors.Is(err, ErrNotPowerOfTwo) {
		t.Errorf("expected ErrNotPowerOfTwo, got %v", err)
	}
}

func TestRingPatternHasTransparentCorners(t *testing.T) {
	tex, err := Pattern("ring", 64, nil)
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}
	if tex.At(0, 0) != ColorKey || tex.At(63, 63) != ColorKey {
		t.Error("ring corners should be the colour key")
	}
	if tex.At(32, 32) == ColorKey {
		t.Error("ring centre should be opaque")
	}
}

func TestPatternColorsOverrideDefaults(t *testing.T) {
	red := RGB{200, 0, 0}
	tex, err := Pattern("solid", 8, []RGB{red})
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}
	if tex.At(3, 5) != red {
		t.Errorf("got %v, want %v", tex.At(3, 5), red)
	}
}

func TestFromImageRescalesAndKeysAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	// (1,1) stays fully transparent

	tex, err := FromImage(src, 8)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}

	checks := []struct {
		x, y int
		want RGB
	}{
		{0, 0, RGB{255, 0, 0}},
		{7, 0, RGB{0, 255, 0}},
		{0, 7, RGB{0, 0, 255}},
		{7, 7, ColorKey},
	}
	for _, c := range checks {
		if got := tex.At(c.x, c.y); got != c.want {
			t.Errorf("At(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestTextureStoreLoadsPNGAndBMP(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}

	pngPath := filepath.Join(dir, "wall.png")
	bmpPath := filepath.Join(dir, "wall.bmp")
	writeImage(t, pngPath, func(f *os.File) error { return png.Encode(f, img) })
	writeImage(t, bmpPath, func(f *os.File) error { return bmp.Encode(f, img) })

	store := NewTextureStore(16)
	for _, path := range []string{pngPath, bmpPath} {
		tex, err := store.LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s): %v", path, err)
		}
		if got := tex.At(5, 5); got != (RGB{10, 20, 30}) {
			t.Errorf("%s: pixel = %v", path, got)
		}
	}

	again, _ := store.LoadFile(pngPath)
	first, _ := store.LoadFile(pngPath)
	if again != first {
		t.Error("expected cached texture on second load")
	}
}

func TestTextureStoreReportsDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewTextureStore(16)
	if _, err := store.LoadFile(bad); err == nil {
		t.Error("expected decode error")
	}
	if _, err := store.LoadFile(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected open error")
	}
}

func TestLoadSetFromDefaults(t *testing.T) {
	cfg := config.Default()
	store := NewTextureStore(cfg.Graphics.TextureSize)
	set, err := store.LoadSet(cfg.Graphics)
	if err != nil {
		t.Fatalf("LoadSet: %v", err)
	}
	if len(set.Walls) != len(cfg.Graphics.Walls) || len(set.Sprites) != len(cfg.Graphics.Sprites) {
		t.Errorf("got %d walls, %d sprites", len(set.Walls), len(set.Sprites))
	}
	if set.Wall(1) != set.Walls[0] || set.Wall(len(set.Walls)+1) != set.Walls[0] {
		t.Error("wall ids should wrap around the texture list")
	}
}

func TestImageRoundTripPreservesColorKey(t *testing.T) {
	tex, err := Pattern("ring", 16, nil)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromImage(ToImage(tex), 16)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if back.At(x, y) != tex.At(x, y) {
				t.Fatalf("pixel (%d,%d) changed: %v -> %v", x, y, tex.At(x, y), back.At(x, y))
			}
		}
	}
}

func writeImage(t *testing.T, path string, encode func(*os.File) error) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}
