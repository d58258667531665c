package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"raycastgame/internal/config"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// TextureStore decodes and caches textures. Every texture it returns has the
// store's tile size.
type TextureStore struct {
	size     int
	textures map[string]*Texture
}

func NewTextureStore(size int) *TextureStore {
	return &TextureStore{
		size:     size,
		textures: make(map[string]*Texture),
	}
}

// Load resolves a texture spec: an image file when Path is set, otherwise a
// procedural pattern.
func (ts *TextureStore) Load(spec config.TextureSpec) (*Texture, error) {
	if spec.Path != "" {
		return ts.LoadFile(spec.Path)
	}

	key := fmt.Sprintf("pattern:%s:%v", spec.Pattern, spec.Colors)
	if tex, exists := ts.textures[key]; exists {
		return tex, nil
	}
	tex, err := Pattern(spec.Pattern, ts.size, toRGB(spec.Colors))
	if err != nil {
		return nil, err
	}
	ts.textures[key] = tex
	return tex, nil
}

// LoadFile decodes a PNG or BMP image. Images whose size differs from the
// store's tile size are rescaled with nearest-neighbour sampling.
func (ts *TextureStore) LoadFile(path string) (*Texture, error) {
	key := filepath.Clean(path)
	if tex, exists := ts.textures[key]; exists {
		return tex, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx() != ts.size || b.Dy() != ts.size {
		log.Printf("[Textures] %s is %dx%d %s, rescaling to %d", path, b.Dx(), b.Dy(), format, ts.size)
	}
	tex, err := FromImage(img, ts.size)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	ts.textures[key] = tex
	return tex, nil
}

// FromImage converts img into a size×size texture. Fully transparent pixels
// become the colour key.
func FromImage(img image.Image, size int) (*Texture, error) {
	rect := image.Rect(0, 0, size, size)
	dst := image.NewNRGBA(rect)
	draw.NearestNeighbor.Scale(dst, rect, img, img.Bounds(), draw.Src, nil)

	pixels := make([]RGB, size*size)
	for i := range pixels {
		o := i * 4
		if dst.Pix[o+3] == 0 {
			pixels[i] = ColorKey
			continue
		}
		pixels[i] = RGB{dst.Pix[o], dst.Pix[o+1], dst.Pix[o+2]}
	}
	return NewTexture(size, pixels)
}

// ToImage returns an opaque copy of the texture; colour-key pixels become
// fully transparent.
func ToImage(t *Texture) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.size, t.size))
	for y := 0; y < t.size; y++ {
		for x := 0; x < t.size; x++ {
			p := t.At(x, y)
			a := uint8(255)
			if p == ColorKey {
				a = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: a})
		}
	}
	return img
}

// Set holds every texture the renderer samples.
type Set struct {
	Floor   *Texture
	Ceiling *Texture
	Walls   []*Texture
	Sprites []*Texture
}

// Wall returns the texture for wall tile id (1-based), wrapping around the
// configured list.
func (s *Set) Wall(id int) *Texture {
	return s.Walls[(id-1)%len(s.Walls)]
}

// LoadSet loads all textures named by the graphics config. Any decode
// failure is returned; callers treat it as fatal.
func (ts *TextureStore) LoadSet(g config.GraphicsConfig) (*Set, error) {
	var err error
	set := &Set{}
	if set.Floor, err = ts.Load(g.Floor); err != nil {
		return nil, fmt.Errorf("floor: %w", err)
	}
	if set.Ceiling, err = ts.Load(g.Ceiling); err != nil {
		return nil, fmt.Errorf("ceiling: %w", err)
	}
	for i, spec := range g.Walls {
		tex, err := ts.Load(spec)
		if err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
		set.Walls = append(set.Walls, tex)
	}
	for i, spec := range g.Sprites {
		tex, err := ts.Load(spec)
		if err != nil {
			return nil, fmt.Errorf("sprite %d: %w", i, err)
		}
		set.Sprites = append(set.Sprites, tex)
	}
	log.Printf("[Textures] Loaded %d wall and %d sprite textures (%dpx tiles, %d cached)",
		len(set.Walls), len(set.Sprites), ts.size, len(ts.textures))
	return set, nil
}

func toRGB(colors [][3]int) []RGB {
	out := make([]RGB, len(colors))
	for i, c := range colors {
		out[i] = RGB{clampByte(c[0]), clampByte(c[1]), clampByte(c[2])}
	}
	return out
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
