package graphics

import (
	"fmt"
	"sort"
)

// patternFunc paints the pixel at (x, y) of a size×size tile using palette.
type patternFunc func(x, y, size int, palette []RGB) RGB

type pattern struct {
	paint    patternFunc
	defaults []RGB
}

var patterns = map[string]pattern{
	"solid": {
		paint:    func(x, y, size int, p []RGB) RGB { return p[0] },
		defaults: []RGB{{128, 128, 128}},
	},
	"checker": {
		paint: func(x, y, size int, p []RGB) RGB {
			cell := size / 8
			if cell == 0 {
				cell = 1
			}
			return p[((x/cell)+(y/cell))%2]
		},
		defaults: []RGB{{96, 96, 96}, {64, 64, 64}},
	},
	"bricks": {
		paint: func(x, y, size int, p []RGB) RGB {
			rowH := size / 4
			if rowH == 0 {
				rowH = 1
			}
			brickW := size / 2
			if brickW == 0 {
				brickW = 1
			}
			bx := x
			if (y/rowH)%2 == 1 {
				bx += brickW / 2
			}
			if y%rowH == 0 || bx%brickW == 0 {
				return p[1]
			}
			return p[0]
		},
		defaults: []RGB{{150, 60, 40}, {200, 200, 190}},
	},
	"stone": {
		paint: func(x, y, size int, p []RGB) RGB {
			// cheap hash noise, stable across runs
			h := uint32(x*374761393 + y*668265263)
			h = (h ^ (h >> 13)) * 1274126177
			return p[int(h>>29)%len(p)]
		},
		defaults: []RGB{{90, 90, 100}, {80, 80, 88}, {104, 104, 112}},
	},
	"ring": {
		paint: func(x, y, size int, p []RGB) RGB {
			c := float64(size-1) / 2
			dx, dy := float64(x)-c, float64(y)-c
			d2 := dx*dx + dy*dy
			outer := c * c
			inner := (c * 0.55) * (c * 0.55)
			switch {
			case d2 > outer:
				return ColorKey
			case d2 > inner:
				return p[0]
			default:
				return p[1]
			}
		},
		defaults: []RGB{{220, 180, 40}, {250, 240, 200}},
	},
}

// PatternNames lists the procedural patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pattern generates a procedural texture. Missing palette entries are taken
// from the pattern's defaults.
func Pattern(name string, size int, colors []RGB) (*Texture, error) {
	pat, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("unknown texture pattern %q", name)
	}

	palette := make([]RGB, len(pat.defaults))
	copy(palette, pat.defaults)
	copy(palette, colors)

	pixels := make([]RGB, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pixels[y*size+x] = pat.paint(x, y, size, palette)
		}
	}
	return NewTexture(size, pixels)
}
