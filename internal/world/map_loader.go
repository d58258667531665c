package world

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"raycastgame/internal/mathutil"
)

const (
	glyphEmpty  = '.'
	glyphStart  = '+'
	glyphSprite = '*'
)

// SpriteSpawn is a sprite placed by the map, centred in its cell.
type SpriteSpawn struct {
	X, Y    int
	Texture int
}

// MapData contains the loaded map information
type MapData struct {
	Grid     *Grid
	Sprites  []SpriteSpawn
	StartX   int
	StartY   int
	HasStart bool
}

// StartPosition returns the centre of the '+' cell.
func (md *MapData) StartPosition() mathutil.Vec2 {
	return TileCenter(md.StartX, md.StartY)
}

// TileCenter returns the world position of the centre of a cell.
func TileCenter(x, y int) mathutil.Vec2 {
	return mathutil.V(float64(x)+0.5, float64(y)+0.5)
}

// MapLoader handles loading world maps from files
type MapLoader struct {
	// Verbose logs every parsed row.
	Verbose bool
}

// NewMapLoader creates a new map loader
func NewMapLoader() *MapLoader {
	return &MapLoader{}
}

// LoadMap loads a map from the specified file path
func (ml *MapLoader) LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	md, err := ml.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", mapPath, err)
	}
	return md, nil
}

// Parse reads the text map format: one row per line, '#' comments, '.' or
// '0' empty, '1'-'9' walls, '+' start, '*' sprite. A row may end with
// "  >[sprite:N], [sprite:M]" assigning textures to its '*' cells in order.
func (ml *MapLoader) Parse(r io.Reader) (*MapData, error) {
	var rows []string
	var sprites []SpriteSpawn
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		// Skip empty lines and comment lines (lines starting with #)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tiles, lineSprites, err := parseTileTokens(line, len(rows))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(rows)+1, err)
		}
		sprites = append(sprites, lineSprites...)
		rows = append(rows, tiles)

		if ml.Verbose {
			log.Printf("[MapLoader] Loaded line %d: '%s' (symbols: %d)", len(rows), tiles, utf8.RuneCountInString(tiles))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	size := len(rows)
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: line %d has width %d, expected %d", ErrNotSquare, i+1, len(row), size)
		}
	}

	md := &MapData{Sprites: sprites}
	tiles := make([]TileID, 0, size*size)
	for y, row := range rows {
		for x, char := range row {
			id, isStart, err := parseMapCharacter(char)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			if isStart {
				if md.HasStart {
					return nil, fmt.Errorf("second start marker at (%d,%d)", x, y)
				}
				md.StartX, md.StartY, md.HasStart = x, y, true
			}
			tiles = append(tiles, id)
		}
	}

	grid, err := NewGrid(size, tiles)
	if err != nil {
		return nil, err
	}
	md.Grid = grid
	return md, nil
}

// parseMapCharacter converts a map character to a tile id
func parseMapCharacter(char rune) (TileID, bool, error) {
	switch {
	case char == glyphEmpty || char == glyphSprite || char == '0':
		return TileEmpty, false, nil
	case char == glyphStart:
		return TileEmpty, true, nil
	case char >= '1' && char <= '9':
		return TileID(char - '0'), false, nil
	}
	return TileEmpty, false, fmt.Errorf("unknown map glyph %q", char)
}

// parseTileTokens splits a row into its tile glyphs and the sprites it
// spawns. Definitions after "  >" are matched to '*' cells left to right;
// cells without a definition use texture 0.
func parseTileTokens(line string, lineY int) (string, []SpriteSpawn, error) {
	tilesPart := line
	definitions := ""
	if sepIndex := strings.Index(line, "  >"); sepIndex != -1 {
		tilesPart = strings.TrimSpace(line[:sepIndex])
		definitions = line[sepIndex+3:]
	}

	var spawns []SpriteSpawn
	for x, char := range tilesPart {
		if char == glyphSprite {
			spawns = append(spawns, SpriteSpawn{X: x, Y: lineY})
		}
	}

	if definitions == "" {
		return tilesPart, spawns, nil
	}

	index := 0
	for _, def := range strings.Split(definitions, ",") {
		def = strings.TrimPrefix(strings.TrimSpace(def), ">")
		if !strings.HasPrefix(def, "[sprite:") || !strings.HasSuffix(def, "]") {
			return "", nil, fmt.Errorf("bad definition %q", def)
		}
		texture, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(def, "[sprite:"), "]"))
		if err != nil || texture < 0 {
			return "", nil, fmt.Errorf("bad sprite texture in %q", def)
		}
		if index >= len(spawns) {
			return "", nil, fmt.Errorf("%d sprite definitions for %d '*' cells", index+1, len(spawns))
		}
		spawns[index].Texture = texture
		index++
	}
	return tilesPart, spawns, nil
}
