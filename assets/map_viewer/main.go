package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"

	"raycastgame/internal/config"
	"raycastgame/internal/mathutil"
	"raycastgame/internal/raycast"
	"raycastgame/internal/render"
	"raycastgame/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 1000
	windowHeight = 800
	sidebarWidth = 260
	padding      = 16
)

var (
	configPath = flag.String("config", "config.yaml", "path to the yaml configuration")
	mapPath    = flag.String("map", "", "map file to load instead of the configured one")
)

// viewer shows the level from above with the camera's per-column ray fan.
type viewer struct {
	world  *world.World
	camera *render.Camera
	// every rayStride-th screen column is cast
	rayStride int
	hits      []raycast.Hit
	misses    int
	showRays  bool
}

func main() {
	flag.Parse()
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig(*configPath)
	w, err := world.LoadWorld(cfg, *mapPath)
	if err != nil {
		log.Fatalf("[MapLoader] %v", err)
	}

	v := &viewer{
		world:     w,
		camera:    render.NewCamera(cfg.GetScreenWidth(), w.Start, w.StartAngle, cfg.GetCameraFOV(), cfg.Camera.EyeHeight),
		rayStride: 8,
		showRays:  true,
	}
	v.castRays()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Raycast Map Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.showRays = !v.showRays
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) && v.rayStride > 1 {
		v.rayStride /= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && v.rayStride < 64 {
		v.rayStride *= 2
	}

	// Free look: the viewer ignores collision so rays can be inspected from anywhere.
	const turn = 2 * math.Pi / 180
	const step = 0.05
	cam := v.camera
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		cam.SetAngle(cam.Angle() - turn)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyE) {
		cam.SetAngle(cam.Angle() + turn)
	}
	move := mathutil.Vec2{}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		move = move.Add(cam.Direction())
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		move = move.Sub(cam.Direction())
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move = move.Sub(cam.Right())
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move = move.Add(cam.Right())
	}
	if move != (mathutil.Vec2{}) {
		cam.SetPosition(cam.Position().Add(move.Scale(step)))
	}

	v.castRays()
	return nil
}

func (v *viewer) castRays() {
	v.hits = v.hits[:0]
	v.misses = 0
	width := v.camera.ScreenWidth()
	for x := 0; x < width; x += v.rayStride {
		h := raycast.Cast(v.world.Grid, v.camera.Position(), v.camera.ColumnRay(x))
		if h.Miss() {
			v.misses++
		}
		v.hits = append(v.hits, h)
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	sidebarX := padding + mapAreaW + padding

	v.drawMapPanel(screen, padding, padding, mapAreaW, mapAreaH)
	v.drawSidebar(screen, sidebarX, padding, sidebarWidth, mapAreaH)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func (v *viewer) drawMapPanel(screen *ebiten.Image, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	grid := v.world.Grid
	n := grid.Size()
	tileSize := min(w/n, h/n)
	if tileSize < 2 {
		tileSize = 2
	}
	originX := x + (w-n*tileSize)/2
	originY := y + (h-n*tileSize)/2

	for ty := 0; ty < n; ty++ {
		for tx := 0; tx < n; tx++ {
			cellColor := tileColor(grid.At(tx, ty))
			vector.DrawFilledRect(screen, float32(originX+tx*tileSize), float32(originY+ty*tileSize),
				float32(tileSize-1), float32(tileSize-1), cellColor, false)
		}
	}

	toScreen := func(p mathutil.Vec2) (float32, float32) {
		return float32(float64(originX) + p.X*float64(tileSize)), float32(float64(originY) + p.Y*float64(tileSize))
	}

	pos := v.camera.Position()
	px, py := toScreen(pos)
	if v.showRays {
		col := 0
		for x := 0; x < v.camera.ScreenWidth(); x += v.rayStride {
			h := v.hits[col]
			col++
			if h.Miss() {
				continue
			}
			hx, hy := toScreen(h.Point(pos, v.camera.ColumnRay(x)))
			rayColor := color.RGBA{250, 210, 80, 160}
			if h.Side == raycast.SideY {
				rayColor = color.RGBA{200, 160, 60, 160}
			}
			vector.StrokeLine(screen, px, py, hx, hy, 1, rayColor, true)
		}
	}

	for _, s := range v.world.Sprites {
		sx, sy := toScreen(s.Pos)
		vector.DrawFilledCircle(screen, sx, sy, float32(tileSize)*0.25, color.RGBA{230, 80, 80, 255}, true)
	}

	radius := float32(tileSize) * 0.3
	vector.DrawFilledCircle(screen, px, py, radius, color.RGBA{50, 200, 255, 255}, true)
	vector.StrokeCircle(screen, px, py, radius, 1, color.RGBA{255, 255, 255, 255}, true)
	dx, dy := toScreen(pos.Add(v.camera.Direction()))
	vector.StrokeLine(screen, px, py, dx, dy, 2, color.RGBA{255, 255, 255, 255}, true)

	ebitenutil.DebugPrintAt(screen, "WASD/arrows move, Q/E turn, Tab rays, +/- density, Esc quit", x+12, y+8)
}

func (v *viewer) drawSidebar(screen *ebiten.Image, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	pos := v.camera.Position()
	lines := []string{
		fmt.Sprintf("Grid: %dx%d", v.world.Grid.Size(), v.world.Grid.Size()),
		fmt.Sprintf("Sprites: %d", len(v.world.Sprites)),
		"",
		fmt.Sprintf("Pos: %.2f, %.2f", pos.X, pos.Y),
		fmt.Sprintf("Angle: %.1f deg", v.camera.Angle()*180/math.Pi),
		fmt.Sprintf("FOV: %.1f deg", v.camera.FieldOfView()*180/math.Pi),
		"",
		fmt.Sprintf("Rays: %d (every %d cols)", len(v.hits), v.rayStride),
		fmt.Sprintf("Misses: %d", v.misses),
	}
	if len(v.hits) > 0 {
		center := raycast.Cast(v.world.Grid, pos, v.camera.Direction())
		if center.Miss() {
			lines = append(lines, "Center: miss")
		} else {
			lines = append(lines, fmt.Sprintf("Center: tile %d at (%d,%d)", center.Tile, center.TileX, center.TileY),
				fmt.Sprintf("  t=%.3f side=%d", center.Distance, center.Side))
		}
	}

	row := y + 12
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}
}

var wallColors = []color.RGBA{
	{120, 90, 70, 255},
	{90, 110, 140, 255},
	{110, 140, 90, 255},
	{140, 100, 140, 255},
}

func tileColor(t world.TileID) color.RGBA {
	if t == world.TileEmpty {
		return color.RGBA{45, 45, 55, 255}
	}
	return wallColors[int(t-1)%len(wallColors)]
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	t := float32(thickness)
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat(*configPath); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	execDir := filepath.Dir(exe)
	_ = os.Chdir(execDir)
}
