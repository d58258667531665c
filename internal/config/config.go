package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"raycastgame/internal/mathutil"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game configuration values
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	Camera     CameraConfig     `yaml:"camera"`
	Movement   MovementConfig   `yaml:"movement"`
	Simulation SimulationConfig `yaml:"simulation"`
	World      WorldConfig      `yaml:"world"`
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Debug      DebugConfig      `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	Scale        int    `yaml:"scale"` // window pixels per frame-buffer pixel
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type CameraConfig struct {
	FieldOfView    float64 `yaml:"field_of_view"` // degrees
	FieldOfViewMin float64 `yaml:"field_of_view_min"`
	FieldOfViewMax float64 `yaml:"field_of_view_max"`
	EyeHeight      float64 `yaml:"eye_height"` // tiles above the floor
	StartX         float64 `yaml:"start_x"`    // used when the map has no '+'
	StartY         float64 `yaml:"start_y"`
	StartAngle     float64 `yaml:"start_angle"` // degrees
}

type MovementConfig struct {
	MoveSpeed       float64 `yaml:"move_speed"`     // tiles per second
	RotationSpeed   float64 `yaml:"rotation_speed"` // degrees per second
	FieldOfViewRate float64 `yaml:"fov_speed"`      // degrees per second
	Gravity         float64 `yaml:"gravity"`        // tiles per second squared
	JumpImpulse     float64 `yaml:"jump_impulse"`   // tiles per second
	CollisionRadius float64 `yaml:"collision_radius"`
}

type SimulationConfig struct {
	TicksPerSecond  int `yaml:"ticks_per_second"`
	MaxCatchUpTicks int `yaml:"max_catch_up_ticks"` // 0 = unbounded
}

type WorldConfig struct {
	MapFile    string         `yaml:"map_file"`
	WallHeight float64        `yaml:"wall_height"`
	Sprites    []SpriteConfig `yaml:"sprites"`
}

// SpriteConfig places an extra sprite in addition to the '*' cells of the map.
type SpriteConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Texture   int     `yaml:"texture"`
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}

type GraphicsConfig struct {
	TextureSize    int           `yaml:"texture_size"`
	Background     [3]int        `yaml:"background"`
	CeilingEnabled bool          `yaml:"ceiling_enabled"`
	SpriteSize     float64       `yaml:"sprite_size"` // world size of the square billboard
	Floor          TextureSpec   `yaml:"floor"`
	Ceiling        TextureSpec   `yaml:"ceiling"`
	Walls          []TextureSpec `yaml:"walls"`
	Sprites        []TextureSpec `yaml:"sprites"`
}

// TextureSpec names either an image file or a procedural pattern.
type TextureSpec struct {
	Path    string   `yaml:"path,omitempty"`
	Pattern string   `yaml:"pattern,omitempty"`
	Colors  [][3]int `yaml:"colors,omitempty"`
}

type DebugConfig struct {
	ShowOverlay    bool    `yaml:"show_overlay"`
	PerfLogSeconds float64 `yaml:"perf_log_seconds"` // 0 disables the periodic summary
	// VerboseMapLoader logs every map row as it is parsed.
	VerboseMapLoader bool `yaml:"verbose_map_loader"`
}

// SimConfig is the immutable set of simulation constants handed to every
// simulation step. All angles are in radians.
type SimConfig struct {
	TickSeconds     float64
	MoveSpeed       float64
	RotationSpeed   float64
	FOVRate         float64
	FOVMin          float64
	FOVMax          float64
	Gravity         float64
	JumpImpulse     float64
	StandingEye     float64
	CollisionRadius float64
}

// LoadConfig loads the configuration from a yaml file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}

	return config, nil
}

// Parse decodes and validates yaml config bytes. Missing values fall back to
// the built-in defaults.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Default returns the configuration used for values absent from config.yaml.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        3,
			WindowTitle:  "Raycast Game",
			Resizable:    true,
		},
		Camera: CameraConfig{
			FieldOfView:    70,
			FieldOfViewMin: 30,
			FieldOfViewMax: 120,
			EyeHeight:      0.5,
			StartX:         1.5,
			StartY:         1.5,
		},
		Movement: MovementConfig{
			MoveSpeed:       3,
			RotationSpeed:   120,
			FieldOfViewRate: 40,
			Gravity:         9,
			JumpImpulse:     3,
			CollisionRadius: 0.2,
		},
		Simulation: SimulationConfig{
			TicksPerSecond: 60,
		},
		World: WorldConfig{
			WallHeight: 1,
		},
		Graphics: GraphicsConfig{
			TextureSize: 64,
			Background:  [3]int{40, 40, 48},
			SpriteSize:  0.75,
			Floor:       TextureSpec{Pattern: "checker"},
			Ceiling:     TextureSpec{Pattern: "stone"},
			Walls:       []TextureSpec{{Pattern: "bricks"}},
			Sprites:     []TextureSpec{{Pattern: "ring"}},
		},
	}
}

// Validate checks the invariants the renderer and simulation rely on.
func (c *Config) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180:
		return fmt.Errorf("%w: field_of_view %.1f must be in (0, 180)", ErrInvalid, c.Camera.FieldOfView)
	case c.Camera.FieldOfViewMin <= 0 || c.Camera.FieldOfViewMax >= 180 || c.Camera.FieldOfViewMin > c.Camera.FieldOfViewMax:
		return fmt.Errorf("%w: field_of_view bounds [%.1f, %.1f]", ErrInvalid, c.Camera.FieldOfViewMin, c.Camera.FieldOfViewMax)
	case c.Camera.FieldOfView < c.Camera.FieldOfViewMin || c.Camera.FieldOfView > c.Camera.FieldOfViewMax:
		return fmt.Errorf("%w: field_of_view %.1f outside [%.1f, %.1f]", ErrInvalid, c.Camera.FieldOfView, c.Camera.FieldOfViewMin, c.Camera.FieldOfViewMax)
	case c.Simulation.TicksPerSecond <= 0:
		return fmt.Errorf("%w: ticks_per_second %d", ErrInvalid, c.Simulation.TicksPerSecond)
	case c.Simulation.MaxCatchUpTicks < 0:
		return fmt.Errorf("%w: max_catch_up_ticks %d", ErrInvalid, c.Simulation.MaxCatchUpTicks)
	case !mathutil.IsPowerOfTwo(c.Graphics.TextureSize):
		return fmt.Errorf("%w: texture_size %d is not a power of two", ErrInvalid, c.Graphics.TextureSize)
	case c.World.WallHeight <= 0:
		return fmt.Errorf("%w: wall_height %.2f", ErrInvalid, c.World.WallHeight)
	case len(c.Graphics.Walls) == 0:
		return fmt.Errorf("%w: at least one wall texture is required", ErrInvalid)
	case len(c.Graphics.Sprites) == 0:
		return fmt.Errorf("%w: at least one sprite texture is required", ErrInvalid)
	}
	for i, s := range c.World.Sprites {
		if s.Texture < 0 || s.Texture >= len(c.Graphics.Sprites) {
			return fmt.Errorf("%w: sprite %d uses texture %d of %d", ErrInvalid, i, s.Texture, len(c.Graphics.Sprites))
		}
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetCameraFOV() float64 {
	return degToRad(c.Camera.FieldOfView)
}

func (c *Config) GetStartAngle() float64 {
	return degToRad(c.Camera.StartAngle)
}

// TickDuration is the fixed simulation step.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Simulation.TicksPerSecond)
}

// BackgroundRGB returns the frame clear colour clamped to bytes.
func (c *Config) BackgroundRGB() (r, g, b uint8) {
	bg := c.Graphics.Background
	return byteOf(bg[0]), byteOf(bg[1]), byteOf(bg[2])
}

// Sim returns the immutable simulation constants.
func (c *Config) Sim() SimConfig {
	return SimConfig{
		TickSeconds:     1 / float64(c.Simulation.TicksPerSecond),
		MoveSpeed:       c.Movement.MoveSpeed,
		RotationSpeed:   degToRad(c.Movement.RotationSpeed),
		FOVRate:         degToRad(c.Movement.FieldOfViewRate),
		FOVMin:          degToRad(c.Camera.FieldOfViewMin),
		FOVMax:          degToRad(c.Camera.FieldOfViewMax),
		Gravity:         c.Movement.Gravity,
		JumpImpulse:     c.Movement.JumpImpulse,
		StandingEye:     c.Camera.EyeHeight,
		CollisionRadius: c.Movement.CollisionRadius,
	}
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

func byteOf(v int) uint8 {
	return uint8(mathutil.ClampInt(v, 0, 255))
}
