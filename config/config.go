package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// PhysicsConfig contains world physics values. Speeds are pixels per
// millisecond and accelerations pixels per millisecond squared.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	MaxSpeed  float64 `yaml:"max_speed"`
	JumpSpeed float64 `yaml:"jump_speed"` // negative is up

	// Dimensions
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CreatureConfig contains values shared by every creature type
type CreatureConfig struct {
	DieTime float64 `yaml:"die_time"` // ms spent DYING before DEAD

	// Creatures start walking once they are this close (horizontally) to the
	// player. Zero means half the screen width plus one tile.
	WakeDistance float64 `yaml:"wake_distance"`
}

// CreatureTypeConfig contains configuration for specific creature types
type CreatureTypeConfig struct {
	Name     string     `yaml:"name"`
	MaxSpeed float64    `yaml:"max_speed"`
	Flying   bool       `yaml:"flying"`
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Color    color.RGBA `yaml:"-"`
}

// PowerUpConfig contains power-up dimensions
type PowerUpConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SessionConfig contains life and score counters for a play session
type SessionConfig struct {
	StartingLives int `yaml:"starting_lives"`
	StarsPerLife  int `yaml:"stars_per_life"`
}

// LevelConfig describes where levels come from and how TMX files are read
type LevelConfig struct {
	Dir         string `yaml:"dir"`          // empty = embedded levels
	SolidLayer  string `yaml:"solid_layer"`  // tile layer holding solid tiles
	ObjectLayer string `yaml:"object_layer"` // object group holding spawns
	TileSize    int    `yaml:"tile_size"`    // used by ASCII fallback levels
}

// MinTileSize is the smallest tile that still holds a solid object inset by a
// pixel on every side.
const MinTileSize = 3

// HUDConfig contains HUD text layout values.
type HUDConfig struct {
	FontSize   float64    `yaml:"font_size"`
	TextY      int        `yaml:"text_y"`
	ExitX      int        `yaml:"exit_x"`
	CoinsX     int        `yaml:"coins_x"`
	LivesX     int        `yaml:"lives_x"`
	HomeX      int        `yaml:"home_x"`
	ExitColor  color.RGBA `yaml:"-"`
	CoinsColor color.RGBA `yaml:"-"`
	LivesColor color.RGBA `yaml:"-"`
	HomeColor  color.RGBA `yaml:"-"`
}

// RenderConfig contains colors used by the level renderer
type RenderConfig struct {
	Background color.RGBA
	Tile       color.RGBA
	TileEdge   color.RGBA
	Player     color.RGBA
	Star       color.RGBA
	Music      color.RGBA
	Goal       color.RGBA
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled   bool `yaml:"enabled"`    // debug logging and overlay
	LogScreen bool `yaml:"log_screen"` // wrap the display with the logging decorator
}

// Render layers
const (
	Default ecs.LayerID = iota
	LayerHUD
)

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Creature CreatureConfig
var Creatures map[string]CreatureTypeConfig
var PowerUp PowerUpConfig
var Session SessionConfig
var Level LevelConfig
var HUD HUDConfig
var Render RenderConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange   = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue     = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple   = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	SkyBlue  = color.RGBA{R: 92, G: 148, B: 252, A: 255}
	Brown    = color.RGBA{R: 136, G: 84, B: 40, A: 255}
	DarkGray = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// Creature type names used by level files
const (
	CreatureGrub = "grub"
	CreatureFly  = "fly"
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity: 0.002,
	}

	Player = PlayerConfig{
		MaxSpeed:  0.5,
		JumpSpeed: -0.95,
		Width:     48,
		Height:    62,
	}

	Creature = CreatureConfig{
		DieTime:      1000,
		WakeDistance: 0,
	}

	Creatures = map[string]CreatureTypeConfig{
		CreatureGrub: {
			Name:     "Grub",
			MaxSpeed: 0.05,
			Flying:   false,
			Width:    60,
			Height:   40,
			Color:    Green,
		},
		CreatureFly: {
			Name:     "Fly",
			MaxSpeed: 0.2,
			Flying:   true,
			Width:    44,
			Height:   36,
			Color:    Purple,
		},
	}

	PowerUp = PowerUpConfig{
		Width:  32,
		Height: 32,
	}

	Session = SessionConfig{
		StartingLives: 6,
		StarsPerLife:  100,
	}

	Level = LevelConfig{
		Dir:         "",
		SolidLayer:  "tiles",
		ObjectLayer: "spawns",
		TileSize:    64,
	}

	HUD = HUDConfig{
		FontSize:   14,
		TextY:      20,
		ExitX:      10,
		CoinsX:     300,
		LivesX:     500,
		HomeX:      700,
		ExitColor:  White,
		CoinsColor: Green,
		LivesColor: Yellow,
		HomeColor:  White,
	}

	Render = RenderConfig{
		Background: SkyBlue,
		Tile:       Brown,
		TileEdge:   color.RGBA{R: 96, G: 56, B: 24, A: 255},
		Player:     LightRed,
		Star:       Yellow,
		Music:      Magenta,
		Goal:       Orange,
	}

	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:      LightRed,
		TextColor:       White,
		Title:           "GAME OVER",
	}

	Debug = DebugConfig{}
}

// CreatureType returns the configuration for a creature type name.
func CreatureType(name string) (CreatureTypeConfig, bool) {
	t, ok := Creatures[name]
	return t, ok
}

// WakeRange returns the horizontal distance at which creatures wake up.
func WakeRange(tileSize int) float64 {
	if Creature.WakeDistance > 0 {
		return Creature.WakeDistance
	}
	return float64(C.Width)/2 + float64(tileSize)
}
