package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file. Sections are decoded on top of the
// current values so only keys present in the file override defaults.
type fileConfig struct {
	Window    Config                      `yaml:"window"`
	Physics   PhysicsConfig               `yaml:"physics"`
	Player    PlayerConfig                `yaml:"player"`
	Creature  CreatureConfig              `yaml:"creature"`
	Creatures map[string]creatureOverride `yaml:"creatures"`
	PowerUp   PowerUpConfig               `yaml:"powerup"`
	Session   SessionConfig               `yaml:"session"`
	Level     LevelConfig                 `yaml:"level"`
	HUD       HUDConfig                   `yaml:"hud"`
	Audio     AudioConfig                 `yaml:"audio"`
	Debug     DebugConfig                 `yaml:"debug"`
}

type creatureOverride struct {
	Name     *string  `yaml:"name"`
	MaxSpeed *float64 `yaml:"max_speed"`
	Flying   *bool    `yaml:"flying"`
	Width    *int     `yaml:"width"`
	Height   *int     `yaml:"height"`
}

// Load applies a YAML config file over the built-in defaults.
// Search order: customPath -> ~/.tilerunner/config.yaml -> ./configs/tilerunner.yaml -> defaults.
// It returns the path that was applied, or "" when the defaults are used.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "tilerunner.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}

	return "", nil
}

// Apply decodes YAML config data over the current global configuration.
// Nothing is changed when the data fails to parse.
func Apply(data []byte) error {
	f := fileConfig{
		Window:   *C,
		Physics:  Physics,
		Player:   Player,
		Creature: Creature,
		PowerUp:  PowerUp,
		Session:  Session,
		Level:    Level,
		HUD:      HUD,
		Audio:    Audio,
		Debug:    Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}

	*C = f.Window
	Physics = f.Physics
	Player = f.Player
	Creature = f.Creature
	PowerUp = f.PowerUp
	Session = f.Session
	Level = f.Level
	HUD = f.HUD
	Audio = f.Audio
	Debug = f.Debug

	for name, o := range f.Creatures {
		t := Creatures[name]
		if t.Name == "" {
			t.Name = name
			t.Color = White
		}
		if o.Name != nil {
			t.Name = *o.Name
		}
		if o.MaxSpeed != nil {
			t.MaxSpeed = *o.MaxSpeed
		}
		if o.Flying != nil {
			t.Flying = *o.Flying
		}
		if o.Width != nil {
			t.Width = *o.Width
		}
		if o.Height != nil {
			t.Height = *o.Height
		}
		Creatures[name] = t
	}
	return nil
}

func (f *fileConfig) validate() error {
	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", f.Window.Width, f.Window.Height)
	case f.Window.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", f.Window.TPS)
	case f.Session.StartingLives <= 0:
		return fmt.Errorf("starting_lives must be positive, got %d", f.Session.StartingLives)
	case f.Session.StarsPerLife <= 0:
		return fmt.Errorf("stars_per_life must be positive, got %d", f.Session.StarsPerLife)
	case f.Player.Width <= 0 || f.Player.Height <= 0:
		return fmt.Errorf("player size must be positive, got %dx%d", f.Player.Width, f.Player.Height)
	case f.Level.TileSize < MinTileSize:
		return fmt.Errorf("tile_size must be at least %d, got %d", MinTileSize, f.Level.TileSize)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilerunner", filename)
}
