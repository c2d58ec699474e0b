// Package config loads the viewer's startup settings.
//
// Settings come from three layers applied in order: built-in defaults, an
// optional YAML file and command-line flags. None of the debug panel's state
// is written back; every run starts from these values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when -config is not given.
const DefaultPath = "viewer.yml"

// TextureConfig names one entry of the texture set.
type TextureConfig struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type CameraConfig struct {
	MoveSpeed        float32 `yaml:"move_speed"`
	ZoomSpeed        float32 `yaml:"zoom_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	Distance         float32 `yaml:"distance"`
	FOV              float32 `yaml:"fov"`
	Near             float32 `yaml:"near"`
	Far              float32 `yaml:"far"`
}

type Config struct {
	Window      WindowConfig    `yaml:"window"`
	Camera      CameraConfig    `yaml:"camera"`
	TextureDir  string          `yaml:"texture_dir"`
	Textures    []TextureConfig `yaml:"textures"`
	SpinRate    float32         `yaml:"spin_rate"`
	ClearColor  [4]float32      `yaml:"clear_color"`
	BlendMode   string          `yaml:"blend_mode"`
	Debug       bool            `yaml:"debug"`
	HistorySize int             `yaml:"history_size"`
}

// Blend mode names accepted by BlendMode.
const (
	BlendFaithful  = "faithful"
	BlendCorrected = "corrected"
)

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1400,
			Height: 1200,
			Title:  "Main Screen",
			VSync:  true,
		},
		Camera: CameraConfig{
			MoveSpeed:        5.0,
			ZoomSpeed:        200.0,
			MouseSensitivity: 0.5,
			Distance:         18.0,
			FOV:              45.0,
			Near:             0.1,
			Far:              100.0,
		},
		TextureDir: "textures",
		Textures: []TextureConfig{
			{Name: "Wood", File: "wood.jpg"},
			{Name: "Metal", File: "metal.jpg"},
			{Name: "Concrete", File: "concrete.jpg"},
			{Name: "Grass", File: "grass.jpeg"},
			{Name: "Stone", File: "stone.jpeg"},
		},
		SpinRate:    0.4,
		ClearColor:  [4]float32{0.6, 0.8, 1.0, 1.0},
		BlendMode:   BlendFaithful,
		HistorySize: 100,
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile is Load for a file the user asked for: it must exist.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the viewer cannot start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if len(c.Textures) == 0 {
		return errors.New("at least one texture is required")
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("fov must be in (0, 180), got %v", c.Camera.FOV)
	}
	switch c.BlendMode {
	case BlendFaithful, BlendCorrected:
	default:
		return fmt.Errorf("unknown blend mode %q", c.BlendMode)
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("history size must be at least 1, got %d", c.HistorySize)
	}
	return nil
}

// TexturePaths joins every texture file with TextureDir.
func (c Config) TexturePaths() []string {
	paths := make([]string, len(c.Textures))
	for i, t := range c.Textures {
		paths[i] = filepath.Join(c.TextureDir, t.File)
	}
	return paths
}

// TextureNames lists the display names in load order.
func (c Config) TextureNames() []string {
	names := make([]string, len(c.Textures))
	for i, t := range c.Textures {
		names[i] = t.Name
	}
	return names
}

// FromFlags parses args (without the program name), loads the selected
// config file and applies the flags that were set explicitly.
func FromFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	path := fs.String("config", DefaultPath, "path to a YAML config file")
	textures := fs.String("textures", "", "texture directory (overrides texture_dir)")
	width := fs.Int("width", 0, "window width")
	height := fs.Int("height", 0, "window height")
	blend := fs.String("blend", "", "blend normalisation: faithful or corrected")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	load := Load
	if explicit {
		load = LoadFile
	}
	cfg, err := load(*path)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "textures":
			cfg.TextureDir = *textures
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "blend":
			cfg.BlendMode = *blend
		case "debug":
			cfg.Debug = *debug
		}
	})
	return cfg, cfg.Validate()
}
