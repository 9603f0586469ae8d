package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"
)

//go:embed config.yaml
var DefaultConfig []byte

type (
	WorldConfig struct {
		Width     int    `yaml:"width" validate:"min=16,max=4096"`
		Depth     int    `yaml:"depth" validate:"min=16,max=4096"`
		Height    int    `yaml:"height" validate:"min=16,max=256"`
		Generator string `yaml:"generator" validate:"oneof=hills flat"`
		Seed      int64  `yaml:"seed"`
		Surface   int    `yaml:"surface" validate:"gte=0"`
		SavePath  string `yaml:"save_path"`
	}

	WindowConfig struct {
		Width    int    `yaml:"width" validate:"min=320"`
		Height   int    `yaml:"height" validate:"min=200"`
		Title    string `yaml:"title"`
		VSync    bool   `yaml:"vsync"`
		FPSLimit int    `yaml:"fps_limit" validate:"gte=0"`
	}

	RenderConfig struct {
		FOV            float32 `yaml:"fov" validate:"gt=10,lt=170"`
		Near           float32 `yaml:"near" validate:"gt=0"`
		RenderDistance int     `yaml:"render_distance" validate:"min=2,max=64"`
		MeshWorkers    int     `yaml:"mesh_workers" validate:"min=1,max=64"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		World   WorldConfig   `yaml:"world"`
		Window  WindowConfig  `yaml:"window"`
		Render  RenderConfig  `yaml:"render"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges and the chunk alignment of the world size.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for name, v := range map[string]int{"width": c.World.Width, "depth": c.World.Depth, "height": c.World.Height} {
		if v%16 != 0 {
			return fmt.Errorf("invalid configuration: world %s %d is not a multiple of 16", name, v)
		}
	}
	if c.World.Surface >= c.World.Height {
		return fmt.Errorf("invalid configuration: surface %d at or above world height %d", c.World.Surface, c.World.Height)
	}
	return nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposing its values on top of the embedded defaults. An empty path
// returns the defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(DefaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}

	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if cfg, err = unmarshalConfig(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
