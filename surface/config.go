package surface

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/softrast/softrast/pixel"
)

// Config selects the dimensions, pixel format and threading of a
// surface.
type Config struct {
	Width         int
	Height        int
	Format        string
	RenderThreads int
	Enable3D      bool
}

// DefaultConfig returns a single-threaded 320x240 RGB24 surface
// configuration with 3D rendering enabled.
func DefaultConfig() Config {
	return Config{
		Width:         320,
		Height:        240,
		Format:        pixel.RGB24.String(),
		RenderThreads: 1,
		Enable3D:      true,
	}
}

// LoadConfig reads a TOML surface configuration. Keys missing
// from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("surface: loading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration as TOML.
func SaveConfig(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("surface: saving config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("surface: saving config: %w", err)
	}
	return nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface: bad dimensions %dx%d", c.Width, c.Height)
	}
	if _, err := c.format(); err != nil {
		return err
	}
	return nil
}

func (c Config) format() (pixel.Format, error) {
	return pixel.ParseFormat(c.Format)
}
