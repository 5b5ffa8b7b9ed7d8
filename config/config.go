// Package config loads explorer settings from a TOML file
package config

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/mandelbrots-in-heaven/fractal"
	"github.com/lixenwraith/mandelbrots-in-heaven/input"
	"github.com/lixenwraith/mandelbrots-in-heaven/palette"
	"github.com/lixenwraith/mandelbrots-in-heaven/terminal"
)

// AppName names the config directory and log files
const AppName = "mandelbrots-in-heaven"

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full settings tree
type Config struct {
	View     ViewConfig          `toml:"view"`
	Display  DisplayConfig       `toml:"display"`
	Palettes map[string][]string `toml:"palettes"`
	Audio    AudioConfig         `toml:"audio"`
	Keys     map[string]string   `toml:"keys"`

	// Keys present in the file that map to no setting
	Warnings []string `toml:"-"`
}

// ViewConfig holds the startup view; reset returns here
type ViewConfig struct {
	OriginX     float64 `toml:"origin_x"`
	OriginY     float64 `toml:"origin_y"`
	SizeX       float64 `toml:"size_x"`
	SizeY       float64 `toml:"size_y"`
	Iterations  int64   `toml:"iterations"`
	ZoomFactor  float64 `toml:"zoom_factor"`
	PanFraction float64 `toml:"pan_fraction"`
}

type DisplayConfig struct {
	Color   string `toml:"color"`
	Palette string `toml:"palette"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		View: ViewConfig{
			OriginX:     -0.75,
			OriginY:     0.0,
			SizeX:       3.0,
			SizeY:       3.0,
			Iterations:  50,
			ZoomFactor:  0.25,
			PanFraction: 0.25,
		},
		Display: DisplayConfig{
			Color:   "auto",
			Palette: palette.Heaven.Name,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/mandelbrots-in-heaven/config.toml
// falling back to ~/.config on systems without XDG
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, AppName, "config.toml"), nil
}

// Load reads settings over the defaults
// An empty path reads the default location, where a missing file is not an error
// An explicit path must exist
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	for _, k := range md.Undecoded() {
		cfg.Warnings = append(cfg.Warnings, k.String())
		log.Printf("config: unknown key %q in %s", k.String(), path)
	}

	return cfg, nil
}

// Validate checks every setting, returning the first failure wrapped in ErrInvalidConfig
func (c *Config) Validate() error {
	v := c.View
	if v.Iterations < 1 || v.Iterations > fractal.MaxIterations {
		return fmt.Errorf("%w: view.iterations must be in [1, %d], got %d", ErrInvalidConfig, fractal.MaxIterations, v.Iterations)
	}
	if !(v.ZoomFactor > 0 && v.ZoomFactor < 1) {
		return fmt.Errorf("%w: view.zoom_factor must be in (0, 1), got %g", ErrInvalidConfig, v.ZoomFactor)
	}
	if v.SizeX == 0 || v.SizeY == 0 {
		return fmt.Errorf("%w: view.size_x and view.size_y must be non-zero", ErrInvalidConfig)
	}
	if !(v.PanFraction > 0 && v.PanFraction <= 1) {
		return fmt.Errorf("%w: view.pan_fraction must be in (0, 1], got %g", ErrInvalidConfig, v.PanFraction)
	}
	if _, err := terminal.ParseColorMode(c.Display.Color); err != nil {
		return fmt.Errorf("%w: display.color: %v", ErrInvalidConfig, err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %g", ErrInvalidConfig, c.Audio.Volume)
	}

	set, err := c.PaletteSet()
	if err != nil {
		return err
	}
	if _, ok := set.Lookup(c.Display.Palette); !ok {
		return fmt.Errorf("%w: display.palette %q not found (have %v)", ErrInvalidConfig, c.Display.Palette, set.Names())
	}

	if _, err := c.KeyTable(); err != nil {
		return err
	}
	return nil
}

// Iterations returns the configured budget as the kernel's type
func (c *Config) Iterations() uint32 {
	return uint32(c.View.Iterations)
}

// PaletteSet returns the builtin palettes plus custom ones in name order
// A custom palette with a builtin name replaces it
func (c *Config) PaletteSet() (*palette.Set, error) {
	set := palette.Builtin()
	for _, name := range slices.Sorted(maps.Keys(c.Palettes)) {
		p, err := palette.FromHex(name, c.Palettes[name])
		if err != nil {
			return nil, fmt.Errorf("%w: palettes.%s: %v", ErrInvalidConfig, name, err)
		}
		set.Add(p)
	}
	return set, nil
}

// KeyTable returns the default bindings merged with [keys]
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return base, nil
	}
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return input.MergeKeyTable(base, override), nil
}
