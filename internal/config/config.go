// Package config holds the command-line and file configuration shared by the
// GUI and terminal hosts.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lifeloop/internal/core"
	"lifeloop/internal/engine"
	"lifeloop/internal/widgets"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidSize    = errors.New("config: width and height must be positive")
	ErrInvalidSamples = errors.New("config: samples must be positive")
	ErrInvalidScale   = errors.New("config: scale must be positive")
	ErrUnknownFormat  = errors.New("config: unknown file format")
)

// Config represents the parameters of one session.
type Config struct {
	Sim      string
	Width    int
	Height   int
	Pattern  string
	Seed     int64
	FPS      core.Rate
	Autoplay bool
	Samples  int
	Scale    int
	LogLevel string
	LogFile  string
	Path     string
}

// file is the on-disk schema. FPS accepts a number or "max".
type file struct {
	Sim      *string `toml:"sim" yaml:"sim"`
	Width    *int    `toml:"width" yaml:"width"`
	Height   *int    `toml:"height" yaml:"height"`
	Pattern  *string `toml:"pattern" yaml:"pattern"`
	Seed     *int64  `toml:"seed" yaml:"seed"`
	FPS      any     `toml:"fps" yaml:"fps"`
	Autoplay *bool   `toml:"autoplay" yaml:"autoplay"`
	Samples  *int    `toml:"samples" yaml:"samples"`
	Scale    *int    `toml:"scale" yaml:"scale"`
	LogLevel *string `toml:"log_level" yaml:"log_level"`
	LogFile  *string `toml:"log_file" yaml:"log_file"`
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	return Config{
		Sim:      "life",
		Width:    90,
		Height:   60,
		Pattern:  "random",
		Seed:     42,
		FPS:      engine.DefaultRate,
		Samples:  widgets.DefaultMaxSamples,
		Scale:    1,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run ("+core.SimNames()+")")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern (empty, glider, pulsar, random)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns and resets")
	fs.Var(&c.FPS, "fps", "target frames per second, or max")
	fs.BoolVar(&c.Autoplay, "autoplay", c.Autoplay, "start running instead of paused")
	fs.IntVar(&c.Samples, "samples", c.Samples, "frames in the rolling fps window")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file")
	fs.StringVar(&c.Path, "config", c.Path, "TOML or YAML configuration file")
}

// Parse reads args into a Config. Values from -config are applied first and
// any flag set explicitly on the command line wins over them.
func Parse(name string, args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Path != "" {
		// The flags are bound to cfg, so capture the explicit ones before
		// the file overwrites it.
		set := map[string]string{}
		fs.Visit(func(f *flag.Flag) {
			if f.Name != "config" {
				set[f.Name] = f.Value.String()
			}
		})
		loaded, err := Load(cfg.Path, Default())
		if err != nil {
			return cfg, err
		}
		loaded.Path = cfg.Path
		cfg = loaded
		reapply := flag.NewFlagSet(name, flag.ContinueOnError)
		cfg.Bind(reapply)
		for flagName, value := range set {
			if err := reapply.Set(flagName, value); err != nil {
				return cfg, err
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load overlays the file at path onto base. The format follows the
// extension: .toml, .yaml or .yml.
func Load(path string, base Config) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: read %s: %w", path, err)
	}
	var f file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(content, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &f)
	default:
		return base, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
	if err != nil {
		return base, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f.apply(base)
}

func (f file) apply(c Config) (Config, error) {
	if f.Sim != nil {
		c.Sim = *f.Sim
	}
	if f.Width != nil {
		c.Width = *f.Width
	}
	if f.Height != nil {
		c.Height = *f.Height
	}
	if f.Pattern != nil {
		c.Pattern = *f.Pattern
	}
	if f.Seed != nil {
		c.Seed = *f.Seed
	}
	if f.FPS != nil {
		r, err := rateValue(f.FPS)
		if err != nil {
			return c, err
		}
		c.FPS = r
	}
	if f.Autoplay != nil {
		c.Autoplay = *f.Autoplay
	}
	if f.Samples != nil {
		c.Samples = *f.Samples
	}
	if f.Scale != nil {
		c.Scale = *f.Scale
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.LogFile != nil {
		c.LogFile = *f.LogFile
	}
	return c, nil
}

func rateValue(v any) (core.Rate, error) {
	switch n := v.(type) {
	case string:
		return core.ParseRate(n)
	case int:
		return core.ParseRate(strconv.Itoa(n))
	case int64:
		return core.ParseRate(strconv.FormatInt(n, 10))
	case float64:
		return core.ParseRate(strconv.FormatFloat(n, 'f', -1, 64))
	default:
		return 0, fmt.Errorf("%w: fps %v", core.ErrInvalidRate, v)
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, ok := core.Sims()[c.Sim]; !ok {
		return fmt.Errorf("config: unknown sim %q (have %s)", c.Sim, core.SimNames())
	}
	if c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidSize
	}
	if c.Samples <= 0 {
		return ErrInvalidSamples
	}
	if c.Scale <= 0 {
		return ErrInvalidScale
	}
	if !(c.FPS > 0) {
		return fmt.Errorf("%w: %v", core.ErrInvalidRate, float64(c.FPS))
	}
	return nil
}

// SimConfig is the parameter map handed to the simulation factory.
func (c Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"pattern": c.Pattern,
	}
}
