package config

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/input"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/vmath"
	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	TickInterval string         `yaml:"tick_interval"`
	HoldWindow   string         `yaml:"hold_window"`
	StartX       float64        `yaml:"start_x"`
	Audio        AudioConfig    `yaml:"audio"`
	Targets      []TargetConfig `yaml:"targets"`

	// Keys overrides default bindings: command name to key names, "none" unbinds
	Keys map[string][]string `yaml:"keys"`
}

type AudioConfig struct {
	Enabled *bool    `yaml:"enabled"`
	Volume  *float64 `yaml:"volume"`
}

type TargetConfig struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Summary  string    `yaml:"summary"`
	Tags     []string  `yaml:"tags"`
	Position []float64 `yaml:"position"`
}

// Default returns the built-in configuration with the default project catalog
func Default() *Config {
	enabled := true
	volume := parameter.AudioDefaultVolume
	cfg := &Config{
		TickInterval: parameter.TickInterval.String(),
		HoldWindow:   parameter.KeyHoldWindow.String(),
		Audio:        AudioConfig{Enabled: &enabled, Volume: &volume},
	}
	for _, p := range content.DefaultProjects() {
		cfg.Targets = append(cfg.Targets, TargetConfig{
			ID:       p.ID,
			Title:    p.Title,
			Summary:  p.Summary,
			Tags:     p.Tags,
			Position: []float64{p.Position.X, p.Position.Y, p.Position.Z},
		})
	}
	return cfg
}

// Load reads a YAML file, unset fields fall back to Default; empty path returns Default
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes and fills unset fields from Default
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.TickInterval == "" {
		c.TickInterval = def.TickInterval
	}
	if c.HoldWindow == "" {
		c.HoldWindow = def.HoldWindow
	}
	if c.Audio.Enabled == nil {
		c.Audio.Enabled = def.Audio.Enabled
	}
	if c.Audio.Volume == nil {
		c.Audio.Volume = def.Audio.Volume
	}
	if c.Targets == nil {
		c.Targets = def.Targets
	}
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	} else if d < parameter.MinTickInterval || d > parameter.MaxTickInterval {
		el.Add(fmt.Errorf("tick_interval must be between %v and %v", parameter.MinTickInterval, parameter.MaxTickInterval))
	}

	d, err = time.ParseDuration(c.HoldWindow)
	if err != nil {
		el.Add(fmt.Errorf("parsing hold_window: %w", err))
	} else if d <= 0 {
		el.Add(fmt.Errorf("hold_window must be positive"))
	}

	if c.StartX < parameter.BoundMinX || c.StartX > parameter.BoundMaxX {
		el.Add(fmt.Errorf("start_x %v outside [%v, %v]", c.StartX, parameter.BoundMinX, parameter.BoundMaxX))
	}

	el.Add(c.Audio.Validate())

	if _, err := input.LoadKeyConfig(c.Keys); err != nil {
		el.Add(err)
	}

	seen := make(map[string]bool, len(c.Targets))
	for i, t := range c.Targets {
		if err := t.Validate(); err != nil {
			el.Add(fmt.Errorf("target %d: %w", i, err))
		}
		if t.ID != "" && seen[t.ID] {
			el.Add(fmt.Errorf("target %d: duplicate id %q", i, t.ID))
		}
		seen[t.ID] = true
	}

	return el.Err()
}

func (c *AudioConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Volume != nil && (*c.Volume < 0 || *c.Volume > 1) {
		el.Add(fmt.Errorf("audio volume %v outside [0, 1]", *c.Volume))
	}

	return el.Err()
}

func (c *TargetConfig) Validate() error {
	el := errors.NewErrorList()

	if c.ID == "" {
		el.Add(fmt.Errorf("id is required"))
	}
	if n := len(c.Position); n == 0 || n > 3 {
		el.Add(fmt.Errorf("position needs 1 to 3 components, got %d", n))
	}

	return el.Err()
}

// Tick returns the parsed tick interval, Validate must have passed
func (c *Config) Tick() time.Duration {
	d, _ := time.ParseDuration(c.TickInterval)
	return d
}

// Hold returns the parsed key hold window, Validate must have passed
func (c *Config) Hold() time.Duration {
	d, _ := time.ParseDuration(c.HoldWindow)
	return d
}

// AudioEnabled reports the effective audio switch
func (c *Config) AudioEnabled() bool {
	return c.Audio.Enabled == nil || *c.Audio.Enabled
}

// AudioVolume returns the effective master volume, an explicit zero is kept
func (c *Config) AudioVolume() float64 {
	if c.Audio.Volume == nil {
		return parameter.AudioDefaultVolume
	}
	return *c.Audio.Volume
}

// Catalog builds the project catalog in file order
func (c *Config) Catalog() *content.Catalog {
	projects := make([]content.Project, 0, len(c.Targets))
	for _, t := range c.Targets {
		projects = append(projects, content.Project{
			ID:       t.ID,
			Title:    t.Title,
			Summary:  t.Summary,
			Tags:     t.Tags,
			Position: vmath.V3FFromSlice(t.Position),
		})
	}
	return content.NewCatalog(projects)
}

// KeyTable merges the keys section over the default bindings
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
