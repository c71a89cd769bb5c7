// Package config loads the gallery configuration from a YAML file with
// DROPDOWN_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/marcus/dropdown/pkg/ui/selectbox"
)

const configFile = ".dropdown/config.yaml"

const envPrefix = "DROPDOWN_"

// TerminalGuardBand is the guard band written to new configs. The widget
// default (viewmon.DefaultGuardBand) is taller than most terminals, which
// would close every open list on the first scroll. Two rows closes a list
// once its box is hidden under the gallery header.
const TerminalGuardBand = 2

// Portal targets for field option lists.
const (
	PortalRoot = "root" // shared top layer
	PortalPage = "page" // page layer, drawn under root
)

// Field is one select on the gallery page.
type Field struct {
	Name        string             `yaml:"name" koanf:"name"`
	Placeholder string             `yaml:"placeholder" koanf:"placeholder"`
	Size        string             `yaml:"size,omitempty" koanf:"size"`
	View        string             `yaml:"view,omitempty" koanf:"view"`
	Disabled    bool               `yaml:"disabled,omitempty" koanf:"disabled"`
	Opened      bool               `yaml:"opened,omitempty" koanf:"opened"`
	Fixed       bool               `yaml:"fixed,omitempty" koanf:"fixed"`
	Options     []selectbox.Option `yaml:"options" koanf:"options"`
}

// Config is the gallery configuration.
type Config struct {
	GuardBand     int     `yaml:"guard_band" koanf:"guard_band"`
	Fixed         bool    `yaml:"fixed" koanf:"fixed"`
	Portal        string  `yaml:"portal" koanf:"portal"`
	CloseOnChoose bool    `yaml:"close_on_choose" koanf:"close_on_choose"`
	ScrollStep    int     `yaml:"scroll_step" koanf:"scroll_step"`
	Intro         string  `yaml:"intro" koanf:"intro"`
	Fields        []Field `yaml:"fields" koanf:"fields"`
}

// Path returns the config file location under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		GuardBand:     TerminalGuardBand,
		Portal:        PortalRoot,
		CloseOnChoose: true,
		ScrollStep:    3,
		Intro:         defaultIntro,
		Fields:        DefaultFields(),
	}
}

// DefaultFields returns the sample fields shown when none are configured.
func DefaultFields() []Field {
	return []Field{
		{
			Name:        "priority",
			Placeholder: "Priority",
			Options: []selectbox.Option{
				{Title: "P0 critical", Value: "P0"},
				{Title: "P1 high", Value: "P1"},
				{Title: "P2 medium", Value: "P2"},
				{Title: "P3 low", Value: "P3"},
			},
		},
		{
			Name:        "status",
			Placeholder: "Status",
			View:        "primary",
			Options: []selectbox.Option{
				{Title: "Open", Value: "open"},
				{Title: "In progress", Value: "in_progress"},
				{Title: "In review", Value: "in_review"},
				{Title: "Closed", Value: "closed"},
			},
		},
		{
			Name:        "type",
			Placeholder: "Type",
			Size:        "s",
			Fixed:       true,
			Options: []selectbox.Option{
				{Title: "Bug", Value: "bug"},
				{Title: "Feature", Value: "feature"},
				{Title: "Task", Value: "task"},
				{Title: "Epic", Value: "epic"},
				{Title: "Chore", Value: "chore"},
			},
		},
		{
			Name:        "archived",
			Placeholder: "Archived (disabled)",
			Disabled:    true,
			Size:        "l",
		},
	}
}

const defaultIntro = `# Select gallery

Click a box to open its list, click an option to choose it, and click
anywhere else to close it. Scroll with the mouse wheel: open lists follow
their box, and close once the box scrolls within ` + "`guard_band`" + ` rows of
the top or below the bottom. Raise ` + "`guard_band`" + ` to close lists sooner.

## Fields
`

// Load reads the config at path, then applies DROPDOWN_* environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()
	cfg.Fields = nil

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// DROPDOWN_GUARD_BAND -> guard_band
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if len(cfg.Fields) == 0 {
		cfg.Fields = DefaultFields()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.GuardBand < 0 {
		return fmt.Errorf("guard_band must be non-negative")
	}
	if c.ScrollStep <= 0 {
		return fmt.Errorf("scroll_step must be positive")
	}
	if c.Portal != PortalRoot && c.Portal != PortalPage {
		return fmt.Errorf("invalid portal %q: must be one of %s, %s", c.Portal, PortalRoot, PortalPage)
	}

	seen := make(map[string]bool, len(c.Fields))
	for i, f := range c.Fields {
		if f.Name == "" {
			return fmt.Errorf("fields[%d]: name is required", i)
		}
		if seen[f.Name] {
			return fmt.Errorf("fields[%d]: duplicate name %q", i, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// Field returns the field named name.
func (c *Config) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
