// Package config resolves named database profiles from databases.yaml. A
// profile names the store file, the relay base URL, and an optional schema
// file overriding the built-in catalog.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is where profiles are looked up relative to the working
	// directory.
	DefaultPath = "config/databases.yaml"

	defaultProfileName = "default"
	envProfile         = "RELAYMETER_DB"
)

// Profile is one named database target.
type Profile struct {
	Type       string `yaml:"type"`
	Path       string `yaml:"path"`
	BaseURL    string `yaml:"base_url"`
	SchemaPath string `yaml:"schema_path,omitempty"`
}

// Config maps profile names to profiles.
type Config map[string]Profile

// DefaultProfile is what a run without any configuration file gets.
func DefaultProfile() Profile {
	return Profile{
		Type:    "sqlite",
		Path:    "data/model_stats.db",
		BaseURL: "https://api.zhimiaonengzhi.com/api",
	}
}

// Load reads profiles from DefaultPath.
func Load() (Config, error) {
	return LoadFrom(DefaultPath)
}

// LoadFrom reads profiles from path. A missing file is not an error; it
// yields a config holding only the built-in default profile.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{defaultProfileName: DefaultProfile()}, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if len(cfg) == 0 {
		cfg = Config{defaultProfileName: DefaultProfile()}
	}
	return cfg, nil
}

// ActiveProfileName returns the profile selected by environment, falling
// back to "default".
func ActiveProfileName() string {
	if name := strings.TrimSpace(os.Getenv(envProfile)); name != "" {
		return name
	}
	return defaultProfileName
}

// Profile resolves the named profile, filling unset fields from the built-in
// default. Only sqlite-backed profiles are usable by this pipeline.
func (c Config) Profile(name string) (Profile, error) {
	p, ok := c[name]
	if !ok {
		return Profile{}, fmt.Errorf("config: profile %q not found (available: %s)",
			name, strings.Join(c.Names(), ", "))
	}

	def := DefaultProfile()
	if p.Type == "" {
		p.Type = def.Type
	}
	if p.Type != "sqlite" {
		return Profile{}, fmt.Errorf("config: profile %q is not a sqlite database (type %q)", name, p.Type)
	}
	if p.Path == "" {
		p.Path = def.Path
	}
	if p.BaseURL == "" {
		p.BaseURL = def.BaseURL
	}
	return p, nil
}

// Names lists the configured profile names, sorted.
func (c Config) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
