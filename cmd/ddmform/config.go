package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ddmform/pkg/i18n"
)

// config mirrors the YAML configuration file. Flags override file values.
type config struct {
	Locale      string `yaml:"locale"`
	Theme       string `yaml:"theme"`
	Variant     string `yaml:"variant"`
	Renderer    string `yaml:"renderer"`
	Catalogs    string `yaml:"catalogs"`
	AssetPrefix string `yaml:"assetPrefix"`
}

func loadConfig(path string) (config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// merge overlays the flag values whose flags were set on the command line.
func (c config) merge(flags config, changed func(string) bool) config {
	if changed("locale") {
		c.Locale = flags.Locale
	}
	if changed("theme") {
		c.Theme = flags.Theme
	}
	if changed("variant") {
		c.Variant = flags.Variant
	}
	if changed("renderer") {
		c.Renderer = flags.Renderer
	}
	if changed("catalogs") {
		c.Catalogs = flags.Catalogs
	}
	if changed("asset-prefix") {
		c.AssetPrefix = flags.AssetPrefix
	}
	return c
}

// catalog returns the bundled catalog extended with the configured
// directory, when one is set.
func (c config) catalog() (*i18n.Catalog, error) {
	catalog, err := i18n.Default()
	if err != nil {
		return nil, err
	}
	if dir := strings.TrimSpace(c.Catalogs); dir != "" {
		if err := catalog.Load(os.DirFS(dir), "."); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}
