package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var defaultLocales embed.FS

// Default returns a catalog preloaded with the bundled English and Spanish
// messages.
func Default(options ...Option) (*Catalog, error) {
	c := New(options...)
	if err := c.Load(defaultLocales, "locales"); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads every "<locale>.yaml" (or .yml) file in dir.
func (c *Catalog) Load(fsys fs.FS, dir string) error {
	if fsys == nil {
		return fmt.Errorf("i18n: file system is nil")
	}
	if dir == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("i18n: read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := path.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", name, err)
		}
		messages, err := ParseMessages(data)
		if err != nil {
			return fmt.Errorf("i18n: parse %s: %w", name, err)
		}
		c.Add(strings.TrimSuffix(name, ext), messages)
	}
	return nil
}

// ParseMessages decodes a YAML document into a flat key/value table.
func ParseMessages(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flatten("", raw, out)
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	keys := make([]string, 0, len(node))
	for key := range node {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch value := node[key].(type) {
		case map[string]any:
			flatten(full, value, out)
		case nil:
			out[full] = ""
		default:
			out[full] = fmt.Sprint(value)
		}
	}
}
