package theme

import (
	"maps"
	"slices"

	theme "github.com/goliatone/go-theme"
)

// RendererConfig flattens a selection into the configuration renderers
// consume. Without a selection only the fallback partials are kept.
func RendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		if len(fallbacks) == 0 {
			return nil
		}
		return &theme.RendererConfig{
			Partials: maps.Clone(fallbacks),
			AssetURL: func(string) string { return "" },
		}
	}
	cfg := selection.RendererTheme(fallbacks)
	return &cfg
}

// AssetNames lists the asset keys a selection can resolve, sorted.
func AssetNames(selection *theme.Selection) []string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	keys := maps.Clone(selection.Manifest.Assets.Files)
	if keys == nil {
		keys = map[string]string{}
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		maps.Copy(keys, variant.Assets.Files)
	}
	var names []string
	for name := range keys {
		if _, ok := selection.Asset(name); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
