package components

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-ddmform/pkg/model"
	rendertemplate "github.com/goliatone/go-ddmform/pkg/render/template"
)

// Renderer writes the markup of one field into buf.
type Renderer func(buf *bytes.Buffer, field model.Field, data ComponentData) error

// ComponentData carries the per-field state a component renders with.
type ComponentData struct {
	Template rendertemplate.TemplateRenderer
	// ThemePartials maps partial keys ("forms.input") to template overrides.
	ThemePartials map[string]string
	// RenderChild renders a nested field below the current path.
	RenderChild func(field model.Field) (string, error)
	Control     Control
}

// Script is a JavaScript dependency emitted once per form.
type Script struct {
	Src    string
	Type   string
	Inline string
	Async  bool
	Defer  bool
	Module bool
	Attrs  map[string]string
}

func (s Script) key() string {
	if s.Src != "" {
		return "src:" + s.Src
	}
	return "inline:" + s.Inline
}

// Descriptor pairs a widget renderer with the assets it needs.
type Descriptor struct {
	Name        string
	Renderer    Renderer
	Stylesheets []string
	Scripts     []Script
}

func (d Descriptor) clone() Descriptor {
	d.Stylesheets = slices.Clone(d.Stylesheets)
	scripts := make([]Script, len(d.Scripts))
	for i, script := range d.Scripts {
		script.Attrs = maps.Clone(script.Attrs)
		scripts[i] = script
	}
	d.Scripts = scripts
	return d
}

// Registry maps widget names to descriptors. DDM editor types that have no
// widget of their own ("ddm-color", custom portal editors) can be pointed at
// an existing widget with Alias.
type Registry struct {
	mu      sync.RWMutex
	widgets map[string]Descriptor
	aliases map[string]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		widgets: make(map[string]Descriptor),
		aliases: make(map[string]string),
	}
}

// Register stores descriptor under name, replacing any previous widget.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	name = normalize(name)
	switch {
	case name == "":
		return errors.New("components: widget name is required")
	case descriptor.Renderer == nil:
		return fmt.Errorf("components: widget %q has no renderer", name)
	}

	descriptor.Name = name
	r.mu.Lock()
	r.widgets[name] = descriptor.clone()
	r.mu.Unlock()
	return nil
}

// MustRegister is Register for static setup; it panics on error.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Alias resolves editorType to the widget registered as name.
func (r *Registry) Alias(editorType, name string) error {
	editorType, name = normalize(editorType), normalize(name)
	if editorType == "" || name == "" {
		return errors.New("components: alias requires an editor type and a widget")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.widgets[name]; !ok {
		return fmt.Errorf("components: alias %q targets unknown widget %q", editorType, name)
	}
	r.aliases[editorType] = name
	return nil
}

// Descriptor returns a copy of the widget registered as name or aliased to it.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.lookup(name)
	if !ok {
		return Descriptor{}, false
	}
	return descriptor.clone(), true
}

func (r *Registry) lookup(name string) (Descriptor, bool) {
	name = normalize(name)
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	descriptor, ok := r.widgets[name]
	return descriptor, ok
}

// Assets collects the stylesheets and scripts of the named widgets, each
// listed once in first-use order.
func (r *Registry) Assets(names []string) ([]string, []Script) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		stylesheets []string
		scripts     []Script
	)
	seen := make(map[string]bool)
	for _, name := range names {
		descriptor, ok := r.lookup(name)
		if !ok {
			continue
		}
		for _, href := range descriptor.Stylesheets {
			if href != "" && !seen["css:"+href] {
				seen["css:"+href] = true
				stylesheets = append(stylesheets, href)
			}
		}
		for _, script := range descriptor.Scripts {
			if key := script.key(); !seen[key] {
				seen[key] = true
				scripts = append(scripts, script)
			}
		}
	}
	return stylesheets, scripts
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
