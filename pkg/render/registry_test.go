package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ddmform/pkg/model"
	"github.com/goliatone/go-ddmform/pkg/render"
)

type namedRenderer string

func (r namedRenderer) Name() string        { return string(r) }
func (r namedRenderer) ContentType() string { return "text/plain" }
func (r namedRenderer) Render(context.Context, model.FormModel, render.RenderOptions) ([]byte, error) {
	return []byte(r), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry(namedRenderer("vanilla"))
	if err := registry.Register(namedRenderer("tui")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(namedRenderer("tui")); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}

	if diff := cmp.Diff([]string{"tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if got := registry.First(); got == nil || got.Name() != "vanilla" {
		t.Fatalf("expected first registered renderer, got %v", got)
	}
	if _, err := registry.Get("liferay"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestRegistry_FirstOnEmpty(t *testing.T) {
	if got := render.NewRegistry().First(); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
