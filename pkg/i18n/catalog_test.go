package i18n_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ddmform/pkg/i18n"
)

func TestDefault_ResolvesBundledMessages(t *testing.T) {
	catalog, err := i18n.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}

	if diff := cmp.Diff([]string{"en_US", "es_ES"}, catalog.Locales()); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}

	cases := []struct {
		locale string
		key    string
		want   string
	}{
		{locale: "es_ES", key: "form.submit", want: "Enviar"},
		{locale: "es_MX", key: "form.submit", want: "Enviar"},
		{locale: "en_US", key: "form.select.placeholder", want: "Choose an option"},
		{locale: "fr_FR", key: "default-email", want: "Email address"},
		{locale: "", key: "default-userId", want: "User ID"},
	}
	for _, tc := range cases {
		got, err := catalog.Translate(tc.locale, tc.key)
		if err != nil {
			t.Fatalf("translate %s/%s: %v", tc.locale, tc.key, err)
		}
		if got != tc.want {
			t.Fatalf("translate %s/%s: expected %q, got %q", tc.locale, tc.key, tc.want, got)
		}
	}
}

func TestTranslate_FormatsArgsAndReportsMissing(t *testing.T) {
	catalog := i18n.New()
	catalog.Add("en_US", map[string]string{"count": "%d fields", "plain": "No verbs"})
	catalog.Add("es_ES", map[string]string{"plain": "Sin verbos"})

	got, err := catalog.Translate("en_US", "count", 3)
	if err != nil || got != "3 fields" {
		t.Fatalf("expected formatted message, got %q (%v)", got, err)
	}

	got, err = catalog.Translate("es_ES", "plain", "ignored")
	if err != nil || got != "Sin verbos" {
		t.Fatalf("expected message without verbs untouched, got %q (%v)", got, err)
	}

	got, err = catalog.Translate("es_ES", "count", 2)
	if err != nil || got != "2 fields" {
		t.Fatalf("expected default-locale fallback, got %q (%v)", got, err)
	}

	if _, err := catalog.Translate("es_ES", "unknown"); !errors.Is(err, i18n.ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestLookup_PrefersScopedKey(t *testing.T) {
	catalog := i18n.New()
	catalog.Add("en_US", map[string]string{
		"default-email": "Email address",
		"flat-email":    "E-mail",
	})

	if got := catalog.Lookup("en_US", "default", "email", "flat"); got != "E-mail" {
		t.Fatalf("expected scoped message, got %q", got)
	}
	if got := catalog.Lookup("en_US", "default", "email", "dark"); got != "Email address" {
		t.Fatalf("expected table fallback, got %q", got)
	}
	if got := catalog.Lookup("en_US", "default", "phone", "dark"); got != "phone" {
		t.Fatalf("expected key when nothing matches, got %q", got)
	}
}

func TestLoad_FlattensNestedYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"i18n/pt_BR.yaml":   {Data: []byte("form:\n  submit: Enviar\n  errors:\n    required: Obrigatório\ncount: 3\n")},
		"i18n/README.md":    {Data: []byte("ignored")},
		"i18n/nested/x.yml": {Data: []byte("a: b")},
	}

	catalog := i18n.New(i18n.WithDefaultLocale("pt_BR"))
	if err := catalog.Load(fsys, "i18n"); err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"pt_BR"}, catalog.Locales()); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}
	got, err := catalog.Translate("pt", "form.errors.required")
	if err != nil || got != "Obrigatório" {
		t.Fatalf("expected nested key, got %q (%v)", got, err)
	}
	if got, _ := catalog.Translate("pt_BR", "count"); got != "3" {
		t.Fatalf("expected scalar value stringified, got %q", got)
	}
}

func TestLoad_RejectsInvalidYAML(t *testing.T) {
	fsys := fstest.MapFS{"en_US.yaml": {Data: []byte("form: [unclosed")}}
	if err := i18n.New().Load(fsys, "."); err == nil {
		t.Fatalf("expected parse error")
	}
}
