package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ddmform/pkg/ddm"
	pkgmodel "github.com/goliatone/go-ddmform/pkg/model"
	"github.com/goliatone/go-ddmform/pkg/render"
	"github.com/goliatone/go-ddmform/pkg/schema"
)

const profileXSD = `<root available-locales="en_US,es_ES" default-locale="en_US">
  <dynamic-element dataType="string" name="Name" type="text" required="true">
    <meta-data locale="en_US"><entry name="label"><![CDATA[Name]]></entry></meta-data>
    <meta-data locale="es_ES"><entry name="label"><![CDATA[Nombre]]></entry></meta-data>
  </dynamic-element>
  <dynamic-element dataType="integer" name="Age" type="ddm-integer"/>
</root>`

func TestGenerate_RunsPipelineWithDefaults(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(WithRegistry(render.NewRegistry(renderer)))

	out, err := orch.Generate(context.Background(), Request{XSD: profileXSD, Locale: "es_ES"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "Name,Age" {
		t.Fatalf("unexpected output %q", out)
	}
	if renderer.form.Fields[0].Label != "Nombre" {
		t.Fatalf("expected spanish label, got %q", renderer.form.Fields[0].Label)
	}
	if renderer.options.Locale != "es_ES" {
		t.Fatalf("expected locale from structure, got %q", renderer.options.Locale)
	}
	if renderer.options.Theme == nil || renderer.options.Theme.Theme != "default" {
		t.Fatalf("expected default theme config, got %+v", renderer.options.Theme)
	}
	if renderer.form.ID != "" {
		t.Fatalf("inline definitions keep an empty id, got %q", renderer.form.ID)
	}
}

func TestGenerate_DefaultVanillaRenderer(t *testing.T) {
	out, err := New().Generate(context.Background(), Request{XSD: profileXSD})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<form") || !strings.Contains(html, `name="Name"`) {
		t.Fatalf("expected vanilla form markup, got:\n%s", html)
	}
}

func TestGenerate_AbsenceIsAnError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		xsd  string
		want error
	}{
		{name: "no fields", xsd: "<root></root>", want: ddm.ErrNoFields},
		{name: "malformed", xsd: "<root>", want: ddm.ErrMalformedDefinition},
		{name: "whitespace", xsd: "  ", want: ddm.ErrEmptyDefinition},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := schema.MustNewDocument(schema.SourceInline(tc.name), []byte(tc.xsd))
			orch := New(WithRegistry(render.NewRegistry(&captureRenderer{})))

			_, err := orch.Generate(context.Background(), Request{Document: &doc})
			if !errors.Is(err, ErrNoFields) {
				t.Fatalf("expected ErrNoFields, got %v", err)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected cause %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGenerate_RequiresInput(t *testing.T) {
	_, err := New().Generate(context.Background(), Request{})
	if err == nil || !strings.Contains(err.Error(), "source, document, or xsd is required") {
		t.Fatalf("expected missing input error, got %v", err)
	}
}

func TestGenerate_ParserErrorsAreWrapped(t *testing.T) {
	orch := New(
		WithParser(stubParser{err: errors.New("boom")}),
		WithRegistry(render.NewRegistry(&captureRenderer{})),
	)
	_, err := orch.Generate(context.Background(), Request{XSD: profileXSD})
	if err == nil || err.Error() != "orchestrator: parse definition: boom" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestGenerate_UnknownRenderer(t *testing.T) {
	orch := New(WithRegistry(render.NewRegistry(&captureRenderer{})))
	_, err := orch.Generate(context.Background(), Request{XSD: profileXSD, Renderer: "pdf"})
	if err == nil || !strings.Contains(err.Error(), `renderer "pdf"`) {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestGenerate_FallsBackToFirstRenderer(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithDefaultRenderer("missing"),
	)
	if _, err := orch.Generate(context.Background(), Request{XSD: profileXSD}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(renderer.form.Fields) != 2 {
		t.Fatalf("expected capture renderer to run")
	}
}

func TestGenerate_TransformDecorateLocalizeOrder(t *testing.T) {
	var steps []string
	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithSchemaTransformer(TransformerFunc(func(_ context.Context, form *pkgmodel.FormModel) error {
			steps = append(steps, "transform")
			form.Fields[0].UIHints = map[string]string{"labelKey": "profile.name"}
			return nil
		})),
		WithUIDecorators(pkgmodel.DecoratorFunc(func(form *pkgmodel.FormModel) error {
			steps = append(steps, "decorate")
			form.Title = "Profile"
			return nil
		})),
		WithTranslator(render.TranslatorFunc(func(locale, key string, _ ...any) (string, error) {
			steps = append(steps, "translate:"+locale+":"+key)
			return "Full name", nil
		})),
	)

	if _, err := orch.Generate(context.Background(), Request{XSD: profileXSD}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := []string{"transform", "decorate", "translate:en_US:profile.name"}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Fatalf("pipeline order mismatch (-want +got):\n%s", diff)
	}
	if renderer.form.Title != "Profile" || renderer.form.Fields[0].Label != "Full name" {
		t.Fatalf("expected decorated and localized form, got %+v", renderer.form)
	}
	if renderer.options.Translator == nil {
		t.Fatalf("expected orchestrator translator passed to renderer")
	}
}

func TestGenerate_DecoratorErrorAborts(t *testing.T) {
	orch := New(
		WithRegistry(render.NewRegistry(&captureRenderer{})),
		WithUIDecorators(pkgmodel.DecoratorFunc(func(*pkgmodel.FormModel) error {
			return errors.New("nope")
		})),
	)
	_, err := orch.Generate(context.Background(), Request{XSD: profileXSD})
	if err == nil || err.Error() != "orchestrator: decorate form: nope" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestForm_DerivesIDFromLocation(t *testing.T) {
	doc := schema.MustNewDocument(schema.SourceFromFile("forms/profile.xsd"), []byte(profileXSD))

	form, err := New().Form(context.Background(), Request{Document: &doc})
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if form.ID != "profile" {
		t.Fatalf("expected id profile, got %q", form.ID)
	}
}

func TestForm_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Form(ctx, Request{XSD: profileXSD}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFormID(t *testing.T) {
	cases := map[string]string{
		"":                                 "",
		"profile.xsd":                      "profile",
		"forms/contact.xml":                "contact",
		`C:\forms\survey.xsd`:              "survey",
		"https://x.test/ddm/order.xsd?v=2": "order",
	}
	for input, want := range cases {
		if got := formID(input); got != want {
			t.Fatalf("formID(%q) = %q, want %q", input, got, want)
		}
	}
}

type stubParser struct {
	structure ddm.Structure
	err       error
}

func (s stubParser) Parse(string, string) []ddm.Field {
	return s.structure.Fields
}

func (s stubParser) ParseStructure(string, string) (ddm.Structure, error) {
	return s.structure, s.err
}

func (s stubParser) ParseDocument(context.Context, schema.Document, string) (ddm.Structure, error) {
	return s.structure, s.err
}

type captureRenderer struct {
	form    pkgmodel.FormModel
	options render.RenderOptions
}

func (r *captureRenderer) Name() string {
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, form pkgmodel.FormModel, opts render.RenderOptions) ([]byte, error) {
	r.form = form
	r.options = opts
	names := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		names = append(names, field.Name)
	}
	return []byte(strings.Join(names, ",")), nil
}
