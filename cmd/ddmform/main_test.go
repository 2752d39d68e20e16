package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ddmform/pkg/ddm"
	"github.com/goliatone/go-ddmform/pkg/validation"
)

const contactXSD = `<root available-locales="en_US,es_ES" default-locale="en_US">
  <dynamic-element dataType="string" name="Email" type="text" required="true">
    <meta-data locale="en_US"><entry name="label"><![CDATA[Email]]></entry></meta-data>
    <meta-data locale="es_ES"><entry name="label"><![CDATA[Correo]]></entry></meta-data>
  </dynamic-element>
  <dynamic-element dataType="integer" name="Age" type="ddm-integer"/>
</root>`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseCmd_PrintsStructure(t *testing.T) {
	path := writeFile(t, "contact.xsd", contactXSD)

	out, err := execute(t, "parse", path, "--locale", "es_ES")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var structure ddm.Structure
	if err := json.Unmarshal([]byte(out), &structure); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if structure.Locale != "es_ES" || len(structure.Fields) != 2 {
		t.Fatalf("unexpected structure %+v", structure)
	}
	if structure.Fields[0].Label != "Correo" || !structure.Fields[0].Required {
		t.Fatalf("unexpected first field %+v", structure.Fields[0])
	}
}

func TestParseCmd_PrintsNullForAbsence(t *testing.T) {
	cases := map[string][]string{
		"structure": {"parse"},
		"fields":    {"parse", "--fields"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "empty.xsd", "<root></root>")
			out, err := execute(t, append(args, path)...)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if out != "null\n" {
				t.Fatalf("expected null, got %q", out)
			}
		})
	}
}

func TestRenderCmd_WritesOutputFile(t *testing.T) {
	path := writeFile(t, "contact.xsd", contactXSD)
	output := filepath.Join(t.TempDir(), "form.html")

	if _, err := execute(t, "render", path, "--output", output, "--action", "/submit"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	for _, want := range []string{`action="/submit"`, `name="Email"`, `data-theme="default"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestRenderCmd_NoFieldsFails(t *testing.T) {
	path := writeFile(t, "empty.xsd", "<root/>")
	if _, err := execute(t, "render", path); err == nil || !strings.Contains(err.Error(), "definition has no fields") {
		t.Fatalf("expected no fields error, got %v", err)
	}
}

func TestValidateCmd(t *testing.T) {
	path := writeFile(t, "contact.xsd", contactXSD)

	valid := writeFile(t, "valid.json", `{"Email": "ada@example.com", "Age": 36}`)
	out, err := execute(t, "validate", path, valid)
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	var result validation.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid submission, got %+v", result)
	}

	invalid := writeFile(t, "invalid.json", `{"Age": "many"}`)
	out, err = execute(t, "validate", path, invalid)
	if err == nil || err.Error() != "submission has 2 issue(s)" {
		t.Fatalf("expected issues error, got %v", err)
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	fields := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		fields = append(fields, issue.Field)
	}
	if diff := cmp.Diff([]string{"Age", "Email"}, fields); diff != "" {
		t.Fatalf("issue fields mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthStyleCmd(t *testing.T) {
	out, err := execute(t, "auth-style", "--method", "email")
	if err != nil {
		t.Fatalf("auth-style: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"placeholder: Email address",
		"keyboard: email-address",
		"inputmode: email",
		"icon: /assets/themes/default/default-mail-icon.png",
	}
	if len(lines) != len(want)+1 {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if diff := cmp.Diff(want, lines[:len(want)]); diff != "" {
		t.Fatalf("auth style mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(lines[len(want)], "button: ") {
		t.Fatalf("expected button style line, got %q", lines[len(want)])
	}
}

func TestAuthStyleCmd_ConfigAndFlagPrecedence(t *testing.T) {
	cfg := writeFile(t, "ddmform.yaml", "locale: es_ES\ntheme: default\n")

	out, err := execute(t, "auth-style", "--config", cfg, "--method", "userId")
	if err != nil {
		t.Fatalf("auth-style: %v", err)
	}
	if !strings.Contains(out, "keyboard: number-pad") || !strings.Contains(out, "icon: /assets/themes/default/default-user-icon.png") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	out, err = execute(t, "auth-style", "--config", cfg, "--locale", "en_US")
	if err != nil {
		t.Fatalf("auth-style: %v", err)
	}
	if !strings.Contains(out, "placeholder: Email address") {
		t.Fatalf("expected flag locale to win, got:\n%s", out)
	}

	out, err = execute(t, "auth-style", "--config", cfg)
	if err != nil {
		t.Fatalf("auth-style: %v", err)
	}
	if !strings.Contains(out, "placeholder: Correo electrónico") {
		t.Fatalf("expected config locale, got:\n%s", out)
	}
}

func TestAuthStyleCmd_UnknownMethod(t *testing.T) {
	if _, err := execute(t, "auth-style", "--method", "phone"); err == nil || !strings.Contains(err.Error(), "unknown auth method") {
		t.Fatalf("expected unknown method error, got %v", err)
	}
}

func TestConfigMerge(t *testing.T) {
	file := config{Locale: "es_ES", Theme: "acme", Renderer: "vanilla"}
	flags := config{Locale: "en_US", Theme: "ignored", AssetPrefix: "/static"}
	changed := map[string]bool{"locale": true, "asset-prefix": true}

	got := file.merge(flags, func(name string) bool { return changed[name] })
	want := config{Locale: "en_US", Theme: "acme", Renderer: "vanilla", AssetPrefix: "/static"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestThemesCmd(t *testing.T) {
	out, err := execute(t, "themes")
	if err != nil {
		t.Fatalf("themes: %v", err)
	}
	want := []string{
		"default",
		"  default-button /assets/themes/default/default-button.png",
		"  default-mail-icon /assets/themes/default/default-mail-icon.png",
		"  default-user-icon /assets/themes/default/default-user-icon.png",
	}
	if diff := cmp.Diff(want, strings.Split(strings.TrimSpace(out), "\n")); diff != "" {
		t.Fatalf("themes output mismatch (-want +got):\n%s", diff)
	}
}
