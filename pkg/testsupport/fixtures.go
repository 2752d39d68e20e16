package testsupport

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-ddmform/internal/ddm/parser"
	"github.com/goliatone/go-ddmform/pkg/ddm"
	pkgmodel "github.com/goliatone/go-ddmform/pkg/model"
	"github.com/goliatone/go-ddmform/pkg/schema"
)

// UpdateEnv names the environment variable that rewrites golden files.
const UpdateEnv = "UPDATE_GOLDENS"

// MustLoadStructure parses the DDM definition at path for locale.
func MustLoadStructure(t *testing.T, path, locale string) ddm.Structure {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read definition: %v", err)
	}
	doc, err := schema.NewDocument(schema.SourceFromFile(path), data)
	if err != nil {
		t.Fatalf("definition document: %v", err)
	}
	structure, err := parser.New(ddm.NewParserOptions()).ParseDocument(t.Context(), doc, locale)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return structure
}

// MustBuildFormModel parses the definition at path and builds its form model.
func MustBuildFormModel(t *testing.T, path, locale string) pkgmodel.FormModel {
	t.Helper()

	form, err := pkgmodel.NewBuilder().Build(MustLoadStructure(t, path, locale))
	if err != nil {
		t.Fatalf("build form model: %v", err)
	}
	return form
}

// GoldenFormModel returns the form model stored at path after a JSON round
// trip of got, so typed defaults compare equal to decoded ones. With
// UPDATE_GOLDENS set the golden is rewritten from got first.
func GoldenFormModel(t *testing.T, path string, got pkgmodel.FormModel) (want, normalized pkgmodel.FormModel) {
	t.Helper()

	data, err := json.MarshalIndent(got, "", "  ")
	if err != nil {
		t.Fatalf("marshal form model: %v", err)
	}
	if err := json.Unmarshal(data, &normalized); err != nil {
		t.Fatalf("normalize form model: %v", err)
	}
	if err := json.Unmarshal(Golden(t, path, data), &want); err != nil {
		t.Fatalf("decode golden %s: %v", path, err)
	}
	return want, normalized
}

// Golden returns the contents of the golden file at path. With
// UPDATE_GOLDENS set it first replaces the file with got.
func Golden(t *testing.T, path string, got []byte) []byte {
	t.Helper()

	if os.Getenv(UpdateEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("golden dir: %v", err)
		}
		if err := os.WriteFile(path, got, 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// CaptureOutput runs render against a buffer and returns both the returned
// string and what was written, so tests can check they agree.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) (returned, written string) {
	t.Helper()

	var buf bytes.Buffer
	returned, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return returned, buf.String()
}
