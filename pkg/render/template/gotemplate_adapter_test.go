package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-ixtags/pkg/attrs"
	"github.com/goliatone/go-ixtags/pkg/render/template/gotemplate"
	"github.com/goliatone/go-ixtags/pkg/testsupport"
)

//go:embed testdata/templates/*.tmpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplateEscapes(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("img", map[string]any{
			"src": "https://cdn.test/a.jpg?w=1&h=2",
			"alt": `"Quoted" <b>`,
		}, w)
	})

	golden := filepath.Join("testdata", "img.golden")
	if testsupport.WriteMaybeGolden(t, golden, result) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	testsupport.CompareGolden(t, "render template result", want, result)
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_StructsUseJSONNames(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("attrs.tmpl", map[string]any{
		"attrs": []attrs.Attribute{{Name: "alt", Value: "Hero"}, {Name: "class", Value: "wide"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := ` alt="Hero" class="wide"`; result != want {
		t.Fatalf("attrs mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"site": map[string]any{"cdn": "https://demo.imgix.net"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", map[string]any{"file": "a.jpg"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "https://demo.imgix.net/a.jpg" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_RegisterFunc(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFunc("shout", func(in *pongo2.Value) *pongo2.Value {
		return pongo2.AsValue(fmt.Sprintf("%s!", strings.ToUpper(in.String())))
	})
	if err != nil {
		t.Fatalf("register func: %v", err)
	}

	result, err := engine.RenderString(`{{ shout(name) }}`, map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected result %q", result)
	}

	if err := engine.RegisterFunc("nope", "not a func"); err == nil {
		t.Fatalf("expected error registering a non-function")
	}
}

func TestGoTemplateEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
