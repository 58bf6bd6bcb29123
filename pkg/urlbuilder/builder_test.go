package urlbuilder_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-ixtags/pkg/config"
	"github.com/goliatone/go-ixtags/pkg/params"
	"github.com/goliatone/go-ixtags/pkg/urlbuilder"
)

func newImgix(t *testing.T, mutate func(*config.Config)) *urlbuilder.Imgix {
	t.Helper()

	cfg := config.Default()
	cfg.Source = "demo.imgix.net"
	if mutate != nil {
		mutate(&cfg)
	}
	b, err := urlbuilder.New(cfg)
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	return b
}

func TestImgixBuildURL(t *testing.T) {
	b := newImgix(t, nil)

	got := b.BuildURL("/images/hero.jpg", params.Params{"w": 320, "auto": "format"})
	if !strings.HasPrefix(got, "https://demo.imgix.net/images/hero.jpg?") {
		t.Fatalf("unexpected url %q", got)
	}
	for _, fragment := range []string{"w=320", "auto=format"} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in %q", fragment, got)
		}
	}
	if strings.Contains(got, "ixlib=") {
		t.Fatalf("lib param should be disabled by default: %q", got)
	}
	if strings.Contains(got, "&s=") || strings.Contains(got, "?s=") {
		t.Fatalf("unsigned builder produced a signature: %q", got)
	}
}

func TestImgixBuildURLStripsOrigin(t *testing.T) {
	b := newImgix(t, nil)

	got := b.BuildURL("https://origin.example.com/uploads/a.jpg?version=3", nil)
	if !strings.HasPrefix(got, "https://demo.imgix.net/uploads/a.jpg") {
		t.Fatalf("expected origin to be stripped, got %q", got)
	}
	if strings.Contains(got, "origin.example.com") || strings.Contains(got, "version=3") {
		t.Fatalf("origin host or query leaked into %q", got)
	}
}

func TestImgixHTTP(t *testing.T) {
	b := newImgix(t, func(cfg *config.Config) { cfg.UseHTTPS = false })

	if got := b.BuildURL("a.jpg", nil); !strings.HasPrefix(got, "http://demo.imgix.net/") {
		t.Fatalf("expected http scheme, got %q", got)
	}
}

func TestImgixSigned(t *testing.T) {
	unsigned := newImgix(t, nil).BuildURL("a.jpg", params.Params{"w": 100})
	signed := newImgix(t, func(cfg *config.Config) { cfg.SecureURLToken = "FOO123bar" }).
		BuildURL("a.jpg", params.Params{"w": 100})

	if signed == unsigned {
		t.Fatalf("expected signed url to differ from %q", unsigned)
	}
	if !strings.Contains(signed, "&s=") && !strings.Contains(signed, "?s=") {
		t.Fatalf("expected signature parameter in %q", signed)
	}
	again := newImgix(t, func(cfg *config.Config) { cfg.SecureURLToken = "FOO123bar" }).
		BuildURL("a.jpg", params.Params{"w": 100})
	if again != signed {
		t.Fatalf("signature not deterministic: %q vs %q", signed, again)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := urlbuilder.New(config.Config{})
	if !errors.Is(err, config.ErrMissingSource) {
		t.Fatalf("expected ErrMissingSource, got %v", err)
	}
}

func TestPathOf(t *testing.T) {
	cases := map[string]string{
		"/a.jpg":                          "/a.jpg",
		"images/a.jpg":                    "images/a.jpg",
		"https://example.com/x/y.png?v=1": "/x/y.png",
		"//cdn.example.com/z.gif":         "/z.gif",
	}
	for in, want := range cases {
		if got := urlbuilder.PathOf(in); got != want {
			t.Errorf("PathOf(%q) = %q, want %q", in, got, want)
		}
	}
}
