package urlbuilder_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ixtags/pkg/params"
	"github.com/goliatone/go-ixtags/pkg/testsupport"
	"github.com/goliatone/go-ixtags/pkg/urlbuilder"
)

func TestBuildSrcsetOneEntryPerResolution(t *testing.T) {
	rec := testsupport.NewRecordingBuilder("https://cdn.test")

	got := urlbuilder.BuildSrcset(rec, "a.jpg", params.Params{"w": 100}, []float64{1, 2, 3})
	want := "https://cdn.test/a.jpg?w=100 1x," +
		"https://cdn.test/a.jpg?dpr=2&w=100 2x," +
		"https://cdn.test/a.jpg?dpr=3&w=100 3x"
	if got != want {
		t.Fatalf("srcset mismatch\nwant: %q\n got: %q", want, got)
	}
	if len(strings.Split(got, ",")) != 3 {
		t.Fatalf("expected three candidates, got %q", got)
	}
}

func TestBuildSrcsetLeavesInputUntouched(t *testing.T) {
	rec := testsupport.NewRecordingBuilder("https://cdn.test")
	input := params.Params{"w": 100}

	urlbuilder.BuildSrcset(rec, "a.jpg", input, []float64{2})

	if diff := cmp.Diff(params.Params{"w": 100}, input); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
	calls := rec.Calls()
	if len(calls) != 1 || calls[0].Params["dpr"] != "2" {
		t.Fatalf("expected a single call with dpr=2, got %+v", calls)
	}
}

func TestBuildSrcsetKeepsCallerDPRAtOneX(t *testing.T) {
	rec := testsupport.NewRecordingBuilder("https://cdn.test")

	got := urlbuilder.BuildSrcset(rec, "a.jpg", params.Params{"dpr": 3}, []float64{1})
	if got != "https://cdn.test/a.jpg?dpr=3 1x" {
		t.Fatalf("unexpected srcset %q", got)
	}
}

func TestBuildSrcsetFractionalResolution(t *testing.T) {
	rec := testsupport.NewRecordingBuilder("https://cdn.test")

	got := urlbuilder.BuildSrcset(rec, "a.jpg", nil, []float64{1.5})
	if got != "https://cdn.test/a.jpg?dpr=1.5 1.5x" {
		t.Fatalf("unexpected srcset %q", got)
	}
}

func TestBuildSrcsetEmpty(t *testing.T) {
	if got := urlbuilder.BuildSrcset(nil, "a.jpg", nil, []float64{1}); got != "" {
		t.Fatalf("expected empty srcset for nil builder, got %q", got)
	}
	rec := testsupport.NewRecordingBuilder("https://cdn.test")
	if got := urlbuilder.BuildSrcset(rec, "a.jpg", nil, nil); got != "" {
		t.Fatalf("expected empty srcset without resolutions, got %q", got)
	}
}

func TestDensity(t *testing.T) {
	for in, want := range map[float64]string{1: "1x", 2: "2x", 1.5: "1.5x", 0.75: "0.75x"} {
		if got := urlbuilder.Density(in); got != want {
			t.Errorf("Density(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFuncBuilder(t *testing.T) {
	b := urlbuilder.Func(func(path string, p params.Params) string {
		return "cdn:" + path
	})
	if got := b.BuildURL("x.png", nil); got != "cdn:x.png" {
		t.Fatalf("unexpected url %q", got)
	}
}
