package testsupport

import (
	"bytes"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ixtags/pkg/params"
)

// Call records a single BuildURL invocation.
type Call struct {
	Path   string
	Params map[string]string
}

// RecordingBuilder is a deterministic stand-in for the CDN client. URLs are
// base + "/" + path + "?" + sorted query so tests can assert exact markup.
type RecordingBuilder struct {
	base string

	mu    sync.Mutex
	calls []Call
}

// NewRecordingBuilder returns a builder rooted at base (e.g.
// "https://cdn.test").
func NewRecordingBuilder(base string) *RecordingBuilder {
	return &RecordingBuilder{base: strings.TrimRight(base, "/")}
}

// BuildURL implements urlbuilder.Builder.
func (r *RecordingBuilder) BuildURL(path string, p params.Params) string {
	values := p.Strings()

	r.mu.Lock()
	r.calls = append(r.calls, Call{Path: path, Params: values})
	r.mu.Unlock()

	query := url.Values{}
	for key, value := range values {
		query.Set(key, value)
	}
	out := r.base + "/" + strings.TrimPrefix(path, "/")
	if encoded := query.Encode(); encoded != "" {
		out += "?" + encoded
	}
	return out
}

// Calls returns a copy of the recorded invocations.
func (r *RecordingBuilder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Reset clears the recorded invocations.
func (r *RecordingBuilder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

// CompareGolden fails the test with a diff when got differs from want. name
// identifies the rendered fragment in the failure message.
func CompareGolden(t *testing.T, name, want, got string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file with surrounding whitespace
// trimmed, so editors adding a final newline do not break comparisons.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return strings.TrimSpace(string(MustReadGolden(t, path)))
}

// WriteMaybeGolden rewrites the golden at path with got when UPDATE_GOLDENS
// is set and reports whether it did, in which case the caller skips its
// comparison. The file ends with a newline that MustReadGoldenString trims.
func WriteMaybeGolden(t *testing.T, path, got string) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(strings.TrimSpace(got)+"\n"), 0o644); err != nil {
		t.Fatalf("write golden %s: %v", path, err)
	}
	t.Logf("updated golden %s", path)
	return true
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
