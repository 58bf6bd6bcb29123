// Package attrs splits a tag's parameters into HTML attributes and image
// processing parameters.
package attrs

import (
	"sort"
	"strings"

	"github.com/goliatone/go-ixtags/pkg/params"
)

// Reserved parameter names consumed before routing.
const (
	KeyPath       = "path"
	KeyFocalPoint = "focalpoint"
	KeySizes      = "sizes"
)

var htmlAttributes = map[string]struct{}{
	"accesskey":       {},
	"align":           {},
	"alt":             {},
	"border":          {},
	"class":           {},
	"contenteditable": {},
	"contextmenu":     {},
	"dir":             {},
	"height":          {},
	"hidden":          {},
	"id":              {},
	"lang":            {},
	"longdesc":        {},
	"sizes":           {},
	"style":           {},
	"tabindex":        {},
	"title":           {},
	"usemap":          {},
	"width":           {},
}

// Categorized holds the result of routing a parameter bag.
type Categorized struct {
	Path  string
	HTML  params.Params
	Image params.Params
}

// Attribute is a single rendered HTML attribute.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// IsHTMLAttribute reports whether key belongs on the element rather than in
// the image URL: allow-listed names and any data-* or aria-* attribute.
func IsHTMLAttribute(key string) bool {
	if _, ok := htmlAttributes[key]; ok {
		return true
	}
	return strings.HasPrefix(key, "data-") || strings.HasPrefix(key, "aria-")
}

// HTMLAttributeNames returns the static allow-list.
func HTMLAttributeNames() []string {
	names := make([]string, 0, len(htmlAttributes))
	for name := range htmlAttributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categorize routes p into HTML and image parameters. It reports false when
// no usable path is present. A focalpoint of the form "X-Y" is converted into
// fp-x and fp-y image parameters; malformed focal points are dropped. Explicit
// fp-x/fp-y parameters win over the converted ones. sizes is routed like any
// allow-listed attribute; callers that read it as a breakpoint list remove it
// themselves.
func Categorize(p params.Params) (Categorized, bool) {
	path, ok := p.String(KeyPath)
	if !ok || strings.TrimSpace(path) == "" {
		return Categorized{}, false
	}

	out := Categorized{
		Path:  path,
		HTML:  params.Params{},
		Image: params.Params{},
	}

	if raw, ok := p.String(KeyFocalPoint); ok {
		if x, y, ok := params.ParseFocalPoint(raw); ok {
			out.Image["fp-x"] = x
			out.Image["fp-y"] = y
		}
	}

	for key, value := range p {
		switch key {
		case KeyPath, KeyFocalPoint:
			continue
		}
		if IsHTMLAttribute(key) {
			out.HTML[key] = value
			continue
		}
		out.Image[key] = value
	}

	return out, true
}

// HTMLAttributes flattens p into name-sorted attributes so markup is stable
// across renders. Names that cannot appear unquoted in markup are dropped.
func HTMLAttributes(p params.Params) []Attribute {
	if len(p) == 0 {
		return nil
	}
	out := make([]Attribute, 0, len(p))
	for _, key := range p.Keys() {
		if !validName(key) {
			continue
		}
		value, ok := p.String(key)
		if !ok {
			continue
		}
		out = append(out, Attribute{Name: key, Value: value})
	}
	return out
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, " \t\n\f\r\"'<>/=`")
}
