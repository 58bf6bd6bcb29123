package ixtags

import (
	"errors"
	"fmt"

	"github.com/flosch/pongo2/v6"

	rendertemplate "github.com/goliatone/go-ixtags/pkg/render/template"
)

// RegisterPongo2 exposes the tag helpers on a pongo2 backed renderer (see
// gotemplate.Engine) as global functions:
//
//	{{ imgix_image_tag("hero.jpg", "w", 640, "alt", title) }}
//	{{ imgix_picture_tag(image.path, image.params) }}
//
// Markup helpers return safe values so autoescaping does not double encode.
func RegisterPongo2(renderer rendertemplate.TemplateRenderer, t *Tags) error {
	if renderer == nil || t == nil {
		return errors.New("ixtags: renderer and tags are required")
	}
	for name, op := range operations(t) {
		if err := renderer.RegisterFunc(name, pongo2Func(op, isMarkup(name))); err != nil {
			return fmt.Errorf("ixtags: register %s: %w", name, err)
		}
	}
	return nil
}

func pongo2Func(op operation, markup bool) func(args ...*pongo2.Value) (*pongo2.Value, error) {
	return func(args ...*pongo2.Value) (*pongo2.Value, error) {
		if len(args) == 0 {
			return pongo2.AsValue(""), nil
		}
		rest := make([]any, 0, len(args)-1)
		for _, arg := range args[1:] {
			rest = append(rest, plain(arg.Interface()))
		}
		p, err := callArgs(args[0].Interface(), rest)
		if err != nil {
			return nil, err
		}
		out, err := op(p)
		if err != nil {
			return nil, err
		}
		if markup {
			return pongo2.AsSafeValue(out), nil
		}
		return pongo2.AsValue(out), nil
	}
}

// plain unwraps pongo2.Context, which the engine uses for nested maps.
func plain(v any) any {
	if ctx, ok := v.(pongo2.Context); ok {
		return map[string]any(ctx)
	}
	return v
}
