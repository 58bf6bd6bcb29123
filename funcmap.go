package ixtags

import (
	"html/template"

	"github.com/goliatone/go-ixtags/pkg/params"
)

// Helper names shared by FuncMap and RegisterPongo2.
const (
	FuncURL                  = "imgix_url"
	FuncSrcset               = "imgix_srcset"
	FuncImageTag             = "imgix_image_tag"
	FuncResponsiveImageTag   = "imgix_responsive_image_tag"
	FuncPictureTag           = "imgix_picture_tag"
	FuncLazyloadTag          = "imgix_lazyload_tag"
	FuncResponsivePictureTag = "imgix_responsive_picture_tag"
)

type operation func(params.Params) (string, error)

func operations(t *Tags) map[string]operation {
	return map[string]operation{
		FuncURL:                  t.ImageURL,
		FuncSrcset:               t.Srcset,
		FuncImageTag:             t.ImageTag,
		FuncResponsiveImageTag:   t.ResponsiveImageTag,
		FuncPictureTag:           t.PictureTag,
		FuncLazyloadTag:          t.LazyloadTag,
		FuncResponsivePictureTag: t.ResponsivePictureTag,
	}
}

func isMarkup(name string) bool {
	return name != FuncURL && name != FuncSrcset
}

// callArgs resolves a helper call of the form (path, key, value, ...) or
// (path, map). An empty path is passed through so the tag renders nothing.
func callArgs(path any, args []any) (params.Params, error) {
	p, err := params.FromArgs(args...)
	if err != nil {
		return nil, err
	}
	if path != nil {
		p[pathKey] = path
	}
	return p, nil
}

const pathKey = "path"

// FuncMap returns html/template helpers. Markup helpers return template.HTML
// because their output is already escaped; URL helpers return strings and are
// escaped by the template as usual.
//
//	{{ imgix_image_tag .Image "w" 320 "alt" .Title }}
//	{{ imgix_url .Image .ImageParams }}
func FuncMap(t *Tags) template.FuncMap {
	funcs := template.FuncMap{}
	for name, op := range operations(t) {
		op := op
		if isMarkup(name) {
			funcs[name] = func(path any, args ...any) (template.HTML, error) {
				p, err := callArgs(path, args)
				if err != nil {
					return "", err
				}
				out, err := op(p)
				return template.HTML(out), err
			}
			continue
		}
		funcs[name] = func(path any, args ...any) (string, error) {
			p, err := callArgs(path, args)
			if err != nil {
				return "", err
			}
			return op(p)
		}
	}
	return funcs
}
