// Package tags assembles image URLs and HTML markup for the CDN. Every
// operation takes the parameter bag a template passes to a tag; a bag without
// a path renders nothing.
package tags

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"

	"github.com/goliatone/go-ixtags/pkg/attrs"
	"github.com/goliatone/go-ixtags/pkg/config"
	"github.com/goliatone/go-ixtags/pkg/params"
	rendertemplate "github.com/goliatone/go-ixtags/pkg/render/template"
	"github.com/goliatone/go-ixtags/pkg/render/template/gotemplate"
	"github.com/goliatone/go-ixtags/pkg/urlbuilder"
)

const placeholderBlur = "60"

var placeholderDivisor = decimal.NewFromInt(10)

// Tags renders image markup through a URL builder.
type Tags struct {
	builder     urlbuilder.Builder
	resolutions []float64
	templates   rendertemplate.TemplateRenderer
	sanitizer   *bluemonday.Policy
	logger      *slog.Logger
}

type configured interface {
	Config() config.Config
}

// New constructs Tags around builder applying any provided options.
func New(builder urlbuilder.Builder, options ...Option) (*Tags, error) {
	if builder == nil {
		return nil, errors.New("tags: url builder is required")
	}

	cfg := settings{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	resolutions := cfg.resolutions
	if len(resolutions) == 0 {
		if withConfig, ok := builder.(configured); ok {
			resolutions = withConfig.Config().Resolutions()
		} else {
			resolutions = config.Default().Resolutions()
		}
	}

	renderer := cfg.renderer
	if renderer == nil {
		templateFS := cfg.templateFS
		if templateFS == nil {
			templateFS = TemplatesFS()
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("tags: configure template renderer: %w", err)
		}
		renderer = engine
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Tags{
		builder:     builder,
		resolutions: resolutions,
		templates:   renderer,
		sanitizer:   cfg.sanitizer,
		logger:      logger,
	}, nil
}

// Resolutions returns the pixel densities used for srcset attributes.
func (t *Tags) Resolutions() []float64 {
	return append([]float64(nil), t.resolutions...)
}

// Index is the default tag and renders the bare image URL.
func (t *Tags) Index(p params.Params) (string, error) {
	return t.ImageURL(p)
}

// ImageURL returns the CDN URL for the image parameters in p.
func (t *Tags) ImageURL(p params.Params) (string, error) {
	cat, ok := attrs.Categorize(p)
	if !ok {
		return "", nil
	}
	return t.builder.BuildURL(cat.Path, cat.Image), nil
}

// Srcset returns the density srcset for the image parameters in p.
func (t *Tags) Srcset(p params.Params) (string, error) {
	cat, ok := attrs.Categorize(p)
	if !ok {
		return "", nil
	}
	return t.srcset(cat.Path, cat.Image), nil
}

// ImageTag renders <img src="..."> with the HTML attributes from p.
func (t *Tags) ImageTag(p params.Params) (string, error) {
	cat, ok := t.categorize(p)
	if !ok {
		return "", nil
	}
	return t.img(imgView{
		Src:   t.builder.BuildURL(cat.Path, cat.Image),
		Attrs: attrs.HTMLAttributes(cat.HTML),
	})
}

// ResponsiveImageTag renders an <img> whose srcset lists one URL per
// configured resolution.
func (t *Tags) ResponsiveImageTag(p params.Params) (string, error) {
	cat, ok := t.categorize(p)
	if !ok {
		return "", nil
	}
	return t.img(imgView{
		Srcset: t.srcset(cat.Path, cat.Image),
		Src:    t.builder.BuildURL(cat.Path, cat.Image),
		Attrs:  attrs.HTMLAttributes(cat.HTML),
	})
}

// PictureTag renders a <picture> with a single density <source> and a
// fallback <img>.
func (t *Tags) PictureTag(p params.Params) (string, error) {
	cat, ok := t.categorize(p)
	if !ok {
		return "", nil
	}
	img, err := t.renderImg(imgView{
		Src:   t.builder.BuildURL(cat.Path, cat.Image),
		Attrs: attrs.HTMLAttributes(cat.HTML),
	})
	if err != nil {
		return "", err
	}
	return t.picture(pictureView{
		Sources: []sourceView{{Srcset: t.srcset(cat.Path, cat.Image)}},
		Img:     img,
	})
}

// LazyloadTag renders an <img data-lazyloadme> whose srcset points at a
// blurred placeholder one tenth of the requested size; the full srcset is
// carried in data-srcset for a client script to swap in.
func (t *Tags) LazyloadTag(p params.Params) (string, error) {
	cat, ok := t.categorize(p)
	if !ok {
		return "", nil
	}

	placeholder := params.Params{"blur": placeholderBlur}
	for _, key := range []string{"w", "h"} {
		raw, present := cat.Image[key]
		if !present {
			t.logger.Debug("lazyload placeholder dimension missing",
				slog.String("path", cat.Path), slog.String("param", key))
			continue
		}
		value, ok := params.Number(raw)
		if !ok {
			t.logger.Debug("lazyload placeholder dimension not numeric",
				slog.String("path", cat.Path), slog.String("param", key),
				slog.String("value", params.Format(raw)))
			continue
		}
		placeholder[key] = value.Div(placeholderDivisor)
	}

	return t.img(imgView{
		Lazy:       true,
		Srcset:     t.srcset(cat.Path, params.Merge(cat.Image, placeholder)),
		DataSrcset: t.srcset(cat.Path, cat.Image),
		Src:        t.builder.BuildURL(cat.Path, cat.Image),
		Attrs:      attrs.HTMLAttributes(cat.HTML),
	})
}

// ResponsivePictureTag renders a <picture> with one <source> per breakpoint
// in the sizes parameter ("MIN: [WxH], ..."), each offering 1x and 2x
// crops, followed by the ImageTag output. sizes is consumed here and not
// emitted on the <img>.
func (t *Tags) ResponsivePictureTag(p params.Params) (string, error) {
	rawSizes, _ := p.String(attrs.KeySizes)

	stripped := p.Clone()
	delete(stripped, attrs.KeySizes)

	cat, ok := attrs.Categorize(stripped)
	if !ok {
		return "", nil
	}

	breakpoints, invalid := ParseBreakpoints(rawSizes)
	for _, entry := range invalid {
		t.logger.Debug("skipping malformed breakpoint",
			slog.String("path", cat.Path), slog.String("entry", entry))
	}

	sources := make([]sourceView, 0, len(breakpoints))
	for _, bp := range breakpoints {
		sized := params.Merge(cat.Image, params.Params{"w": bp.Width, "h": bp.Height})
		standard := t.builder.BuildURL(cat.Path, sized)
		large := t.builder.BuildURL(cat.Path, params.Merge(sized, params.Params{"dpr": 2}))
		sources = append(sources, sourceView{
			Media:  bp.Media(),
			Srcset: standard + " 1x, " + large + " 2x",
		})
	}

	img, err := t.renderImg(imgView{
		Src:   t.builder.BuildURL(cat.Path, cat.Image),
		Attrs: attrs.HTMLAttributes(cat.HTML),
	})
	if err != nil {
		return "", err
	}
	return t.picture(pictureView{Sources: sources, Img: img})
}

// categorize routes p like attrs.Categorize but drops a sizes value that is
// a breakpoint list, which only ResponsivePictureTag understands.
func (t *Tags) categorize(p params.Params) (attrs.Categorized, bool) {
	cat, ok := attrs.Categorize(p)
	if !ok {
		return cat, false
	}
	if raw, ok := cat.HTML.String(attrs.KeySizes); ok && isBreakpointList(raw) {
		delete(cat.HTML, attrs.KeySizes)
		t.logger.Debug("dropping breakpoint sizes outside responsive picture",
			slog.String("path", cat.Path), slog.String("sizes", raw))
	}
	return cat, true
}

func (t *Tags) srcset(path string, image params.Params) string {
	return urlbuilder.BuildSrcset(t.builder, path, image, t.resolutions)
}

type imgView struct {
	Lazy       bool              `json:"lazy"`
	Srcset     string            `json:"srcset"`
	DataSrcset string            `json:"data_srcset"`
	Src        string            `json:"src"`
	Attrs      []attrs.Attribute `json:"attrs"`
}

type sourceView struct {
	Media  string `json:"media"`
	Srcset string `json:"srcset"`
}

type pictureView struct {
	Sources []sourceView `json:"sources"`
	Img     string       `json:"img"`
}

func (t *Tags) img(view imgView) (string, error) {
	out, err := t.renderImg(view)
	if err != nil {
		return "", err
	}
	return t.sanitize(out), nil
}

func (t *Tags) renderImg(view imgView) (string, error) {
	if view.Attrs == nil {
		view.Attrs = []attrs.Attribute{}
	}
	out, err := t.templates.RenderTemplate(TemplateImage, view)
	if err != nil {
		return "", fmt.Errorf("tags: render img: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func (t *Tags) picture(view pictureView) (string, error) {
	out, err := t.templates.RenderTemplate(TemplatePicture, view)
	if err != nil {
		return "", fmt.Errorf("tags: render picture: %w", err)
	}
	return t.sanitize(strings.TrimSpace(out)), nil
}

func (t *Tags) sanitize(markup string) string {
	if t.sanitizer == nil {
		return markup
	}
	return strings.TrimSpace(t.sanitizer.Sanitize(markup))
}
