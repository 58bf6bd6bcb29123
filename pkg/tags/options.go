package tags

import (
	"io/fs"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	rendertemplate "github.com/goliatone/go-ixtags/pkg/render/template"
)

// Option customises Tags.
type Option func(*settings)

type settings struct {
	resolutions []float64
	renderer    rendertemplate.TemplateRenderer
	templateFS  fs.FS
	sanitizer   *bluemonday.Policy
	logger      *slog.Logger
}

// WithResolutions overrides the srcset pixel densities. When unset, the
// builder's configured resolutions are used, falling back to 1x and 2x.
func WithResolutions(resolutions ...float64) Option {
	return func(cfg *settings) {
		if len(resolutions) == 0 {
			return
		}
		cfg.resolutions = append([]float64(nil), resolutions...)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *settings) {
		if renderer != nil {
			cfg.renderer = renderer
		}
	}
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// TemplateImage and TemplatePicture.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *settings) {
		cfg.templateFS = files
	}
}

// WithSanitizer runs every rendered tag through policy. Use MarkupPolicy for
// a policy matching the built-in templates.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *settings) {
		cfg.sanitizer = policy
	}
}

// WithLogger receives debug records about input that was skipped.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *settings) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
