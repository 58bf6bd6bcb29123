package ixtags

import (
	"fmt"

	"github.com/goliatone/go-ixtags/pkg/config"
	"github.com/goliatone/go-ixtags/pkg/params"
	"github.com/goliatone/go-ixtags/pkg/tags"
	"github.com/goliatone/go-ixtags/pkg/urlbuilder"
)

// Config aliases config.Config for callers that only import the root package.
type Config = config.Config

// Params aliases params.Params.
type Params = params.Params

// Tags aliases tags.Tags.
type Tags = tags.Tags

// LoadConfig reads a YAML or JSON configuration file with IMGIX_* environment
// overrides applied.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// New builds the imgix URL builder from cfg and returns Tags bound to it.
func New(cfg Config, options ...tags.Option) (*Tags, error) {
	builder, err := urlbuilder.New(cfg)
	if err != nil {
		return nil, err
	}
	t, err := tags.New(builder, options...)
	if err != nil {
		return nil, fmt.Errorf("ixtags: %w", err)
	}
	return t, nil
}

// API exposes URL and srcset construction to other Go code without going
// through the tag parameter routing.
type API struct {
	builder     urlbuilder.Builder
	resolutions []float64
}

// NewAPI constructs an API from cfg.
func NewAPI(cfg Config) (*API, error) {
	builder, err := urlbuilder.New(cfg)
	if err != nil {
		return nil, err
	}
	return &API{builder: builder, resolutions: cfg.Resolutions()}, nil
}

// BuildURL returns the CDN URL for path with the given image parameters.
func (a *API) BuildURL(path string, p Params) string {
	return a.builder.BuildURL(path, p)
}

// BuildSrcset returns a density srcset for path.
func (a *API) BuildSrcset(path string, p Params) string {
	return urlbuilder.BuildSrcset(a.builder, path, p, a.resolutions)
}
