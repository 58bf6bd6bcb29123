// Package urlbuilder wraps the CDN URL builder. Signing and parameter encoding
// belong to the imgix client; this package only adapts parameter bags to it
// and adds srcset assembly on top.
package urlbuilder

import (
	"fmt"
	"net/url"

	imgix "github.com/imgix/imgix-go/v2"

	"github.com/goliatone/go-ixtags/pkg/config"
	"github.com/goliatone/go-ixtags/pkg/params"
)

// Builder turns a path and image parameters into a CDN URL.
type Builder interface {
	BuildURL(path string, p params.Params) string
}

// Func adapts a plain function to Builder.
type Func func(path string, p params.Params) string

// BuildURL calls f.
func (f Func) BuildURL(path string, p params.Params) string {
	return f(path, p)
}

// Imgix builds (optionally signed) URLs with the imgix client.
type Imgix struct {
	builder imgix.URLBuilder
	cfg     config.Config
}

var _ Builder = (*Imgix)(nil)

// New validates cfg and constructs an imgix-backed builder.
func New(cfg config.Config) (*Imgix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("urlbuilder: %w", err)
	}

	options := []imgix.BuilderOption{imgix.WithLibParam(cfg.IncludeLibParam)}
	if cfg.Signed() {
		options = append(options, imgix.WithToken(cfg.SecureURLToken))
	}

	b := &Imgix{
		builder: imgix.NewURLBuilder(cfg.Source, options...),
		cfg:     cfg,
	}
	b.builder.SetUseHTTPS(cfg.UseHTTPS)
	return b, nil
}

// Config returns the configuration the builder was created with.
func (b *Imgix) Config() config.Config {
	return b.cfg
}

// BuildURL reduces absolute URLs to their path component and delegates to the
// imgix client. Parameters are passed in key order.
func (b *Imgix) BuildURL(path string, p params.Params) string {
	path = PathOf(path)

	ixParams := make([]imgix.IxParam, 0, len(p))
	for _, key := range p.Keys() {
		value, ok := p.String(key)
		if !ok {
			continue
		}
		ixParams = append(ixParams, imgix.Param(key, value))
	}
	return b.builder.CreateURL(path, ixParams...)
}

// PathOf returns the path component of raw when it parses as a URL, so
// "https://origin.example.com/a.jpg?v=2" becomes "/a.jpg". Unparseable input
// is returned unchanged.
func PathOf(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Path == "" {
		return raw
	}
	return parsed.Path
}
