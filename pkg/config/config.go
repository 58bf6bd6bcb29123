// Package config holds the CDN settings shared by the URL builder and the tag
// helpers, along with loaders for YAML/JSON files and environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingSource is returned when no CDN source host is configured.
	ErrMissingSource = errors.New("config: source is required")
	// ErrInvalidSource is returned when the source is not a bare host name.
	ErrInvalidSource = errors.New("config: source must be a host without scheme or path")
	// ErrInvalidResolution is returned for non-positive responsive resolutions.
	ErrInvalidResolution = errors.New("config: responsive resolutions must be positive")
)

// DefaultResolutions are the device pixel ratios used when none are
// configured.
var DefaultResolutions = []float64{1, 2}

// Config describes how CDN URLs are built.
type Config struct {
	// Source is the CDN host, e.g. "assets.imgix.net".
	Source string `json:"source" yaml:"source"`
	// UseHTTPS selects the URL scheme.
	UseHTTPS bool `json:"use_https" yaml:"use_https"`
	// SecureURLToken enables URL signing when non-empty.
	SecureURLToken string `json:"secure_url_token,omitempty" yaml:"secure_url_token,omitempty"`
	// ResponsiveResolutions lists the pixel densities emitted in srcset
	// attributes.
	ResponsiveResolutions []float64 `json:"responsive_resolutions" yaml:"responsive_resolutions"`
	// IncludeLibParam appends the builder's ixlib marker to every URL.
	IncludeLibParam bool `json:"include_lib_param,omitempty" yaml:"include_lib_param,omitempty"`
}

// Default returns a configuration with HTTPS enabled and 1x/2x resolutions.
// Source is left empty.
func Default() Config {
	return Config{
		UseHTTPS:              true,
		ResponsiveResolutions: append([]float64(nil), DefaultResolutions...),
	}
}

// Signed reports whether URLs will carry a signature.
func (c Config) Signed() bool {
	return c.SecureURLToken != ""
}

// Resolutions returns the configured resolutions or the defaults.
func (c Config) Resolutions() []float64 {
	if len(c.ResponsiveResolutions) == 0 {
		return append([]float64(nil), DefaultResolutions...)
	}
	return append([]float64(nil), c.ResponsiveResolutions...)
}

// Validate checks the configuration is usable by the URL builder.
func (c Config) Validate() error {
	source := strings.TrimSpace(c.Source)
	if source == "" {
		return ErrMissingSource
	}
	if strings.Contains(source, "://") || strings.ContainsAny(source, "/?# ") {
		return fmt.Errorf("%w: %q", ErrInvalidSource, c.Source)
	}
	for _, resolution := range c.ResponsiveResolutions {
		if resolution <= 0 {
			return fmt.Errorf("%w: %v", ErrInvalidResolution, resolution)
		}
	}
	return nil
}
