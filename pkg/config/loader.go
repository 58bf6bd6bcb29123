package config

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that take precedence over file values.
const (
	EnvSource      = "IMGIX_SOURCE"
	EnvUseHTTPS    = "IMGIX_USE_HTTPS"
	EnvToken       = "IMGIX_SECURE_URL_TOKEN"
	EnvResolutions = "IMGIX_RESPONSIVE_RESOLUTIONS"
)

// fileConfig uses pointers so absent keys keep their defaults.
type fileConfig struct {
	Source                *string   `json:"source" yaml:"source"`
	UseHTTPS              *bool     `json:"use_https" yaml:"use_https"`
	SecureURLToken        *string   `json:"secure_url_token" yaml:"secure_url_token"`
	ResponsiveResolutions []float64 `json:"responsive_resolutions" yaml:"responsive_resolutions"`
	IncludeLibParam       *bool     `json:"include_lib_param" yaml:"include_lib_param"`
}

// Load reads a JSON or YAML configuration file, applies environment overrides
// and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return finish(data, path)
}

// LoadFS is Load for an fs.FS.
func LoadFS(fsys fs.FS, name string) (Config, error) {
	if fsys == nil {
		return Config{}, fmt.Errorf("config: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", name, err)
	}
	return finish(data, name)
}

func finish(data []byte, source string) (Config, error) {
	cfg, err := Parse(data, source)
	if err != nil {
		return Config{}, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Parse decodes JSON first and falls back to YAML. Keys missing from the
// document keep the values from Default.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = fileConfig{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
		}
	}

	cfg := Default()
	if raw.Source != nil {
		cfg.Source = strings.TrimSpace(*raw.Source)
	}
	if raw.UseHTTPS != nil {
		cfg.UseHTTPS = *raw.UseHTTPS
	}
	if raw.SecureURLToken != nil {
		cfg.SecureURLToken = strings.TrimSpace(*raw.SecureURLToken)
	}
	if len(raw.ResponsiveResolutions) > 0 {
		cfg.ResponsiveResolutions = append([]float64(nil), raw.ResponsiveResolutions...)
	}
	if raw.IncludeLibParam != nil {
		cfg.IncludeLibParam = *raw.IncludeLibParam
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any IMGIX_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}
	if value, ok := lookup(EnvSource); ok && strings.TrimSpace(value) != "" {
		cfg.Source = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvUseHTTPS); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvUseHTTPS, err)
		}
		cfg.UseHTTPS = parsed
	}
	if value, ok := lookup(EnvToken); ok && value != "" {
		cfg.SecureURLToken = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvResolutions); ok && strings.TrimSpace(value) != "" {
		resolutions, err := ParseResolutions(value)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvResolutions, err)
		}
		cfg.ResponsiveResolutions = resolutions
	}
	return nil
}

// ParseResolutions parses a comma separated list such as "1, 1.5, 2".
func ParseResolutions(raw string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSuffix(strings.TrimSpace(part), "x")
		if trimmed == "" {
			continue
		}
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid resolution %q", part)
		}
		if value <= 0 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResolution, value)
		}
		out = append(out, value)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no resolutions in %q", raw)
	}
	return out, nil
}

// Write serialises cfg as YAML.
func Write(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}
