// Package config holds the engine defaults used by the netgraph command:
// layout tuning, centrality limits and path search bounds.
//
// Files are TOML (.toml) or YAML (.yaml, .yml). Keys missing from a file
// keep their default value.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netgraph/centrality"
	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/dfs"
	"github.com/katalvlaran/netgraph/layout"
)

// Supported encodings.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

var (
	// ErrUnsupportedFormat is returned for file extensions or format names
	// other than toml, yaml and yml.
	ErrUnsupportedFormat = errors.New("config: unsupported format")
	// ErrInvalid is returned by Validate for out-of-range values.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the full engine configuration.
type Config struct {
	Layout     Layout     `toml:"layout" yaml:"layout"`
	Centrality Centrality `toml:"centrality" yaml:"centrality"`
	Paths      Paths      `toml:"paths" yaml:"paths"`
}

// Layout tunes the graph scale and the spring simulation.
type Layout struct {
	Distance   float64 `toml:"distance" yaml:"distance"`
	Iterations int     `toml:"iterations" yaml:"iterations"`
	Weight     float64 `toml:"weight" yaml:"weight"`
	Limit      float64 `toml:"limit" yaml:"limit"`
	K          float64 `toml:"k" yaml:"k"`
	Force      float64 `toml:"force" yaml:"force"`
	Repulsion  float64 `toml:"repulsion" yaml:"repulsion"`
	Seed       int64   `toml:"seed" yaml:"seed"`
}

// Centrality bounds the eigenvector iteration and selects score modes.
type Centrality struct {
	Iterations int     `toml:"iterations" yaml:"iterations"`
	Tolerance  float64 `toml:"tolerance" yaml:"tolerance"`
	Normalized bool    `toml:"normalized" yaml:"normalized"`
	Directed   bool    `toml:"directed" yaml:"directed"`
}

// Paths bounds path enumeration and selects edge direction for searches.
type Paths struct {
	MaxLength int  `toml:"max_length" yaml:"max_length"`
	Directed  bool `toml:"directed" yaml:"directed"`
}

// Default returns the engine's built-in values.
func Default() *Config {
	return &Config{
		Layout: Layout{
			Distance:   core.DefaultDistance,
			Iterations: core.DefaultIterations,
			Weight:     core.DefaultWeight,
			Limit:      core.DefaultLimit,
			K:          layout.DefaultK,
			Force:      layout.DefaultForce,
			Repulsion:  layout.DefaultRepulsion,
			Seed:       1,
		},
		Centrality: Centrality{
			Iterations: centrality.DefaultIterations,
			Tolerance:  centrality.DefaultTolerance,
			Normalized: true,
			Directed:   true,
		},
		Paths: Paths{
			MaxLength: dfs.DefaultMaxLength,
		},
	}
}

// Load reads path, picking the decoder from its extension. An empty path
// yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data, format)
}

// Parse decodes data in the given format over the defaults, then fills
// zeroed numeric fields and validates the result.
func Parse(data []byte, format string) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Encode writes c to w in the given format.
func (c *Config) Encode(w io.Writer, format string) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(c)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// applyDefaults replaces zero values that have no useful meaning.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Layout.Distance == 0 {
		c.Layout.Distance = d.Layout.Distance
	}
	if c.Layout.Iterations == 0 {
		c.Layout.Iterations = d.Layout.Iterations
	}
	if c.Layout.K == 0 {
		c.Layout.K = d.Layout.K
	}
	if c.Layout.Force == 0 {
		c.Layout.Force = d.Layout.Force
	}
	if c.Layout.Repulsion == 0 {
		c.Layout.Repulsion = d.Layout.Repulsion
	}
	if c.Centrality.Iterations == 0 {
		c.Centrality.Iterations = d.Centrality.Iterations
	}
	if c.Centrality.Tolerance == 0 {
		c.Centrality.Tolerance = d.Centrality.Tolerance
	}
	if c.Paths.MaxLength == 0 {
		c.Paths.MaxLength = d.Paths.MaxLength
	}
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	switch {
	case c.Layout.Distance <= 0:
		return fmt.Errorf("%w: layout.distance must be > 0, got %g", ErrInvalid, c.Layout.Distance)
	case c.Layout.Iterations < 0:
		return fmt.Errorf("%w: layout.iterations must be ≥ 0, got %d", ErrInvalid, c.Layout.Iterations)
	case c.Layout.Weight < 0:
		return fmt.Errorf("%w: layout.weight must be ≥ 0, got %g", ErrInvalid, c.Layout.Weight)
	case c.Layout.Limit < 0:
		return fmt.Errorf("%w: layout.limit must be ≥ 0, got %g", ErrInvalid, c.Layout.Limit)
	case c.Layout.K <= 0 || c.Layout.Force <= 0 || c.Layout.Repulsion <= 0:
		return fmt.Errorf("%w: layout k, force and repulsion must be > 0", ErrInvalid)
	case c.Centrality.Iterations < 0:
		return fmt.Errorf("%w: centrality.iterations must be ≥ 0, got %d", ErrInvalid, c.Centrality.Iterations)
	case c.Centrality.Tolerance <= 0:
		return fmt.Errorf("%w: centrality.tolerance must be > 0, got %g", ErrInvalid, c.Centrality.Tolerance)
	case c.Paths.MaxLength < 2:
		return fmt.Errorf("%w: paths.max_length must be ≥ 2, got %d", ErrInvalid, c.Paths.MaxLength)
	}

	return nil
}

// SpringOptions converts the layout section into spring constructor options.
func (c *Config) SpringOptions() []layout.Option {
	return []layout.Option{
		layout.WithK(c.Layout.K),
		layout.WithForce(c.Layout.Force),
		layout.WithRepulsion(c.Layout.Repulsion),
		layout.WithSeed(c.Layout.Seed),
	}
}

// EigenvectorOptions converts the centrality section into eigenvector options.
func (c *Config) EigenvectorOptions(extra ...centrality.Option) []centrality.Option {
	return append(extra,
		centrality.WithIterations(c.Centrality.Iterations),
		centrality.WithTolerance(c.Centrality.Tolerance),
		centrality.WithNormalized(c.Centrality.Normalized),
		centrality.WithDirected(c.Centrality.Directed),
	)
}

// BetweennessOptions pairs the centrality normalization with the path
// direction, since betweenness counts shortest paths.
func (c *Config) BetweennessOptions(extra ...centrality.Option) []centrality.Option {
	return append(extra,
		centrality.WithNormalized(c.Centrality.Normalized),
		centrality.WithDirected(c.Paths.Directed),
	)
}

func formatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
