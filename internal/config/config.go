// Package config loads gridpath settings from an optional HCL file.
//
// Every attribute is optional and falls back to Default:
//
//	rows       = 20
//	cols       = 40
//	tick       = "30ms"
//	log_level  = "info"
//	log_format = "text"
//	listen     = "127.0.0.1:8080"
//	density    = 0.25
//	seed       = 0
//
// Expressions may read the process environment through the env object,
// e.g. listen = "${env.HOST}:8080".
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/gridpath/internal/logging"
)

// ErrInvalid marks a setting that fails validation.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds resolved settings.
type Config struct {
	Rows      int
	Cols      int
	Tick      time.Duration
	LogLevel  string
	LogFormat string
	Listen    string
	Density   float64
	Seed      int64
}

// hclFile is the decoding target; Tick stays a string until validation.
type hclFile struct {
	Rows      int     `hcl:"rows,optional"`
	Cols      int     `hcl:"cols,optional"`
	Tick      string  `hcl:"tick,optional"`
	LogLevel  string  `hcl:"log_level,optional"`
	LogFormat string  `hcl:"log_format,optional"`
	Listen    string  `hcl:"listen,optional"`
	Density   float64 `hcl:"density,optional"`
	Seed      int64   `hcl:"seed,optional"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Rows:      20,
		Cols:      40,
		Tick:      30 * time.Millisecond,
		LogLevel:  "info",
		LogFormat: "text",
		Listen:    "127.0.0.1:8080",
		Density:   0.25,
		Seed:      0,
	}
}

// Load reads the HCL file at path over Default and validates the result.
// An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(f.Body, path)
}

// Parse is Load for in-memory source; filename is used in diagnostics.
func Parse(src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	return decode(f.Body, filename)
}

func decode(body hcl.Body, name string) (Config, error) {
	d := Default()
	raw := hclFile{
		Rows:      d.Rows,
		Cols:      d.Cols,
		Tick:      d.Tick.String(),
		LogLevel:  d.LogLevel,
		LogFormat: d.LogFormat,
		Listen:    d.Listen,
		Density:   d.Density,
		Seed:      d.Seed,
	}
	if diags := gohcl.DecodeBody(body, evalContext(os.Environ()), &raw); diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", name, diags)
	}

	tick, err := time.ParseDuration(raw.Tick)
	if err != nil {
		return Config{}, fmt.Errorf("%w: tick %q: %v", ErrInvalid, raw.Tick, err)
	}
	cfg := Config{
		Rows:      raw.Rows,
		Cols:      raw.Cols,
		Tick:      tick,
		LogLevel:  raw.LogLevel,
		LogFormat: raw.LogFormat,
		Listen:    raw.Listen,
		Density:   raw.Density,
		Seed:      raw.Seed,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// evalContext exposes environ as the env object.
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !hclsyntax.ValidIdentifier(k) {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{Variables: map[string]cty.Value{"env": env}}
}

// Validate reports the first invalid setting, wrapped in ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalid, c.Rows, c.Cols)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalid, c.Tick)
	case !slices.Contains(logging.Levels, c.LogLevel):
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	case !slices.Contains(logging.Formats, c.LogFormat):
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	case math.IsNaN(c.Density) || c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density must be within [0,1], got %v", ErrInvalid, c.Density)
	case c.Listen == "":
		return fmt.Errorf("%w: listen address is empty", ErrInvalid)
	}
	return nil
}
