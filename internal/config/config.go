// Package config holds cmd/pbg's option struct and defaults: everything
// that would otherwise be scattered flag-default literals across the CLI
// wiring lives here, loaded from an optional YAML file and checked with
// struct-tag validation before any command runs.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DictSourceExtensions maps a bindings file's extension to the dictionary
// source kind cmd/pbg should construct for it.
var DictSourceExtensions = map[string]string{
	".yaml":   "yaml",
	".yml":    "yaml",
	".db":     "sqlite",
	".sqlite": "sqlite",
}

// WatchDebounce is a quiet period for coalescing editors that emit several
// writes per save. pbg watch does not read it: it re-evaluates once for
// every write or create event, without waiting.
const WatchDebounce = "250ms"

// Options is cmd/pbg's resolved configuration: flag values layered over
// an optional config file, then validated as a whole.
type Options struct {
	// ExprFile is the PBG expression source to parse.
	ExprFile string `yaml:"exprFile" validate:"required"`
	// DictFile is the variable bindings file (YAML or SQLite) backing the
	// dictionary. Optional: an expression with no variables needs none.
	DictFile string `yaml:"dictFile"`
	// Strict makes a `false` evaluation result exit non-zero, for use in
	// shell conditionals.
	Strict bool `yaml:"strict"`
	// Verbose turns on the pretty-printed expression tree in `pbg check`.
	Verbose bool `yaml:"verbose"`
}

var validate = validator.New()

// Load reads a YAML config file at path and layers it under opts — fields
// already set on opts (by flags) are left alone; zero-valued fields are
// filled from the file. A missing path is not an error: cmd/pbg's config
// file is optional.
func Load(path string, opts *Options) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	var fromFile Options
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if opts.ExprFile == "" {
		opts.ExprFile = fromFile.ExprFile
	}
	if opts.DictFile == "" {
		opts.DictFile = fromFile.DictFile
	}
	if !opts.Strict {
		opts.Strict = fromFile.Strict
	}
	if !opts.Verbose {
		opts.Verbose = fromFile.Verbose
	}
	return nil
}

// Validate checks opts against its struct tags.
func Validate(opts *Options) error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
