package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/RCoeurjoly/edea/marshal"
	"github.com/RCoeurjoly/edea/primitive"
	"github.com/RCoeurjoly/edea/sexpr"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".kicadfmt.yaml"

const schemaURL = "https://github.com/RCoeurjoly/edea/kicadfmt.schema.json"

//go:embed schema.json
var schemaJSON []byte

// ErrInvalid is returned for files that do not match the schema.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Version   string `yaml:"version"`
	Precision int    `yaml:"precision"`
	MaxDepth  int    `yaml:"max_depth"`
	Check     Check  `yaml:"check"`
	Watch     Watch  `yaml:"watch"`
}

type Check struct {
	// RoundTrip re-encodes every file and compares fingerprints.
	RoundTrip bool `yaml:"roundtrip"`
	Jobs      int  `yaml:"jobs"`
}

type Watch struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns the configuration used without a file.
func Default() *Config {
	cfg := &Config{Precision: -1}
	applyDefaults(cfg)

	return cfg
}

// Load reads path. A missing file is not an error when path is the
// default file name, the defaults are returned instead.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse validates and decodes YAML data.
func Parse(data []byte) (*Config, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	cfg := Config{Precision: -1}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.Precision < 0 {
		cfg.Precision = primitive.DefaultPrecision
	}

	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = sexpr.DefaultMaxDepth
	}

	if cfg.Check.Jobs == 0 {
		cfg.Check.Jobs = runtime.GOMAXPROCS(0)
	}

	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 200 * time.Millisecond
	}
}

// CatalogOptions returns the marshal options the configuration selects.
func (c *Config) CatalogOptions() []marshal.Option {
	return []marshal.Option{
		marshal.WithPrecision(c.Precision),
		marshal.WithMaxDepth(c.MaxDepth),
	}
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add config schema: %w", err)
	}

	return compiler.Compile(schemaURL)
}

// validate checks the YAML document against the schema. The document goes
// through JSON so that numbers reach the validator as json.Number.
func validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if doc == nil {
		return nil
	}

	value, err := jsonValue(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	schema, err := compileSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(value); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("%w: %s", ErrInvalid, leafMessage(ve))
		}

		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// jsonValue converts a decoded YAML document into the form Schema.Validate
// expects: JSON types, numbers as json.Number.
func jsonValue(doc any) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}

	return value, nil
}

// leafMessage returns the innermost cause, which names the offending key.
func leafMessage(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}

	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}

	return loc + ": " + ve.Message
}
