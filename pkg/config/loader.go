package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goalgrid/goalgrid/pkg/errors"
)

// DefaultPath is the config file the CLI reads when --config is not given.
const DefaultPath = "config.yaml"

// Load reads, decodes and validates a configuration file.
//
// Unknown keys are rejected so typos surface as errors instead of
// silently falling back to defaults. Optional fields (secondary colors,
// line weight, label padding) are filled in before validation.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "configuration file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
