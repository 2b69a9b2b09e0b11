package main

import (
	"bytes"
	_ "embed"
	"os"
	"slices"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"

	"reactfy"
)

//go:embed config.yaml
var defaultConfig []byte

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type OutputConfig struct {
	Directory string `yaml:"directory"`
	Overwrite bool   `yaml:"overwrite"`
}

type WalkConfig struct {
	Depth      int      `yaml:"depth"`
	Extensions []string `yaml:"extensions"`
}

type ConvertConfig struct {
	Framework string   `yaml:"framework"`
	Drop      []string `yaml:"drop"`
}

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Walk    WalkConfig    `yaml:"walk"`
	Convert ConvertConfig `yaml:"convert"`
}

func (cfg *Config) Options() reactfy.Options {
	return reactfy.Options{
		Framework: cfg.Convert.Framework,
		Drop:      slices.Clone(cfg.Convert.Drop),
	}
}

func (cfg *Config) validate() error {
	if !slices.Contains([]string{"none", "normal", "debug"}, cfg.Logging.Level) {
		return errors.Errorf("unknown logging level %q", cfg.Logging.Level)
	}
	if cfg.Walk.Depth < 0 {
		return errors.Errorf("walk depth must not be negative, got %d", cfg.Walk.Depth)
	}
	if len(cfg.Walk.Extensions) == 0 {
		return errors.New("no markup file extensions configured")
	}
	return nil
}

func unmarshalConfig(data []byte, cfg *Config) error {
	// only fields we defined are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.Wrap(err, "failed to decode configuration data")
	}
	return nil
}

// LoadConfiguration superimposes values from the file at path, if any, on top
// of the embedded defaults and validates the result.
func LoadConfiguration(path string) (*Config, error) {
	cfg := &Config{}
	if err := unmarshalConfig(defaultConfig, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process default configuration")
	}
	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
		if len(bytes.TrimSpace(data)) > 0 {
			if err := unmarshalConfig(data, cfg); err != nil {
				return nil, errors.Wrap(err, "failed to process configuration file")
			}
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config to yaml")
	}
	return data, nil
}
