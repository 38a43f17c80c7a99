package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"carbon-arbitrage/internal/data"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Everything has a working
// default; a deployment only overrides what it needs.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Defaults  ParamsConfig    `yaml:"defaults"`
	Scenarios ScenariosConfig `yaml:"scenarios"`

	// DatasetFile optionally replaces the embedded NGFS table with a CSV
	// file of the same layout.
	DatasetFile string `yaml:"dataset_file"`

	// ResultTTL bounds how long computed results stay retrievable by ID,
	// e.g. "1h". Zero means the built-in default.
	ResultTTL Duration `yaml:"result_ttl"`
}

// Duration wraps time.Duration so YAML configs can use strings like "30m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// ParamsConfig holds the default user parameters, applied when a request
// omits them. The defaults match the model's published baseline.
type ParamsConfig struct {
	SCC  float64 `yaml:"scc"`  // $/tCO2
	LCOE float64 `yaml:"lcoe"` // $/MWh
	Beta float64 `yaml:"beta"`
}

// ScenariosConfig names the scenario pair: Reference is the high-emissions
// case the Alternative is compared against.
type ScenariosConfig struct {
	Reference   string `yaml:"reference"`
	Alternative string `yaml:"alternative"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Defaults: ParamsConfig{
			SCC:  80.0,
			LCOE: 59.25,
			Beta: 0.9132710997126332,
		},
		Scenarios: ScenariosConfig{
			Reference:   data.ScenarioCurrentPolicies,
			Alternative: data.ScenarioNetZero2050,
		},
		ResultTTL: Duration(data.DefaultResultTTL),
	}
}

// Load reads a YAML config, fills in defaults for anything unset, and
// validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyDefaults restores defaults for fields an override file zeroed out.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Server.Port == "" {
		c.Server.Port = def.Server.Port
	}
	if c.Scenarios.Reference == "" {
		c.Scenarios.Reference = def.Scenarios.Reference
	}
	if c.Scenarios.Alternative == "" {
		c.Scenarios.Alternative = def.Scenarios.Alternative
	}
	if c.ResultTTL <= 0 {
		c.ResultTTL = def.ResultTTL
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Defaults.SCC < 0 {
		return errors.New("defaults.scc must be >= 0")
	}
	if c.Defaults.LCOE < 0 {
		return errors.New("defaults.lcoe must be >= 0")
	}
	if c.Defaults.Beta < 0 {
		return errors.New("defaults.beta must be >= 0")
	}
	if c.Scenarios.Reference == c.Scenarios.Alternative {
		return errors.New("scenarios.reference and scenarios.alternative must differ")
	}
	return nil
}

// Store builds the scenario store this config points at: either the embedded
// dataset or the configured CSV file.
func (c *Config) Store() (*data.Store, error) {
	if c.DatasetFile == "" {
		return data.Default(), nil
	}
	return data.LoadCSV(c.DatasetFile)
}
