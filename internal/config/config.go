// Package config loads lvsearch run configurations from YAML or JSON files.
// Command-line flags are applied on top of a loaded Config by the driver.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNegativeLimit indicates a negative depth, expansion or time limit.
	ErrNegativeLimit = errors.New("config: limits cannot be negative")

	// ErrReopenWithoutBestCost indicates reopen set while best_cost is off.
	ErrReopenWithoutBestCost = errors.New("config: reopen requires best_cost")
)

// Log holds the logger settings.
type Log struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Config is one run (or comparison) of the driver.
type Config struct {
	Algorithm  string            `yaml:"algorithm" json:"algorithm"`
	Algorithms []string          `yaml:"algorithms" json:"algorithms"`
	Problem    string            `yaml:"problem" json:"problem"`
	Params     map[string]string `yaml:"params" json:"params"`
	Heuristic  string            `yaml:"heuristic" json:"heuristic"`

	BestCost      bool          `yaml:"best_cost" json:"best_cost"`
	Reopen        bool          `yaml:"reopen" json:"reopen"`
	MaxDepth      int           `yaml:"max_depth" json:"max_depth"`
	MaxExpansions int           `yaml:"max_expansions" json:"max_expansions"`
	Timeout       time.Duration `yaml:"timeout" json:"-"`

	Output string `yaml:"output" json:"output"`
	Log    Log    `yaml:"log" json:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Algorithm: "astar-graph",
		Problem:   "jars",
		Output:    "table",
		Log:       Log{Level: "warn", Format: "text"},
	}
}

// LoadFromPath reads a YAML or JSON config file over Default. The format is
// picked by extension (.json → JSON, anything else YAML).
func LoadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Load(data, filepath.Ext(path))
}

// Load parses data over Default and validates the result.
func Load(data []byte, ext string) (Config, error) {
	c := Default()
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parse config json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the limits and the best_cost/reopen combination.
func (c Config) Validate() error {
	if c.MaxDepth < 0 || c.MaxExpansions < 0 || c.Timeout < 0 {
		return ErrNegativeLimit
	}
	if c.Reopen && !c.BestCost {
		return ErrReopenWithoutBestCost
	}

	return nil
}

// SetParam parses a "key=value" pair into Params.
func (c *Config) SetParam(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("config: parameter %q is not key=value", kv)
	}
	if c.Params == nil {
		c.Params = make(map[string]string)
	}
	c.Params[key] = strings.TrimSpace(value)

	return nil
}
