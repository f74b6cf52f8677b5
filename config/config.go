// Package config loads the training configuration from a YAML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"antics/meta"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of a training run.
type Config struct {
	Games      int     `yaml:"games"`
	MaxTurns   int     `yaml:"max_turns"`
	Alpha      float64 `yaml:"alpha"`
	Gamma      float64 `yaml:"gamma"`
	Seed       uint64  `yaml:"seed"`
	Mode       string  `yaml:"mode"`     // step | episode
	Strategy   string  `yaml:"strategy"` // learned | heuristic | combined
	Backend    string  `yaml:"backend"`  // file | sqlite
	Match      string  `yaml:"match"`    // literal | features, the near-duplicate test
	StoreDir   string  `yaml:"store_dir"`
	StoreExt   string  `yaml:"store_ext"`
	ResultsDir string  `yaml:"results_dir"`
	LogLevel   string  `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Games:      10,
		MaxTurns:   meta.MAX_TURNS,
		Alpha:      meta.LEARNING_RATE,
		Gamma:      meta.DISCOUNT_FACTOR,
		Seed:       1,
		Mode:       "step",
		Strategy:   "combined",
		Backend:    "file",
		Match:      "literal",
		StoreDir:   "stores",
		StoreExt:   ".csv",
		ResultsDir: "experiments",
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path over the defaults, then applies ANTICS_* environment
// overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	var err error
	if c.Games, err = envInt("ANTICS_GAMES", c.Games); err != nil {
		return err
	}
	if c.MaxTurns, err = envInt("ANTICS_MAX_TURNS", c.MaxTurns); err != nil {
		return err
	}
	if c.Alpha, err = envFloat("ANTICS_ALPHA", c.Alpha); err != nil {
		return err
	}
	if c.Gamma, err = envFloat("ANTICS_GAMMA", c.Gamma); err != nil {
		return err
	}
	seed, err := envInt("ANTICS_SEED", int(c.Seed))
	if err != nil {
		return err
	}
	c.Seed = uint64(seed)
	c.Mode = envOrDefault("ANTICS_MODE", c.Mode)
	c.Strategy = envOrDefault("ANTICS_STRATEGY", c.Strategy)
	c.Backend = envOrDefault("ANTICS_BACKEND", c.Backend)
	c.Match = envOrDefault("ANTICS_MATCH", c.Match)
	c.StoreDir = envOrDefault("ANTICS_STORE_DIR", c.StoreDir)
	c.StoreExt = envOrDefault("ANTICS_STORE_EXT", c.StoreExt)
	c.ResultsDir = envOrDefault("ANTICS_RESULTS_DIR", c.ResultsDir)
	c.LogLevel = envOrDefault("LOG_LEVEL", c.LogLevel)
	return nil
}

func (c Config) Validate() error {
	if c.Games < 0 {
		return fmt.Errorf("games must not be negative, got %d", c.Games)
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in (0, 1], got %v", c.Alpha)
	}
	if c.Gamma <= 0 || c.Gamma > 1 {
		return fmt.Errorf("gamma must be in (0, 1], got %v", c.Gamma)
	}
	switch c.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	switch c.Match {
	case "literal", "features":
	default:
		return fmt.Errorf("unknown match %q", c.Match)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
