package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type PipelineConfig struct {
	// Algorithm selects the structural clusterer: "modularity" (default)
	// or "components".
	Algorithm string `toml:"algorithm"`
	// K is the semantic cluster count; 0 derives it from the term count.
	K    int   `toml:"k"`
	Seed int64 `toml:"seed"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type TrackingConfig struct {
	Path    string `toml:"path"`
	RunName string `toml:"run_name"`
}

type Config struct {
	Pipeline PipelineConfig    `toml:"pipeline"`
	Synonyms map[string]string `toml:"synonyms"`
	Memgraph MemgraphConfig    `toml:"memgraph"`
	Tracking TrackingConfig    `toml:"tracking"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{Algorithm: "modularity", Seed: 42},
	}
}
