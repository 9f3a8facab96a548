package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds optional invocation defaults loaded from a file.
// Zero values mean "unspecified"; flags and built-in defaults win in main.
type Config struct {
	Scale        float32 `json:"scale" yaml:"scale" toml:"scale"`
	Model        string  `json:"model" yaml:"model" toml:"model"`
	GPUID        int     `json:"gpu_id" yaml:"gpu_id" toml:"gpu_id"`
	CPU          bool    `json:"cpu" yaml:"cpu" toml:"cpu"`
	ModelPath    string  `json:"model_path" yaml:"model_path" toml:"model_path"`
	TileSize     int     `json:"tile_size" yaml:"tile_size" toml:"tile_size"`
	OutputFormat string  `json:"output_format" yaml:"output_format" toml:"output_format"`
	DebugAddr    string  `json:"debug_addr" yaml:"debug_addr" toml:"debug_addr"`
	LogLevel     string  `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
