package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/waltzrobotics/statebank/pkg/space"
)

// Config represents the statebank configuration
type Config struct {
	DataDir string      `yaml:"data_dir"`
	Port    int         `yaml:"port"`
	Bind    string      `yaml:"bind"`
	Space   SpaceConfig `yaml:"space"`
}

// SpaceConfig describes the state space archives are generated for
type SpaceConfig struct {
	Type      string  `yaml:"type"`      // "real_vector" or "so2"
	Dimension int     `yaml:"dimension"` // real_vector only
	Low       float64 `yaml:"low"`       // real_vector lower bound, all axes
	High      float64 `yaml:"high"`      // real_vector upper bound, all axes
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir: "./data",
		Port:    8080,
		Bind:    "127.0.0.1",
		Space: SpaceConfig{
			Type:      "real_vector",
			Dimension: 2,
			Low:       -1,
			High:      1,
		},
	}
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Save writes the configuration to the specified path
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Build constructs the configured state space
func (sc *SpaceConfig) Build() (space.Space, error) {
	switch sc.Type {
	case "real_vector":
		if sc.Dimension <= 0 {
			return nil, fmt.Errorf("real_vector space needs a positive dimension, got %d", sc.Dimension)
		}
		if sc.Low >= sc.High {
			return nil, fmt.Errorf("real_vector bounds are empty: low %g >= high %g", sc.Low, sc.High)
		}
		return space.NewRealVectorSpace(sc.Dimension, sc.Low, sc.High), nil
	case "so2":
		return space.NewSO2Space(), nil
	default:
		return nil, fmt.Errorf("unknown space type: %q", sc.Type)
	}
}
