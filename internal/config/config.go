package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ConnectionConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

type ScanSettings struct {
	SampleSize      int      `yaml:"sample_size,omitempty"`
	IncludeSchemas  []string `yaml:"include_schemas,omitempty"`
	ExcludeSchemas  []string `yaml:"exclude_schemas,omitempty"`
	DetectionLog    string   `yaml:"detection_log,omitempty"`
	RawDetectionLog string   `yaml:"raw_detection_log,omitempty"`
}

type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	Scan       ScanSettings     `yaml:"scan"`
	Timeout    string           `yaml:"timeout"`
}

const ConfigFileName = "piiscan.yaml"

func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
