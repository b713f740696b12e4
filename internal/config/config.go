package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// InspectorConfig drives the wirectl inspector service: where it listens
// and which protocol documents it serves. Bindings is optional and only
// consulted when validating a generation setup.
type InspectorConfig struct {
	Name        string   `toml:"name"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
	Protocols   []string `toml:"protocols"`
	Bindings    string   `toml:"bindings"`
}

func LoadInspectorConfig(path string) (InspectorConfig, error) {
	var cfg InspectorConfig
	if err := loadToml(path, &cfg); err != nil {
		return InspectorConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = "wirectl"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":9400"
	}
	if err := ValidateInspectorConfig(cfg); err != nil {
		return InspectorConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateInspectorConfig(cfg InspectorConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("inspector config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("inspector config missing addr")
	}
	if len(cfg.Protocols) == 0 {
		return fmt.Errorf("inspector config missing protocols")
	}
	for i, path := range cfg.Protocols {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("protocols[%d] is empty", i)
		}
	}
	return nil
}
