package main

import (
	"path/filepath"
	"strings"

	"github.com/danmuck/wiregen/internal/config"
)

// loadInspectorConfig loads the config file and anchors relative document
// paths at the config file's directory, so wirectl works from any cwd.
func loadInspectorConfig(path string) (config.InspectorConfig, error) {
	cfg, err := config.LoadInspectorConfig(path)
	if err != nil {
		return config.InspectorConfig{}, err
	}
	base := filepath.Dir(path)
	for i, p := range cfg.Protocols {
		cfg.Protocols[i] = anchorPath(base, p)
	}
	if cfg.Bindings != "" {
		cfg.Bindings = anchorPath(base, cfg.Bindings)
	}
	return cfg, nil
}

func anchorPath(base, path string) string {
	path = strings.TrimSpace(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
