package config

import (
	"github.com/danmuck/wiregen/internal/inspect"
)

// Inspector translates the loaded file into the server's own config type.
func Inspector(cfg InspectorConfig) inspect.Config {
	return inspect.Config{
		Name:        cfg.Name,
		Addr:        cfg.Addr,
		CorsOrigins: cfg.CorsOrigins,
	}
}
