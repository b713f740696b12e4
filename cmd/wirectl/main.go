package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/wiregen/internal/config"
	"github.com/danmuck/wiregen/internal/inspect"
	"github.com/danmuck/wiregen/internal/logging"
	"github.com/danmuck/wiregen/internal/resolve"
	"github.com/danmuck/wiregen/internal/schema"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "cmd/wirectl/config.toml", "inspector config path")
	validate := flag.Bool("validate", false, "validate documents and bindings, then exit")
	flag.Parse()

	logging.ConfigureRuntime()

	if err := run(*configPath, *validate); err != nil {
		fmt.Fprintf(os.Stderr, "wirectl: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, validateOnly bool) error {
	cfg, err := loadInspectorConfig(configPath)
	if err != nil {
		return err
	}
	protocols, err := schema.LoadAll(cfg.Protocols)
	if err != nil {
		return err
	}

	if validateOnly {
		if cfg.Bindings != "" {
			bindings, err := resolve.LoadBindings(cfg.Bindings)
			if err != nil {
				return err
			}
			if _, err := resolve.Resolve(protocols, bindings); err != nil {
				return err
			}
		}
		log.Info().
			Int("protocols", len(protocols)).
			Str("bindings", cfg.Bindings).
			Msg("documents valid")
		return nil
	}

	server := inspect.New(config.Inspector(cfg), protocols)
	return server.Serve()
}
