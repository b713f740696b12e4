package main

import (
	"flag"
	"log"

	"github.com/danmuck/wiregen/internal/config"
	"github.com/danmuck/wiregen/internal/resolve"
	"github.com/danmuck/wiregen/internal/schema"
)

func main() {
	kind := flag.String("kind", "protocol", "file kind: inspector|protocol|bindings")
	output := flag.String("output", "", "output path for the template")
	validate := flag.Bool("validate", false, "validate an existing file")
	input := flag.String("input", "", "file path for validation (defaults to per-kind path)")
	force := flag.Bool("force", false, "overwrite existing file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = defaultPath(*kind)
		}

		switch *kind {
		case "inspector":
			if _, err := config.LoadInspectorConfig(path); err != nil {
				log.Fatal(err)
			}
		case "protocol":
			if _, err := schema.Load(path); err != nil {
				log.Fatal(err)
			}
		case "bindings":
			if _, err := resolve.LoadBindings(path); err != nil {
				log.Fatal(err)
			}
		default:
			log.Fatalf("unknown kind: %s", *kind)
		}
		log.Printf("Validated %s file at %s", *kind, path)
		return
	}

	target := *output
	if target == "" {
		target = defaultPath(*kind)
	}

	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s template to %s", *kind, target)
}

func defaultPath(kind string) string {
	switch kind {
	case "inspector":
		return "cmd/wirectl/config.toml"
	case "protocol":
		return "protocol.toml"
	case "bindings":
		return "bindings.toml"
	default:
		log.Fatalf("unknown kind: %s", kind)
		return ""
	}
}
