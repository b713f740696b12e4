package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/danmuck/wiregen/internal/gen"
	"github.com/danmuck/wiregen/internal/logging"
	"github.com/danmuck/wiregen/internal/resolve"
	"github.com/danmuck/wiregen/internal/schema"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

// pathList collects repeated -protocol flags in declaration order.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }

func (p *pathList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	var protocols pathList
	flag.Var(&protocols, "protocol", "protocol document path (repeatable)")
	bindings := flag.String("bindings", "", "bindings file path")
	out := flag.String("out", "-", "output path, - for stdout")
	flag.Parse()

	logging.ConfigureRuntime()

	if len(protocols) == 0 || strings.TrimSpace(*bindings) == "" {
		fmt.Fprintln(os.Stderr, "usage: wiregen -protocol <path> [-protocol <path> ...] -bindings <path> [-out <path>]")
		os.Exit(2)
	}

	if err := run(protocols, *bindings, *out); err != nil {
		fmt.Fprintf(os.Stderr, "wiregen: %v\n", err)
		os.Exit(1)
	}
}

func run(protocolPaths []string, bindingsPath, outPath string) error {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	runID := ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
	logger := log.With().Str("run", runID).Logger()

	start := time.Now()
	protocols, err := schema.LoadAll(protocolPaths)
	if err != nil {
		return err
	}
	bindings, err := resolve.LoadBindings(bindingsPath)
	if err != nil {
		return err
	}
	ctx, err := resolve.Resolve(protocols, bindings)
	if err != nil {
		return err
	}
	src, err := gen.Generate(protocols, ctx)
	if err != nil {
		return err
	}

	if outPath == "" || outPath == "-" {
		if _, err := os.Stdout.Write(src); err != nil {
			return err
		}
	} else if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logger.Info().
		Int("protocols", len(protocols)).
		Int("interfaces", len(ctx.Targets())).
		Str("package", ctx.Package).
		Str("out", outPath).
		Dur("elapsed", time.Since(start)).
		Msg("generated")
	return nil
}
