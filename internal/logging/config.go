package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/danmuck/wiregen/wire"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "WIREGEN_LOG_LEVEL"
	EnvLogTimestamp = "WIREGEN_LOG_TIMESTAMP"
	EnvLogNoColor   = "WIREGEN_LOG_NOCOLOR"
	EnvTrace        = "WIREGEN_TRACE"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

type consoleConfig struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	Trace     bool
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure sets up the global logger once. Every entrypoint and test can
// call it without coordination; the first caller wins.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		applyEnvOverrides(&cfg)
		apply(cfg)
	})
}

func defaultConfig(profile Profile) consoleConfig {
	switch profile {
	case ProfileTest:
		return consoleConfig{Level: zerolog.DebugLevel, Timestamp: false, NoColor: true}
	default:
		return consoleConfig{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

func apply(cfg consoleConfig) {
	zerolog.SetGlobalLevel(cfg.Level)
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    cfg.NoColor,
		TimeFormat: time.Kitchen,
	}
	ctx := zerolog.New(writer).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	log.Logger = ctx.Logger()
	if cfg.Trace {
		wire.SetTrace(true)
	}
}

func applyEnvOverrides(cfg *consoleConfig) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
	if v, ok := parseBool(os.Getenv(EnvTrace)); ok {
		cfg.Trace = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
