package wire

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

var traceOn atomic.Bool

// SetTrace switches message tracing for the whole process. Intended to be
// set once at startup.
func SetTrace(on bool) {
	traceOn.Store(on)
}

// TraceEnabled reports whether message tracing is on. Generated code checks
// it before formatting trace arguments.
func TraceEnabled() bool {
	return traceOn.Load()
}

// Tracef logs one message trace line at debug level when tracing is on.
func Tracef(format string, args ...any) {
	if !traceOn.Load() {
		return
	}
	log.Debug().Msgf(format, args...)
}
