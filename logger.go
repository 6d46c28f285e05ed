package shaderreg

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/shaderreg/shader"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(shader.NopLogger())
}

// SetLogger configures the logger for shaderreg and its sub-packages.
// By default, shaderreg produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by shaderreg:
//   - [slog.LevelDebug]: current shader changes, render target labels
//   - [slog.LevelInfo]: shader ID allocation, shader registration
//   - [slog.LevelWarn]: rejected duplicate shader names
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	shaderreg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = shader.NopLogger()
	}
	loggerPtr.Store(l)
	shader.SetLogger(l)
}

// Logger returns the current logger used by shaderreg.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
