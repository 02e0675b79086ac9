// Package logger holds the process-wide structured logger for the CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	// Out defaults to os.Stderr so logs never mix with command output.
	Out   io.Writer
	Debug bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewJSONHandler(io.Discard, nil))
	runID  string
)

// Setup installs a JSON logger tagged with a fresh run_id. Without Debug only
// warnings and errors are written. The returned func is Reset.
func Setup(cfg Config) func() {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelWarn
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	id := uuid.NewString()
	l := slog.New(h).With("run_id", id)

	mu.Lock()
	global = l
	runID = id
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)

	return Reset
}

// Reset restores the discard logger. Safe to call without a prior Setup.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	global = slog.New(slog.NewJSONHandler(io.Discard, nil))
	runID = ""
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// RunID returns the id attached to every record since the last Setup, or ""
// before Setup.
func RunID() string {
	mu.RLock()
	defer mu.RUnlock()
	return runID
}
