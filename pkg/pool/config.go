package pool

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/jzx17/taskpool/pkg/types"
)

// Config defines configuration for the pool
type Config struct {
	// WorkerCount is the number of worker goroutines. Zero selects the
	// hardware concurrency hint (runtime.NumCPU), coerced to at least 1.
	WorkerCount int

	// Clock for time operations (optional, defaults to real clock)
	Clock types.Clock

	// ErrorHandler receives failures that escape normal task execution.
	// Optional; the default logs via slog.
	ErrorHandler types.ErrorHandler
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		WorkerCount: runtime.NumCPU(),
		Clock:       types.NewRealClock(),
	}
}

// normalize validates the config and fills in defaults, returning an
// independent copy so later mutation of cfg cannot affect the pool.
func (c *Config) normalize() (*Config, error) {
	out := &Config{}
	if c != nil {
		*out = *c
	} else {
		out = DefaultConfig()
	}

	if out.WorkerCount < 0 {
		return nil, fmt.Errorf("worker count must not be negative, got %d", out.WorkerCount)
	}
	if out.WorkerCount == 0 {
		out.WorkerCount = runtime.NumCPU()
	}
	if out.WorkerCount < 1 {
		out.WorkerCount = 1
	}
	if out.Clock == nil {
		out.Clock = types.NewRealClock()
	}
	if out.ErrorHandler == nil {
		out.ErrorHandler = defaultErrorHandler
	}
	return out, nil
}

// defaultErrorHandler logs failures that escaped task result capture
func defaultErrorHandler(err error) {
	slog.Error("taskpool: worker recovered from unexpected failure", "error", err)
}
