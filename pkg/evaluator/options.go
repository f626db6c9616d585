package evaluator

import (
	"log/slog"
	"time"

	"github.com/sandrolain/gocalc/pkg/cache"
	"github.com/sandrolain/gocalc/pkg/operators"
)

// EvalOption modifies EvalOptions.
type EvalOption func(*EvalOptions)

// WithRegistry evaluates against a custom operator registry.
func WithRegistry(registry *operators.Registry) EvalOption {
	return func(o *EvalOptions) {
		o.Registry = registry
	}
}

// WithCaching enables or disables compiled expression caching for
// EvalString.
func WithCaching(enabled bool) EvalOption {
	return func(o *EvalOptions) {
		o.Caching = enabled
	}
}

// WithCacheSize sets the cache capacity and enables caching.
func WithCacheSize(size int) EvalOption {
	return func(o *EvalOptions) {
		o.Caching = true
		o.CacheSize = size
	}
}

// WithCache uses a caller-managed expression cache, enabling caching.
func WithCache(c *cache.Cache) EvalOption {
	return func(o *EvalOptions) {
		o.Cache = c
	}
}

// WithTimeout bounds a single evaluation. Zero disables the bound.
func WithTimeout(d time.Duration) EvalOption {
	return func(o *EvalOptions) {
		o.Timeout = d
	}
}

// WithDebug enables debug logging.
func WithDebug(enabled bool) EvalOption {
	return func(o *EvalOptions) {
		o.Debug = enabled
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(o *EvalOptions) {
		o.Logger = logger
	}
}
