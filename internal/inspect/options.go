package inspect

import "log/slog"

// Options configures an [Inspector].
type Options struct {
	// Logger receives a record per inspected line. Defaults to a noop logger.
	Logger *slog.Logger
	// Strict stops [Inspector.Run] at the first rejected line.
	Strict bool
}

// Option mutates [Options].
type Option func(o *Options)

// WithLogger sets the inspector logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithStrict enables or disables strict mode.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}
