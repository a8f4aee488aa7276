package common

import (
	"context"
	"os"

	"github.com/mellis0303/hhconfig/pkg/buildconfig"
	"github.com/mellis0303/hhconfig/pkg/common/iface"
	"github.com/mellis0303/hhconfig/pkg/common/logger"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// loggerContextKey is used to store the logger in the context
type loggerContextKey struct{}

// configContextKey is used to store the resolved configuration in the context
type configContextKey struct{}

// GetLoggerFromCLIContext creates a logger honoring the --verbose flag
func GetLoggerFromCLIContext(cCtx *cli.Context) iface.Logger {
	return GetLogger(cCtx.Bool("verbose"))
}

// GetLogger picks plain output for terminals and zap everywhere else
func GetLogger(verbose bool) iface.Logger {
	if IsTTY() && !isCI() {
		return logger.NewLogger(verbose)
	}
	return logger.NewZapLogger(verbose)
}

// IsTTY reports whether stderr is attached to a terminal
func IsTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// isCI checks if the code is running in a CI environment like GitHub Actions.
func isCI() bool {
	return os.Getenv("CI") == "true"
}

// WithLogger stores the logger in the context
func WithLogger(ctx context.Context, logger iface.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// LoggerFromContext retrieves the logger from the context
// If no logger is found, it returns a non-verbose logger as fallback
func LoggerFromContext(ctx context.Context) iface.Logger {
	if logger, ok := ctx.Value(loggerContextKey{}).(iface.Logger); ok {
		return logger
	}
	return GetLogger(false)
}

// WithConfig stores the resolved configuration in the context
func WithConfig(ctx context.Context, cfg *buildconfig.Configuration) context.Context {
	return context.WithValue(ctx, configContextKey{}, cfg)
}

// ConfigFromContext returns the configuration resolved by the Before hook.
// Without one it resolves the process environment directly.
func ConfigFromContext(ctx context.Context) *buildconfig.Configuration {
	if cfg, ok := ctx.Value(configContextKey{}).(*buildconfig.Configuration); ok && cfg != nil {
		return cfg
	}
	return buildconfig.LoadFromEnvironment()
}
