package common

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/mellis0303/hhconfig/internal/version"

	"github.com/google/uuid"
)

// WithShutdown creates a new context that will be cancelled on SIGTERM/SIGINT
func WithShutdown(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		select {
		case <-sigChan:
			_, _ = fmt.Fprintln(os.Stderr, "caught interrupt, shutting down gracefully.")
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
		cancel()
	}()

	return ctx
}

type appEnvironmentContextKey struct{}

// AppEnvironment describes the running binary for telemetry
type AppEnvironment struct {
	CLIVersion string
	OS         string
	Arch       string
	RunID      string
}

func NewAppEnvironment(os, arch, runID string) *AppEnvironment {
	return &AppEnvironment{
		CLIVersion: version.GetVersion(),
		OS:         os,
		Arch:       arch,
		RunID:      runID,
	}
}

// WithAppEnvironment attaches an environment with a fresh run id
func WithAppEnvironment(ctx context.Context) context.Context {
	return withAppEnvironment(ctx, NewAppEnvironment(runtime.GOOS, runtime.GOARCH, uuid.New().String()))
}

func withAppEnvironment(ctx context.Context, appEnvironment *AppEnvironment) context.Context {
	return context.WithValue(ctx, appEnvironmentContextKey{}, appEnvironment)
}

func AppEnvironmentFromContext(ctx context.Context) (*AppEnvironment, bool) {
	env, ok := ctx.Value(appEnvironmentContextKey{}).(*AppEnvironment)
	return env, ok
}
