// Package app implements the application layer for wpm.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/wpm/internal/adapters/cas"
	"go.trai.ch/wpm/internal/core/domain"
	"go.trai.ch/wpm/internal/core/ports"
	"go.trai.ch/wpm/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	env      ports.Environment
	config   ports.ConfigStore
	registry ports.Registry
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	env ports.Environment,
	config ports.ConfigStore,
	registry ports.Registry,
	log ports.Logger,
) *App {
	return &App{
		env:      env,
		config:   config,
		registry: registry,
		logger:   log,
	}
}

// Locate resolves a command name to its execution descriptor, searching the
// local project directory first and the global installation directory second.
//
// The two scopes are consulted in fixed order and each exactly once. Only a
// clean not-found in the local scope moves the search to the global scope; a
// hard error in either scope surfaces immediately and is never downgraded to
// "not found".
func (a *App) Locate(ctx context.Context, commandName string) (domain.Command, error) {
	_, span := otel.Tracer("wpm").Start(ctx, "locate",
		trace.WithAttributes(attribute.String("command", commandName)))
	defer span.End()

	r := resolver.New(a.logger)

	localDir, err := a.env.CurrentDir()
	if err != nil {
		return domain.Command{}, scopeErr(domain.ErrReadingLocalDirectory, err,
			fmt.Sprintf("could not get command %q", commandName))
	}

	local := r.Find(localDir, commandName)
	switch local.Outcome {
	case resolver.OutcomeFound:
		cmd := local.Command
		cmd.IsGlobal = false
		span.SetAttributes(attribute.String("scope", "local"))
		return cmd, nil
	case resolver.OutcomeError:
		return domain.Command{}, scopeErr(domain.ErrReadingLocalDirectory, local.Err,
			fmt.Sprintf("could not get command %q because there was a problem with the local package", commandName))
	case resolver.OutcomeNotFound:
	}
	a.logger.Debug(fmt.Sprintf("command %q not found locally", commandName))

	globalDir, err := a.env.GlobalsDir()
	if err != nil {
		return domain.Command{}, scopeErr(domain.ErrOpeningGlobalsDirectory, err,
			fmt.Sprintf("failed to get command %q because there was an error opening the global installation directory", commandName))
	}

	global := r.Find(globalDir, commandName)
	switch global.Outcome {
	case resolver.OutcomeFound:
		cmd := global.Command
		cmd.IsGlobal = true
		span.SetAttributes(attribute.String("scope", "global"))
		return cmd, nil
	case resolver.OutcomeError:
		return domain.Command{}, scopeErr(domain.ErrReadingGlobalDirectory, global.Err,
			fmt.Sprintf("command %q was not found in the local directory and there was an error parsing the global lockfile", commandName))
	case resolver.OutcomeNotFound:
	}
	a.logger.Debug(fmt.Sprintf("command %q not found globally", commandName))

	return domain.Command{}, zerr.Wrap(domain.ErrCommandNotFoundAnywhere,
		fmt.Sprintf("command %q was not found in the local directory or the global install directory", commandName))
}

// Suggest asks the registry which package provides a command name. The CLI
// uses it after Locate ends in a clean not-found.
func (a *App) Suggest(ctx context.Context, commandName string) (*domain.PackageInfo, error) {
	return a.registry.LookupPackageByCommand(ctx, commandName)
}

// CacheKey returns the content cache key for a resolved command. Registry
// installs carry a precomputed key; local commands are hashed on demand.
func (a *App) CacheKey(_ context.Context, cmd domain.Command) (string, error) {
	return cas.NewKeyer().KeyFor(cmd)
}

// ConfigGet returns the value of a global config key.
func (a *App) ConfigGet(_ context.Context, key string) (string, error) {
	return a.config.Get(key)
}

// ConfigSet updates a global config key and persists the change.
func (a *App) ConfigSet(_ context.Context, key, value string) error {
	return a.config.Set(key, value)
}

// scopeErr builds a scope-level failure that keeps both the sentinel and the
// underlying cause in the chain, with the command name in the message.
func scopeErr(sentinel, cause error, msg string) error {
	if cause == nil {
		return zerr.Wrap(sentinel, msg)
	}
	return zerr.Wrap(errors.Join(sentinel, cause), msg)
}
