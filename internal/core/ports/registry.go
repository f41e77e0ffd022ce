package ports

import (
	"context"

	"go.trai.ch/wpm/internal/core/domain"
)

// Registry looks up package metadata on the remote registry. Resolution never
// calls it; the CLI consults it after a clean not-found to suggest an install.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// LookupPackageByCommand returns the package that provides the given
	// command name.
	LookupPackageByCommand(ctx context.Context, commandName string) (*domain.PackageInfo, error)
}
