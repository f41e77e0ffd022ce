package ports

// Environment resolves the directories resolution searches. Implementations
// own the WPM_DIR override and the creation of the per-user directory.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// CurrentDir returns the process's current working directory: the local
	// search scope.
	CurrentDir() (string, error)

	// Root returns the per-user wpm directory ($WPM_DIR, else ~/.wpm),
	// creating it if absent.
	Root() (string, error)

	// GlobalsDir returns the global installation scope under the root.
	GlobalsDir() (string, error)
}
