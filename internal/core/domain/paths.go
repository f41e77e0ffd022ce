package domain

import "path/filepath"

// CanonicalPath re-anchors a path recorded in a lockfile or manifest at the
// directory the artifact was loaded from. Recorded paths are stored relative to
// their own directory so an installation stays valid when it is relocated; an
// already-absolute recorded path is only cleaned.
func CanonicalPath(dir, recorded string) string {
	if filepath.IsAbs(recorded) {
		return filepath.Clean(recorded)
	}
	return filepath.Join(dir, recorded)
}
