// Package memory provides map-backed implementations of every repository
// port. It is the reference adapter used by the CLI and tests; a SQL
// adapter would replace it without touching the domain packages.
package memory

import "fmt"

// VersionConflictError reports an optimistic-concurrency failure: the
// aggregate was modified since the caller's read. Callers retry from a
// fresh read.
type VersionConflictError struct {
	Entity        string
	ID            string
	WantedVersion int
	StoredVersion int
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("version conflict on %s %s: saving version %d over stored %d",
		e.Entity, e.ID, e.WantedVersion, e.StoredVersion)
}
