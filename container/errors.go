package container

import "errors"

// Sentinel errors for the container package.
var (
	// ErrCapacity indicates every in-memory slot was locked when an
	// eviction was needed and the retry budget was exhausted.
	ErrCapacity = errors.New("container: no evictable slot within retry budget")
	// ErrNotFound indicates Find/Erase was asked about a tile index this
	// container has never seen.
	ErrNotFound = errors.New("container: tile not found")
)
