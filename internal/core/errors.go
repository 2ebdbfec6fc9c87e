package core

import "errors"

var (
	// ErrNotDirectory is returned when the scan root is missing or not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrTraversal aborts a run when a directory cannot be read.
	ErrTraversal = errors.New("traversal failed")

	// ErrFingerprint marks a file that could not be hashed. Never fatal.
	ErrFingerprint = errors.New("fingerprint failed")

	// ErrResolve aborts a run when duplicate metadata or deletion fails.
	ErrResolve = errors.New("duplicate resolution failed")
)
