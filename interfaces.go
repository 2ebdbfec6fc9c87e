package dedupe

import "io"

// Hasher computes a content fingerprint from a stream of file bytes.
// Implementations must be deterministic: identical byte streams yield
// identical fingerprints.
type Hasher interface {
	// Name returns the registry key of the hashing backend, i.e. "sha256"
	Name() string

	// Digest consumes r to EOF and returns the lowercase hex digest
	Digest(r io.Reader) (Fingerprint, error)
}
