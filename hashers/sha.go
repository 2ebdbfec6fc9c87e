package hashers

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"github.com/brettbedarf/dedupe"
	"golang.org/x/crypto/sha3"
)

// StreamHasher digests content in-process with a stdlib compatible hash.
type StreamHasher struct {
	name    string
	newHash func() hash.Hash
}

// NewSHA256 returns the default hasher. Its digests match `sha256sum` output.
func NewSHA256() *StreamHasher {
	return &StreamHasher{name: SHA256HasherType, newHash: sha256.New}
}

// NewSHA3_256 returns a SHA3-256 hasher
func NewSHA3_256() *StreamHasher {
	return &StreamHasher{name: SHA3HasherType, newHash: sha3.New256}
}

func (h *StreamHasher) Name() string {
	return h.name
}

// Digest reads r to EOF. A fresh hash state is used per call.
func (h *StreamHasher) Digest(r io.Reader) (dedupe.Fingerprint, error) {
	st := h.newHash()
	if _, err := io.Copy(st, r); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrHasherFailed, h.name, err)
	}
	return dedupe.Fingerprint(hex.EncodeToString(st.Sum(nil))), nil
}
