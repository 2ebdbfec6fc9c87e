package core

import (
	"fmt"

	"github.com/brettbedarf/dedupe"
	"github.com/brettbedarf/dedupe/internal/util"
	"github.com/go-git/go-billy/v5"
)

// Engine computes content fingerprints of files on fs.
type Engine struct {
	fs     billy.Basic
	hasher dedupe.Hasher
	logger util.Logger
}

func NewEngine(fs billy.Basic, hasher dedupe.Hasher) *Engine {
	return &Engine{fs: fs, hasher: hasher, logger: util.GetLogger("engine")}
}

// Fingerprint hashes the full contents of path. Errors wrap [ErrFingerprint].
func (e *Engine) Fingerprint(path string) (dedupe.Fingerprint, error) {
	f, err := e.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFingerprint, err)
	}
	defer f.Close() // nolint:errcheck
	e.logger.Trace().Str("path", path).Str("hasher", e.hasher.Name()).Msg("Hashing file")

	fp, err := e.hasher.Digest(f)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrFingerprint, path, err)
	}
	if fp == "" {
		return "", fmt.Errorf("%w: %q: %s returned an empty digest", ErrFingerprint, path, e.hasher.Name())
	}
	return fp, nil
}
