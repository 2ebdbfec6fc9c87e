package core

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/brettbedarf/dedupe"
	"github.com/brettbedarf/dedupe/internal/journal"
	"github.com/go-git/go-billy/v5"
)

// walkStart is the scan root inside the deduper's filesystem.
const walkStart = "."

// Deduper wires the walker, fingerprint engine and resolver over a
// filesystem rooted at the scan directory.
type Deduper struct {
	fs           billy.Filesystem
	journal      *journal.Journal
	walker       *Walker
	engine       *Engine
	hiddenPrefix string
	displayRoot  string
	display      func(string) string
}

type Option func(*Deduper)

// WithHiddenPrefix overrides the hidden entry marker (Default ".").
func WithHiddenPrefix(prefix string) Option {
	return func(d *Deduper) { d.hiddenPrefix = prefix }
}

// WithDisplayRoot prefixes paths written to the journal and summary,
// normally the root directory exactly as the user supplied it.
func WithDisplayRoot(root string) Option {
	return func(d *Deduper) { d.displayRoot = root }
}

// NewDeduper creates a Deduper for the tree at the root of fs.
func NewDeduper(fs billy.Filesystem, hasher dedupe.Hasher, j *journal.Journal, opts ...Option) *Deduper {
	d := &Deduper{
		fs:           fs,
		journal:      j,
		hiddenPrefix: dedupe.DefaultHiddenPrefix,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.walker = NewWalker(fs, d.hiddenPrefix)
	d.engine = NewEngine(fs, hasher)
	d.display = func(p string) string { return filepath.Join(d.displayRoot, filepath.FromSlash(p)) }
	return d
}

// Run scans the whole tree first and only then fingerprints and resolves
// each file in walk order, so an unreadable directory aborts before any
// deletion. Every call starts from an empty registry.
// ctx is checked between files; deletions already made are never undone.
func (d *Deduper) Run(ctx context.Context) (*dedupe.Summary, error) {
	run := newRun(d)
	run.logger.Info().Str("root", d.displayRoot).Msg("Run started")

	files, err := d.walker.Walk(walkStart)
	if err != nil {
		return &run.summary, err
	}

	for _, entry := range files {
		if err := ctx.Err(); err != nil {
			return &run.summary, fmt.Errorf("run interrupted: %w", err)
		}
		if err := run.process(entry); err != nil {
			run.logger.Error().Err(err).Str("path", d.display(entry.Path)).Msg("Run aborted")
			return &run.summary, err
		}
	}

	if err := run.finish(); err != nil {
		return &run.summary, err
	}
	run.logger.Info().
		Int("processed", run.summary.Processed).
		Int("skipped", run.summary.Skipped).
		Int("duplicates", run.summary.Duplicates()).
		Int64("bytes_freed", run.summary.BytesFreed).
		Msg("Run completed")
	return &run.summary, nil
}
