package core

import (
	"errors"

	"github.com/brettbedarf/dedupe"
	"github.com/brettbedarf/dedupe/internal/journal"
	"github.com/brettbedarf/dedupe/internal/util"
	"github.com/google/uuid"
)

// Run is the state owned by a single invocation: a fresh registry, the
// journal, and the running summary. It is never shared between runs.
type Run struct {
	ID       uuid.UUID
	registry *Registry
	journal  *journal.Journal
	engine   *Engine
	resolver *Resolver
	display  func(string) string
	summary  dedupe.Summary
	logger   util.Logger
}

func newRun(d *Deduper) *Run {
	id := uuid.New()
	registry := NewRegistry()
	return &Run{
		ID:       id,
		registry: registry,
		journal:  d.journal,
		engine:   d.engine,
		resolver: NewResolver(d.fs, registry, d.journal, d.display),
		display:  d.display,
		summary:  dedupe.Summary{RunID: id.String(), Root: d.displayRoot},
		logger:   util.GetLogger("run").With().Str("run", id.String()).Logger(),
	}
}

// process pushes one file through fingerprinting and resolution.
// Hashing failures skip the file; everything else is returned as fatal.
func (r *Run) process(entry dedupe.FileEntry) error {
	shown := r.display(entry.Path)
	if err := r.journal.Processing(shown); err != nil {
		return err
	}
	r.summary.Processed++

	fp, err := r.engine.Fingerprint(entry.Path)
	if err != nil {
		if !errors.Is(err, ErrFingerprint) {
			return err
		}
		r.summary.Skipped++
		r.logger.Warn().Err(err).Str("path", shown).Msg("Skipping file that could not be hashed")
		return nil
	}
	r.logger.Debug().Str("path", shown).Str("fingerprint", string(fp)).Msg("Fingerprinted")

	res, err := r.resolver.Resolve(fp, entry.Path)
	if err != nil {
		return err
	}
	if res.Deletion != nil {
		r.summary.Deletions = append(r.summary.Deletions, *res.Deletion)
		r.summary.BytesFreed += res.Deletion.Size
	}
	return nil
}

// finish seals the summary and writes the completion record.
func (r *Run) finish() error {
	r.summary.Unique = r.registry.Len()
	return r.journal.Completed()
}
