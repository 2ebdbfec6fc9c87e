package core

import (
	"fmt"
	"os"

	"github.com/brettbedarf/dedupe"
	"github.com/brettbedarf/dedupe/internal/journal"
	"github.com/brettbedarf/dedupe/internal/util"
	"github.com/go-git/go-billy/v5"
)

// Outcome is the per-file result of duplicate resolution.
type Outcome uint8

const (
	// Registered means the fingerprint was new and the file became canonical.
	Registered Outcome = iota
	// RemovedCandidate means the incoming file was the older (or equal) copy and was deleted.
	RemovedCandidate
	// RemovedExisting means the registered file was older, was deleted, and the candidate replaced it.
	RemovedExisting
	// SameFile means both paths reach the same file through a link; nothing was deleted.
	SameFile
)

func (o Outcome) String() string {
	switch o {
	case Registered:
		return "registered"
	case RemovedCandidate:
		return "removed-candidate"
	case RemovedExisting:
		return "removed-existing"
	case SameFile:
		return "same-file"
	default:
		return "unknown"
	}
}

// Resolution reports what Resolve did. Deletion is nil for [Registered] and [SameFile].
type Resolution struct {
	Outcome  Outcome
	Deletion *dedupe.Deletion
}

// Resolver applies the retention policy against a run's registry: on a
// fingerprint collision the copy with the later modification time survives,
// ties keep the already registered path.
type Resolver struct {
	fs       billy.Basic
	registry *Registry
	journal  *journal.Journal
	display  func(string) string
	logger   util.Logger
}

func NewResolver(fs billy.Basic, registry *Registry, j *journal.Journal, display func(string) string) *Resolver {
	if display == nil {
		display = func(p string) string { return p }
	}
	return &Resolver{
		fs:       fs,
		registry: registry,
		journal:  j,
		display:  display,
		logger:   util.GetLogger("resolver"),
	}
}

// Resolve records candidate under fp or, on collision, deletes exactly one of
// the two files and leaves the registry pointing at the survivor.
// Any metadata, deletion or journal failure is fatal to the run.
func (r *Resolver) Resolve(fp dedupe.Fingerprint, candidate string) (Resolution, error) {
	existing, ok := r.registry.Lookup(fp)
	if !ok {
		r.registry.Put(fp, candidate)
		return Resolution{Outcome: Registered}, nil
	}

	existingInfo, err := r.fs.Stat(existing)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: stat %q: %w", ErrResolve, r.display(existing), err)
	}
	candidateInfo, err := r.fs.Stat(candidate)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: stat %q: %w", ErrResolve, r.display(candidate), err)
	}

	// a symlink or hard link to the registered file is not a copy of it
	if os.SameFile(existingInfo, candidateInfo) {
		r.logger.Debug().
			Str("existing", r.display(existing)).
			Str("candidate", r.display(candidate)).
			Msg("Paths share one file, not a duplicate")
		return Resolution{Outcome: SameFile}, nil
	}

	if err := r.journal.Duplicate(r.display(existing), r.display(candidate)); err != nil {
		return Resolution{}, err
	}

	res := Resolution{Outcome: RemovedCandidate}
	keep, remove, size := existing, candidate, candidateInfo.Size()
	if existingInfo.ModTime().Before(candidateInfo.ModTime()) {
		res.Outcome = RemovedExisting
		keep, remove, size = candidate, existing, existingInfo.Size()
	}

	if err := r.journal.Deleting(r.display(remove)); err != nil {
		return Resolution{}, err
	}
	if err := r.fs.Remove(remove); err != nil {
		return Resolution{}, fmt.Errorf("%w: remove %q: %w", ErrResolve, r.display(remove), err)
	}
	if res.Outcome == RemovedExisting {
		r.registry.Put(fp, candidate)
	}

	r.logger.Info().
		Str("fingerprint", string(fp)).
		Str("kept", r.display(keep)).
		Str("removed", r.display(remove)).
		Msg("Removed duplicate")

	res.Deletion = &dedupe.Deletion{
		Fingerprint: fp,
		Kept:        r.display(keep),
		Removed:     r.display(remove),
		Size:        size,
	}
	return res, nil
}
