// Package app assembles a dedupe run from a [config.Config]: it resolves the
// hasher, opens the journal and builds the deduper for one root directory.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/brettbedarf/dedupe"
	"github.com/brettbedarf/dedupe/config"
	"github.com/brettbedarf/dedupe/hashers"
	"github.com/brettbedarf/dedupe/internal/core"
	"github.com/brettbedarf/dedupe/internal/journal"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// App owns the resources of a single invocation.
type App struct {
	cfg     *config.Config
	journal *journal.Journal
	deduper *core.Deduper
}

// New validates root and wires everything against the host filesystem.
// Relative root and log paths are resolved against the working directory;
// journal and summary paths keep root as given.
func New(cfg *config.Config, root string) (*App, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", core.ErrNotDirectory, root, err)
	}
	absLog, err := filepath.Abs(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("resolve log file %q: %w", cfg.LogFile, err)
	}
	return newApp(cfg, osfs.New("/"), absRoot, absLog, root)
}

// NewWithFS is [New] over an arbitrary host filesystem. root and
// cfg.LogFile are used as host paths unchanged.
func NewWithFS(cfg *config.Config, host billy.Filesystem, root string) (*App, error) {
	return newApp(cfg, host, root, cfg.LogFile, root)
}

// newApp opens the journal only once root is known to be a directory so a
// usage error never touches the log file.
func newApp(cfg *config.Config, host billy.Filesystem, root, logFile, displayRoot string) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := core.ValidateRoot(host, root); err != nil {
		return nil, err
	}
	hasher, err := hashers.New(cfg.Hasher)
	if err != nil {
		return nil, err
	}
	tree, err := host.Chroot(root)
	if err != nil {
		return nil, fmt.Errorf("chroot %q: %w", root, err)
	}
	j, err := journal.Open(host, logFile)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:     cfg,
		journal: j,
		deduper: core.NewDeduper(tree, hasher, j,
			core.WithHiddenPrefix(cfg.HiddenPrefix),
			core.WithDisplayRoot(displayRoot),
		),
	}, nil
}

// Run performs the deduplication pass.
func (a *App) Run(ctx context.Context) (*dedupe.Summary, error) {
	return a.deduper.Run(ctx)
}

// Close releases the journal.
func (a *App) Close() error {
	return a.journal.Close()
}
