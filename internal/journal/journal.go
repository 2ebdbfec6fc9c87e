// Package journal writes the append-only run log. Records are plain text,
// one per line, in processing order:
//
//	Processing: <path>
//	DUPLICATE DETECTED: <existing> and <candidate>
//	DELETING: <path>
//	Processing completed.
//
// Every record is written straight through to the underlying file so the
// log reflects all deletions performed even when a run aborts.
package journal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
)

// ErrJournal marks a failed log write. Callers treat it as fatal.
var ErrJournal = errors.New("journal write failed")

const (
	processingFmt = "Processing: %s\n"
	duplicateFmt  = "DUPLICATE DETECTED: %s and %s\n"
	deletingFmt   = "DELETING: %s\n"
	CompletedMsg  = "Processing completed."
)

type Journal struct {
	w io.Writer
	c io.Closer
}

// Open creates name on fs or appends to it when it already exists.
func Open(fs billy.Basic, name string) (*Journal, error) {
	f, err := fs.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", ErrJournal, name, err)
	}
	return &Journal{w: f, c: f}, nil
}

// New wraps an arbitrary writer. Close is a no-op for journals built this way.
func New(w io.Writer) *Journal {
	return &Journal{w: w}
}

func (j *Journal) Processing(path string) error {
	return j.printf(processingFmt, path)
}

func (j *Journal) Duplicate(existing, candidate string) error {
	return j.printf(duplicateFmt, existing, candidate)
}

func (j *Journal) Deleting(path string) error {
	return j.printf(deletingFmt, path)
}

func (j *Journal) Completed() error {
	return j.printf("%s\n", CompletedMsg)
}

func (j *Journal) Close() error {
	if j == nil || j.c == nil {
		return nil
	}
	return j.c.Close()
}

func (j *Journal) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(j.w, format, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrJournal, err)
	}
	return nil
}
