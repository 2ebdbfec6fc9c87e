package dedupe

import (
	"path"
	"strings"
	"time"
)

// DefaultHiddenPrefix marks entries the walker never descends into or hashes.
const DefaultHiddenPrefix = "."

// Fingerprint is a hex encoded content digest.
type Fingerprint string

// EntryType distinguishes directories from everything else the walker sees.
type EntryType uint8

const (
	FileEntryType EntryType = iota // regular files, symlinks, devices etc.
	DirEntryType
)

func (t EntryType) String() string {
	if t == DirEntryType {
		return "dir"
	}
	return "file"
}

// FileEntry is a transient record produced by the walker for each visited entry.
type FileEntry struct {
	Path    string // path relative to the walk root, slash separated
	Type    EntryType
	Size    int64
	ModTime time.Time
}

// Name returns the last path component.
func (e FileEntry) Name() string {
	return path.Base(e.Path)
}

// IsDir reports whether the entry is a directory.
func (e FileEntry) IsDir() bool {
	return e.Type == DirEntryType
}

// IsHidden reports whether the entry name starts with prefix.
// An empty prefix hides nothing.
func IsHidden(name, prefix string) bool {
	return prefix != "" && strings.HasPrefix(name, prefix)
}
