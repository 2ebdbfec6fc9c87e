package core

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/brettbedarf/dedupe"
	"github.com/brettbedarf/dedupe/hashers"
	"github.com/brettbedarf/dedupe/internal/journal"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected failure")

// faultyFS fails ReadDir or Remove for selected paths.
type faultyFS struct {
	billy.Filesystem
	readDirFails map[string]bool
	removeFails  map[string]bool
}

func (f *faultyFS) ReadDir(path string) ([]os.FileInfo, error) {
	if f.readDirFails[path] {
		return nil, errInjected
	}
	return f.Filesystem.ReadDir(path)
}

func (f *faultyFS) Remove(path string) error {
	if f.removeFails[path] {
		return errInjected
	}
	return f.Filesystem.Remove(path)
}

// poisonHasher fails for content containing "poison" and otherwise hashes with SHA-256.
type poisonHasher struct{}

func (poisonHasher) Name() string { return "poison" }

func (poisonHasher) Digest(r io.Reader) (dedupe.Fingerprint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if strings.Contains(string(data), "poison") {
		return "", errInjected
	}
	return hashers.NewSHA256().Digest(bytes.NewReader(data))
}

// tree is a temp directory populated through writeFile.
type tree struct {
	t    *testing.T
	root string
	base time.Time
}

func newTree(t *testing.T) *tree {
	t.Helper()
	return &tree{t: t, root: t.TempDir(), base: time.Now().Add(-24 * time.Hour).Truncate(time.Second)}
}

// writeFile creates rel with content and an mtime offset from the tree's base time.
func (tr *tree) writeFile(rel, content string, age time.Duration) string {
	tr.t.Helper()
	path := filepath.Join(tr.root, filepath.FromSlash(rel))
	require.NoError(tr.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(tr.t, os.WriteFile(path, []byte(content), 0o644))
	mtime := tr.base.Add(age)
	require.NoError(tr.t, os.Chtimes(path, mtime, mtime))
	return path
}

func (tr *tree) path(rel string) string {
	return filepath.Join(tr.root, filepath.FromSlash(rel))
}

func (tr *tree) fs() billy.Filesystem {
	return osfs.New(tr.root)
}

// newTestDeduper returns a deduper over fs whose journal writes to the returned buffer.
func newTestDeduper(fs billy.Filesystem, hasher dedupe.Hasher, opts ...Option) (*Deduper, *bytes.Buffer) {
	var buf bytes.Buffer
	if hasher == nil {
		hasher = hashers.NewSHA256()
	}
	return NewDeduper(fs, hasher, journal.New(&buf), opts...), &buf
}

func journalLines(buf *bytes.Buffer) []string {
	s := strings.TrimSuffix(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// limitWriter accepts n writes into buf and fails every write after that.
type limitWriter struct {
	buf bytes.Buffer
	n   int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errInjected
	}
	w.n--
	return w.buf.Write(p)
}
