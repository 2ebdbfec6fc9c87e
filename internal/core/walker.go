package core

import (
	"fmt"
	"os"

	"github.com/brettbedarf/dedupe"
	"github.com/brettbedarf/dedupe/internal/util"
	"github.com/go-git/go-billy/v5"
)

// Walker enumerates non-hidden files beneath a directory in depth-first,
// directory-listing order.
type Walker struct {
	fs           billy.Filesystem
	hiddenPrefix string
	logger       util.Logger
}

func NewWalker(fs billy.Filesystem, hiddenPrefix string) *Walker {
	return &Walker{fs: fs, hiddenPrefix: hiddenPrefix, logger: util.GetLogger("walker")}
}

// dirFrame is one pending directory listing on the walk stack.
type dirFrame struct {
	dir     string
	entries []os.FileInfo
	next    int
}

// Walk lists every file under start. Directories are descended into as soon
// as they are met, so the order matches plain recursion. Hidden entries are
// skipped along with everything beneath them.
// Any directory read failure aborts the walk and no entries are returned.
func (w *Walker) Walk(start string) ([]dedupe.FileEntry, error) {
	root, err := w.open(start)
	if err != nil {
		return nil, err
	}

	var files []dedupe.FileEntry
	stack := []*dirFrame{root}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		info := top.entries[top.next]
		top.next++

		path := w.fs.Join(top.dir, info.Name())
		if dedupe.IsHidden(info.Name(), w.hiddenPrefix) {
			w.logger.Trace().Str("path", path).Msg("Skipping hidden entry")
			continue
		}
		if info.IsDir() {
			frame, err := w.open(path)
			if err != nil {
				return nil, err
			}
			stack = append(stack, frame)
			continue
		}
		files = append(files, dedupe.FileEntry{
			Path:    path,
			Type:    dedupe.FileEntryType,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	w.logger.Debug().Str("start", start).Int("files", len(files)).Msg("Walk finished")
	return files, nil
}

func (w *Walker) open(dir string) (*dirFrame, error) {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		w.logger.Error().Err(err).Str("dir", dir).Msg("Failed to read directory")
		return nil, fmt.Errorf("%w: read dir %q: %w", ErrTraversal, dir, err)
	}
	return &dirFrame{dir: dir, entries: entries}, nil
}
