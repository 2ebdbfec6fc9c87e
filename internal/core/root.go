package core

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
)

// ValidateRoot checks once, before any walk, that root exists and is a directory.
func ValidateRoot(fs billy.Basic, root string) error {
	info, err := fs.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrNotDirectory, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is %w", root, ErrNotDirectory)
	}
	return nil
}
