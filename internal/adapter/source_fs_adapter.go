// Package adapter contains infrastructure adapters for the linegrep CLI.
package adapter

import (
	"os"
	"path/filepath"

	m "linegrep.dev/pkg/linegrep/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the search engine
// relies on when walking targets. It hides direct `os` access so the
// traversal logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// FileInfo returns metadata for path, following symbolic links.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ReadDir lists the entries of a directory in listing order.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// Resolve returns the absolute, symlink-free form of path. Two paths
	// naming the same directory resolve to the same value.
	Resolve(path m.Path) (m.Path, error)

	// JoinPath appends an entry name to a directory path.
	JoinPath(dir m.Path, name string) m.Path
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of the os package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the searcher.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadDir lists directory entries.
func (a *LocalSourceFSAdapter) ReadDir(path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-named files is the purpose of the tool
	return os.ReadFile(string(path))
}

// Resolve evaluates symlinks and makes the path absolute.
func (a *LocalSourceFSAdapter) Resolve(path m.Path) (m.Path, error) {
	resolved, err := filepath.EvalSymlinks(string(path))
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath appends name to dir without cleaning dir, so printed labels keep
// the spelling the user typed ("./src" yields "./src/a.txt").
func (a *LocalSourceFSAdapter) JoinPath(dir m.Path, name string) m.Path {
	d := string(dir)
	if d == "" || os.IsPathSeparator(d[len(d)-1]) {
		return m.Path(d + name)
	}

	return m.Path(d + string(filepath.Separator) + name)
}
