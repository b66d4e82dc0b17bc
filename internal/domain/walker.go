package domain

import (
	"context"
	"log/slog"

	"linegrep.dev/pkg/linegrep/internal/adapter"
	m "linegrep.dev/pkg/linegrep/internal/model"
)

// VisitFunc is called for every regular file reached by a walk. Returning an
// error stops the walk.
type VisitFunc func(path m.Path) error

// ReportFunc receives per-path failures. The walk continues afterwards.
type ReportFunc func(path m.Path, err error)

// Walker visits targets depth first using an explicit stack of pending
// paths. Directory entries are visited in listing order.
type Walker struct {
	fs       adapter.SourceFSAdapter
	maxDepth int
}

// NewWalker creates a Walker. maxDepth limits how many directory levels below
// a target are listed; 0 means unlimited.
func NewWalker(fs adapter.SourceFSAdapter, maxDepth int) *Walker {
	if maxDepth < 0 {
		maxDepth = 0
	}

	return &Walker{fs: fs, maxDepth: maxDepth}
}

type pending struct {
	path  m.Path
	depth int
}

// Walk visits root. Directories are skipped silently unless recursive is
// set. Missing paths and unreadable directories are passed to report.
// A directory reached a second time, for example through a symlink loop,
// is not listed again.
func (w *Walker) Walk(ctx context.Context, root m.Path, recursive bool, visit VisitFunc, report ReportFunc) error {
	stack := []pending{{path: root}}
	visited := make(map[m.Path]struct{})

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info, err := w.fs.FileInfo(top.path)
		if err != nil {
			report(top.path, err)
			continue
		}

		switch {
		case info.IsDir():
			if !recursive {
				slog.Debug("Skipping directory", "path", top.path)
				continue
			}

			entries, ok := w.listDir(top, visited, report)
			if !ok {
				continue
			}

			// Push in reverse so entries pop in listing order.
			for i := len(entries) - 1; i >= 0; i-- {
				stack = append(stack, pending{
					path:  w.fs.JoinPath(top.path, entries[i]),
					depth: top.depth + 1,
				})
			}
		case info.Mode().IsRegular():
			if err := visit(top.path); err != nil {
				return err
			}
		default:
			slog.Debug("Skipping special file", "path", top.path, "mode", info.Mode().String())
		}
	}

	return nil
}

func (w *Walker) listDir(dir pending, visited map[m.Path]struct{}, report ReportFunc) ([]string, bool) {
	if w.maxDepth > 0 && dir.depth >= w.maxDepth {
		slog.Debug("Max depth reached", "path", dir.path, "depth", dir.depth)
		return nil, false
	}

	resolved, err := w.fs.Resolve(dir.path)
	if err != nil {
		report(dir.path, err)
		return nil, false
	}

	if _, seen := visited[resolved]; seen {
		slog.Debug("Directory already visited", "path", dir.path, "resolved", resolved)
		return nil, false
	}

	visited[resolved] = struct{}{}

	entries, err := w.fs.ReadDir(dir.path)
	if err != nil {
		report(dir.path, err)
		return nil, false
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, true
}
