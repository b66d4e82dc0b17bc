package domain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"linegrep.dev/pkg/linegrep/internal/adapter"
	"linegrep.dev/pkg/linegrep/internal/controller"
	m "linegrep.dev/pkg/linegrep/internal/model"
)

// Searcher runs a parsed invocation against its targets.
type Searcher interface {
	// Search prints the selected lines of every target in order. It returns
	// ErrTargetsFailed when some target could not be searched.
	Search(ctx context.Context, inv m.Invocation) error
}

type searcher struct {
	adapter.SourceFSAdapter
	controller.UI

	walker *Walker
	stdin  io.Reader
	config m.SearchConfig
}

// NewSearcher creates a new Searcher instance with the provided dependencies.
func NewSearcher(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	stdin io.Reader,
	config m.SearchConfig,
) Searcher {
	return &searcher{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		walker:          NewWalker(fsAdapter, config.MaxDepth),
		stdin:           stdin,
		config:          config,
	}
}

// search holds the state of one Search call.
type search struct {
	*searcher

	re       *regexp.Regexp
	opts     m.Options
	failures atomic.Int64
}

func (s *searcher) Search(ctx context.Context, inv m.Invocation) error {
	re, err := CompilePattern(inv.Pattern)
	if err != nil {
		return err
	}

	run := &search{searcher: s, re: re, opts: inv.Options}
	targets := inv.DefaultTargets()

	slog.Debug("Starting search", "pattern", inv.Pattern, "targets", len(targets), "workers", s.config.Workers)

	for _, target := range targets {
		if target.IsStdin() {
			err = run.searchStdin(ctx)
		} else {
			err = run.searchPath(ctx, target)
		}

		if err != nil {
			_ = s.Flush()
			return err
		}
	}

	if err := s.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if n := run.failures.Load(); n > 0 {
		slog.Info("Search finished with failures", "failures", n)
		return ErrTargetsFailed
	}

	return nil
}

func (r *search) report(ctx context.Context, path m.Path, err error) {
	r.failures.Add(1)
	slog.Warn("Target failed", "path", path, "error", err)
	r.DisplayError(ctx, path, targetError(err))
}

// searchStdin streams standard input line by line.
func (r *search) searchStdin(ctx context.Context) error {
	if r.stdin == nil {
		return nil
	}

	reader := bufio.NewReader(r.stdin)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			r.report(ctx, m.Path(m.StdinLabel), readErr)
			return nil
		}

		if raw != "" {
			if !utf8.ValidString(raw) {
				r.report(ctx, m.Path(m.StdinLabel), ErrInvalidUTF8)
				return nil
			}

			if line, ok := FilterLine(r.opts, r.re, trimEOL(raw), m.StdinLabel); ok {
				if err := r.DisplayLine(ctx, line); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}
		}

		if readErr != nil {
			return nil
		}
	}
}

// searchFile reads a whole file and filters it.
func (r *search) searchFile(path m.Path) (string, error) {
	data, err := r.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}

	return Filter(r.opts, r.re, string(data), path.Label()), nil
}

func (r *search) searchPath(ctx context.Context, root m.Path) error {
	if r.config.Workers > 1 {
		return r.searchPathParallel(ctx, root, r.config.Workers)
	}

	return r.walker.Walk(ctx, root, r.opts.Recursive,
		func(path m.Path) error {
			out, err := r.searchFile(path)
			if err != nil {
				r.report(ctx, path, err)
				return nil
			}

			if err := r.DisplayBlock(ctx, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			return nil
		},
		func(path m.Path, err error) { r.report(ctx, path, err) },
	)
}

// fileResult is the outcome for one path, in traversal order.
type fileResult struct {
	path   m.Path
	output string
	err    error
}

// searchPathParallel reads and filters files on a bounded worker pool while
// a single emitter prints results in traversal order, one block per file.
func (r *search) searchPathParallel(ctx context.Context, root m.Path, workers int) error {
	group, groupCtx := errgroup.WithContext(ctx)
	slots := make(chan chan fileResult, workers)

	enqueue := func(slot chan fileResult) error {
		select {
		case slots <- slot:
			return nil
		case <-groupCtx.Done():
			return groupCtx.Err()
		}
	}

	group.Go(func() error {
		defer close(slots)

		var pool errgroup.Group
		pool.SetLimit(workers)

		walkErr := r.walker.Walk(groupCtx, root, r.opts.Recursive,
			func(path m.Path) error {
				slot := make(chan fileResult, 1)
				if err := enqueue(slot); err != nil {
					return err
				}

				pool.Go(func() error {
					out, err := r.searchFile(path)
					slot <- fileResult{path: path, output: out, err: err}

					return nil
				})

				return nil
			},
			func(path m.Path, err error) {
				slot := make(chan fileResult, 1)
				slot <- fileResult{path: path, err: err}
				_ = enqueue(slot)
			},
		)

		_ = pool.Wait()

		return walkErr
	})

	group.Go(func() error {
		for slot := range slots {
			res := <-slot
			if res.err != nil {
				r.report(groupCtx, res.path, res.err)
				continue
			}

			if err := r.DisplayBlock(groupCtx, res.output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}

		return nil
	})

	return group.Wait()
}
