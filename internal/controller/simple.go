package controller

import (
	"bufio"
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	m "linegrep.dev/pkg/linegrep/internal/model"
)

// SimpleUI implements UI on top of a cobra command's output streams.
//
// File blocks are buffered unless the output is a terminal; stdin lines are
// always flushed as they are produced.
type SimpleUI struct {
	cmd *cobra.Command
	tty bool

	mu  sync.Mutex
	out *bufio.Writer
}

// NewSimpleUI creates a new SimpleUI. Pass tty=true when stdout is a terminal.
func NewSimpleUI(cmd *cobra.Command, tty bool) *SimpleUI {
	return &SimpleUI{
		cmd: cmd,
		tty: tty,
		out: bufio.NewWriter(cmd.OutOrStdout()),
	}
}

// DisplayLine writes a stdin line and flushes it.
func (s *SimpleUI) DisplayLine(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.out.WriteString(line); err != nil {
		return err
	}

	return s.out.Flush()
}

// DisplayBlock writes the output produced for one file.
func (s *SimpleUI) DisplayBlock(ctx context.Context, block string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if block == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.out.WriteString(block); err != nil {
		return err
	}

	if s.tty {
		return s.out.Flush()
	}

	return nil
}

// DisplayError prints a diagnostic in the form "ERR: path: <path>, err: <err>".
func (s *SimpleUI) DisplayError(_ context.Context, path m.Path, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Keep stdout ahead of the diagnostic when both streams share a terminal.
	_ = s.out.Flush()
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "ERR: path: %s, err: %v\n", path, err)
}

// Flush writes any buffered output.
func (s *SimpleUI) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.out.Flush()
}
