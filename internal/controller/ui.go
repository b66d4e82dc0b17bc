// Package controller provides output adapters for displaying search results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	m "linegrep.dev/pkg/linegrep/internal/model"
)

// UI defines how search results and diagnostics reach the user.
type UI interface {
	// DisplayLine writes one formatted stdin line and makes it visible at once.
	DisplayLine(ctx context.Context, line string) error
	// DisplayBlock writes the formatted output of one file.
	DisplayBlock(ctx context.Context, block string) error
	// DisplayError reports a per-target failure without stopping the search.
	DisplayError(ctx context.Context, path m.Path, err error)
	// Flush writes any buffered output.
	Flush() error
}

// IsTTY reports whether f refers to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
