package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "linegrep.dev/pkg/linegrep/internal/model"
)

// CompilePattern compiles the user's pattern.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, ErrMissingPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	return re, nil
}

// Filter returns the lines of content selected by re and opts, each
// formatted and newline-terminated, in input order.
//
// Lines are split on "\n"; a final newline does not produce an empty
// trailing line and a trailing "\r" is dropped from every line. A line is
// kept when it matches and InvertMatch is off, or does not match and
// InvertMatch is on. Filter has no side effects.
func Filter(opts m.Options, re *regexp.Regexp, content, label string) string {
	var out strings.Builder

	for raw := range strings.Lines(content) {
		if line, ok := FilterLine(opts, re, trimEOL(raw), label); ok {
			out.WriteString(line)
		}
	}

	return out.String()
}

// FilterLine formats a single line if it is selected. line must not carry
// its terminator.
func FilterLine(opts m.Options, re *regexp.Regexp, line, label string) (string, bool) {
	if re.MatchString(line) == opts.InvertMatch {
		return "", false
	}

	if opts.NoFilename {
		return line + "\n", true
	}

	return label + ":" + line + "\n", true
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
