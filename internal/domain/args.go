package domain

import (
	m "linegrep.dev/pkg/linegrep/internal/model"
)

// HelpToken requests the usage text.
const HelpToken = "--help"

// ParseArgs turns the argument vector (without the program name) into an
// Invocation.
//
// Flags may appear anywhere. The first token that is not a recognised flag
// becomes the pattern, every later one a target. Unrecognised tokens that
// start with "-" are not rejected: they take the pattern or target slot like
// any other word.
func ParseArgs(argv []string) m.Invocation {
	var (
		inv          m.Invocation
		patternTaken bool
	)

	for _, arg := range argv {
		switch arg {
		case "-r", "--recursive":
			inv.Options.Recursive = true
		case "-h", "--no-filename":
			inv.Options.NoFilename = true
		case "-v", "--invert-match":
			inv.Options.InvertMatch = true
		case HelpToken:
			inv.Help = true
		default:
			if !patternTaken {
				inv.Pattern = arg
				patternTaken = true

				continue
			}

			inv.Targets = append(inv.Targets, m.Path(arg))
		}
	}

	return inv
}
