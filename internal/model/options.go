// Package model defines the data structures shared by the search engine.
package model

// Options holds the line selection and formatting switches.
// It is created once from the command line and never mutated afterwards.
type Options struct {
	// Recursive descends into directories (-r, --recursive).
	Recursive bool
	// NoFilename omits the "label:" prefix (-h, --no-filename).
	NoFilename bool
	// InvertMatch selects non-matching lines (-v, --invert-match).
	InvertMatch bool
}

// Invocation is the structured result of parsing the argument vector.
type Invocation struct {
	Pattern string
	Targets []Path
	Options Options
	// Help is set by --help.
	Help bool
}

// DefaultTargets returns the targets to search, substituting standard input
// when none were given.
func (i Invocation) DefaultTargets() []Path {
	if len(i.Targets) == 0 {
		return []Path{StdinTarget}
	}

	return i.Targets
}

// SearchConfig tunes the engine without affecting which lines are printed.
type SearchConfig struct {
	// Workers is the number of files read and filtered concurrently.
	Workers int
	// MaxDepth bounds directory recursion; 0 means unlimited.
	MaxDepth int
}
