package model

// Path represents a file system path or the standard-input sentinel.
type Path string

const (
	// StdinTarget is the target that selects standard input.
	StdinTarget Path = "-"

	// StdinLabel prefixes lines read from standard input.
	StdinLabel = "(stdin)"
)

// IsStdin reports whether p selects standard input.
func (p Path) IsStdin() bool {
	return p == StdinTarget
}

// Label returns the prefix printed in front of lines read from p.
func (p Path) Label() string {
	if p.IsStdin() {
		return StdinLabel
	}

	return string(p)
}
