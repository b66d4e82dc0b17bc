package domain

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "linegrep.dev/pkg/linegrep/internal/model"
)

const sampleInput = "abc def\n" +
	"ijk lmn opq\n" +
	"hello123\n" +
	"1234 xyz\n" +
	"a b c def\n"

func TestFilter_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		opts    m.Options
		want    string
	}{
		{
			name:    "basic",
			pattern: "abc",
			want:    "text:abc def\n",
		},
		{
			name:    "no filename",
			pattern: "def",
			opts:    m.Options{NoFilename: true},
			want:    "abc def\na b c def\n",
		},
		{
			name:    "invert",
			pattern: "^a",
			opts:    m.Options{NoFilename: true, InvertMatch: true},
			want:    "ijk lmn opq\nhello123\n1234 xyz\n",
		},
		{
			name:    "character class and quantifier",
			pattern: `^[0-9]+\s`,
			want:    "text:1234 xyz\n",
		},
		{
			name:    "end anchor",
			pattern: `\d$`,
			want:    "text:hello123\n",
		},
		{
			name:    "no match",
			pattern: "zzz",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			assert.Equal(t, tt.want, Filter(tt.opts, re, sampleInput, "text"))
		})
	}
}

func TestFilter_InvertIsComplement(t *testing.T) {
	re := regexp.MustCompile("def|xyz")
	opts := m.Options{NoFilename: true}

	matched := splitOutput(Filter(opts, re, sampleInput, "text"))
	opts.InvertMatch = true
	inverted := splitOutput(Filter(opts, re, sampleInput, "text"))

	assert.Len(t, append(matched, inverted...), 5)

	for _, line := range splitOutput(sampleInput) {
		inMatched := contains(matched, line)
		inInverted := contains(inverted, line)
		assert.NotEqual(t, inMatched, inInverted, "line %q must be in exactly one set", line)
		assert.Equal(t, re.MatchString(line), inMatched, "line %q", line)
	}
}

func TestFilter_NoFilenameNeverPrefixes(t *testing.T) {
	re := regexp.MustCompile("a")

	for _, invert := range []bool{false, true} {
		out := Filter(m.Options{NoFilename: true, InvertMatch: invert}, re, sampleInput, "LABEL")
		assert.NotContains(t, out, "LABEL:")
	}
}

func TestFilter_PrefixesEveryLine(t *testing.T) {
	re := regexp.MustCompile("def")

	out := Filter(m.Options{}, re, sampleInput, "dir/file.txt")
	for _, line := range splitOutput(out) {
		assert.True(t, strings.HasPrefix(line, "dir/file.txt:"), line)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	re := regexp.MustCompile("[aeiou]")
	opts := m.Options{InvertMatch: true}

	first := Filter(opts, re, sampleInput, "text")
	second := Filter(opts, re, sampleInput, "text")

	assert.Equal(t, first, second)
}

func TestFilter_EmptyContent(t *testing.T) {
	re := regexp.MustCompile("")

	for _, opts := range []m.Options{{}, {InvertMatch: true}, {NoFilename: true}, {NoFilename: true, InvertMatch: true}} {
		assert.Empty(t, Filter(opts, re, "", "text"))
	}
}

func TestFilter_LineSplitting(t *testing.T) {
	re := regexp.MustCompile("^")
	opts := m.Options{NoFilename: true}

	t.Run("missing final newline", func(t *testing.T) {
		assert.Equal(t, "one\ntwo\n", Filter(opts, re, "one\ntwo", "text"))
	})

	t.Run("trailing newline adds no empty line", func(t *testing.T) {
		assert.Equal(t, "one\n", Filter(opts, re, "one\n", "text"))
	})

	t.Run("blank lines are kept", func(t *testing.T) {
		assert.Equal(t, "one\n\ntwo\n", Filter(opts, re, "one\n\ntwo\n", "text"))
	})

	t.Run("crlf endings", func(t *testing.T) {
		assert.Equal(t, "one\ntwo\n", Filter(opts, re, "one\r\ntwo\r\n", "text"))
	})

	t.Run("lone newline is one empty line", func(t *testing.T) {
		empty := regexp.MustCompile("^$")
		assert.Equal(t, "text:\n", Filter(m.Options{}, empty, "\n", "text"))
	})
}

func TestFilterLine(t *testing.T) {
	re := regexp.MustCompile("abc")

	line, ok := FilterLine(m.Options{}, re, "abc def", m.StdinLabel)
	assert.True(t, ok)
	assert.Equal(t, "(stdin):abc def\n", line)

	_, ok = FilterLine(m.Options{}, re, "xyz", m.StdinLabel)
	assert.False(t, ok)

	line, ok = FilterLine(m.Options{InvertMatch: true, NoFilename: true}, re, "xyz", m.StdinLabel)
	assert.True(t, ok)
	assert.Equal(t, "xyz\n", line)
}

func TestCompilePattern(t *testing.T) {
	re, err := CompilePattern("^a.c$")
	require.NoError(t, err)
	assert.True(t, re.MatchString("abc"))

	_, err = CompilePattern("")
	require.ErrorIs(t, err, ErrMissingPattern)

	_, err = CompilePattern("a(b")
	require.ErrorIs(t, err, ErrInvalidPattern)
	assert.Contains(t, err.Error(), "missing closing )")
}

func splitOutput(out string) []string {
	var lines []string
	for line := range strings.Lines(out) {
		lines = append(lines, strings.TrimSuffix(line, "\n"))
	}

	return lines
}

func contains(lines []string, target string) bool {
	for _, line := range lines {
		if line == target {
			return true
		}
	}

	return false
}
