package pofile

import (
	"iter"
	"slices"
	"strings"
)

// LookupFunc returns the translation for a source string, if any.
type LookupFunc func(key string) (string, bool)

// Result counts what a rewrite did.
type Result struct {
	// Filled is the number of empty slots that received a translation.
	Filled int
	// Skipped is the number of empty slots left as they were.
	Skipped int
}

// Add accumulates other into r.
func (r *Result) Add(other Result) {
	r.Filled += other.Filled
	r.Skipped += other.Skipped
}

// Total returns the number of candidates that were looked up.
func (r Result) Total() int {
	return r.Filled + r.Skipped
}

// Rewrite fills the slots of candidates using lookup and returns the
// updated lines. The input is not modified.
//
// A slot is filled when lookup returns a non-empty value that differs from
// the key; otherwise it is counted as skipped. Candidates whose slot is
// out of range or no longer empty are ignored and not counted. Only filled
// slot lines change, and each keeps its indentation and line terminator.
func Rewrite(lines Lines, candidates iter.Seq[Candidate], lookup LookupFunc) (Lines, Result) {
	out := slices.Clone(lines)
	var res Result

	for c := range candidates {
		if c.Slot < 0 || c.Slot >= len(lines) || !isEmptySlot(out, c.Slot) {
			continue
		}
		value, ok := lookup(c.Key)
		if !ok || value == "" || value == c.Key {
			res.Skipped++
			continue
		}
		out[c.Slot] = slotLine(out[c.Slot], value)
		res.Filled++
	}

	return out, res
}

// slotLine builds a filled `msgstr` line in place of orig.
func slotLine(orig, value string) string {
	text, eol := cutTerminator(orig)
	indent := text[:len(text)-len(strings.TrimLeft(text, " \t"))]
	return indent + "msgstr " + Quote(value) + eol
}
