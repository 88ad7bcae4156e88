package pofile

import (
	"iter"
	"strings"
)

const (
	// keyMarker opens an entry: msgid followed by a quoted string.
	keyMarker = "msgid "
	// emptySlot is the canonical untranslated slot.
	emptySlot = `msgstr ""`
	// byteOrderMark may precede the first line of a UTF-8 catalog.
	byteOrderMark = "\ufeff"
)

// Candidate is an entry whose translation slot is empty.
type Candidate struct {
	// Key is the decoded msgid, continuation lines included.
	Key string
	// Line is the index of the msgid line.
	Line int
	// Slot is the index of the `msgstr ""` line.
	Slot int
}

// Scan returns the entries of lines that are immediately followed by an
// empty translation slot, in file order.
//
// The sequence is lazy and keeps no state between iterations; ranging over
// it again yields the same candidates. The header entry, entries that are
// already translated, plural entries and anything malformed are skipped
// without error.
func Scan(lines Lines) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for i := 0; i < len(lines); {
			c, next, ok := scanEntry(lines, i)
			if ok && !yield(c) {
				return
			}
			i = next
		}
	}
}

// CountEmpty returns the number of entries Scan would yield.
func CountEmpty(lines Lines) int {
	n := 0
	for range Scan(lines) {
		n++
	}
	return n
}

// scanEntry tries to read an entry starting at line i. It returns the
// index scanning should resume from; next is always greater than i.
func scanEntry(lines Lines, i int) (c Candidate, next int, ok bool) {
	text := strings.TrimSpace(lines.Text(i))
	if i == 0 {
		text = strings.TrimPrefix(text, byteOrderMark)
	}
	if !strings.HasPrefix(text, keyMarker+`"`) {
		return c, i + 1, false
	}
	raw, ok := fragment(text[len(keyMarker):])
	if !ok {
		return c, i + 1, false
	}

	var key strings.Builder
	key.WriteString(raw)

	j := i + 1
	for ; j < len(lines); j++ {
		part, ok := continuation(lines.Text(j))
		if !ok {
			break
		}
		key.WriteString(part)
	}

	if j >= len(lines) || strings.TrimSpace(lines.Text(j)) != emptySlot {
		return c, j, false
	}
	if !isEmptySlot(lines, j) {
		return c, j + 1, false
	}
	if key.Len() == 0 {
		// header
		return c, j + 1, false
	}

	return Candidate{Key: unescape(key.String()), Line: i, Slot: j}, j + 1, true
}

// isEmptySlot reports whether line j is a `msgstr ""` line that is not
// the start of a wrapped translation.
func isEmptySlot(lines Lines, j int) bool {
	if strings.TrimSpace(lines.Text(j)) != emptySlot {
		return false
	}
	if j+1 < len(lines) {
		if _, wrapped := continuation(lines.Text(j + 1)); wrapped {
			return false
		}
	}
	return true
}

// continuation reports whether s is a bare quoted string and returns its
// raw contents.
func continuation(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, `"`) {
		return "", false
	}
	return fragment(s)
}
