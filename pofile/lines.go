// Package pofile locates untranslated entries in gettext PO files and fills
// them in place.
//
// The package works on physical lines rather than on a parsed catalog: a
// file is read into a Lines buffer, Scan finds entries whose translation
// slot is the empty `msgstr ""`, and Rewrite replaces those slot lines with
// translations. Nothing else in the file is touched, so comments, wrapping,
// ordering and line endings survive byte for byte.
package pofile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Lines is a catalog held in memory as physical lines. Each element keeps
// its own terminator ("\n", "\r\n", or nothing for an unterminated last
// line) so that Bytes reproduces the original content exactly.
type Lines []string

// SplitLines splits data into lines, keeping line terminators.
func SplitLines(data []byte) Lines {
	if len(data) == 0 {
		return Lines{}
	}
	return Lines(strings.SplitAfter(string(data), "\n")).trimTail()
}

// trimTail drops the empty element SplitAfter produces after a final "\n".
func (l Lines) trimTail() Lines {
	if n := len(l); n > 0 && l[n-1] == "" {
		return l[:n-1]
	}
	return l
}

// Bytes joins the lines back into file content.
func (l Lines) Bytes() []byte {
	var buf bytes.Buffer
	for _, s := range l {
		buf.WriteString(s)
	}
	return buf.Bytes()
}

// Text returns line i without its terminator.
func (l Lines) Text(i int) string {
	s, _ := cutTerminator(l[i])
	return s
}

// cutTerminator splits a physical line into its text and terminator.
func cutTerminator(s string) (text, eol string) {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2], "\r\n"
	case strings.HasSuffix(s, "\n"):
		return s[:len(s)-1], "\n"
	}
	return s, ""
}

// ReadLines reads a whole catalog file into memory.
func ReadLines(path string) (Lines, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return SplitLines(data), nil
}

// WriteLines replaces the file at path with lines. The content goes to a
// temporary file in the same directory which is then renamed over path, so
// readers never observe a half-written catalog.
func WriteLines(path string, lines Lines) error {
	if err := atomic.WriteFile(path, bytes.NewReader(lines.Bytes())); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
