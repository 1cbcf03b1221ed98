package indenter

import (
	"fmt"
	"io"
	"strings"
)

// Format decides the text a Writer inserts before each line it emits. The
// set of formats is closed; Custom is the extension point for callers that
// need anything beyond the built-in ones.
type Format interface {
	// insert writes the prefix for line, the 0-based count of lines the
	// Writer has prefixed so far.
	insert(w io.Writer, line int) error
}

// Uniform returns a Format that inserts indentation verbatim before every
// line.
func Uniform(indentation string) Format {
	return uniformFormat(indentation)
}

type uniformFormat string

func (f uniformFormat) insert(w io.Writer, line int) error {
	_, err := io.WriteString(w, string(f))
	return err
}

// Numbered returns a Format that marks the first line with ind, rendered
// right-aligned in a 4-wide field and followed by ": ". Every subsequent
// line is padded with spaces matching the header's width, so wrapped lines
// align under the text rather than under the number. Indices too wide for
// the field widen the header and the padding together.
func Numbered(ind int) Format {
	return Hanging(fmt.Sprintf("%4d: ", ind))
}

// Hanging returns a Format that inserts marker before the first line and a
// blank run of the same display width before every subsequent line. The
// width is measured in terminal cells: ANSI escape sequences in marker
// contribute nothing and East Asian wide runes contribute two, so colored
// or wide markers still align their continuation lines correctly.
func Hanging(marker string) Format {
	return hangingFormat{
		first: marker,
		rest:  strings.Repeat(" ", displayWidth(marker)),
	}
}

type hangingFormat struct {
	first string
	rest  string
}

func (f hangingFormat) insert(w io.Writer, line int) error {
	s := f.rest
	if line == 0 {
		s = f.first
	}
	_, err := io.WriteString(w, s)
	return err
}

// Custom returns a Format that delegates prefix writing to insert, which
// receives the sink and the 0-based line number. The callback may close
// over mutable state of its own; an error it returns aborts the surrounding
// Write exactly like a sink failure.
func Custom(insert func(w io.Writer, line int) error) Format {
	return customFormat{insert}
}

type customFormat struct {
	fn func(w io.Writer, line int) error
}

func (f customFormat) insert(w io.Writer, line int) error {
	return f.fn(w, line)
}
