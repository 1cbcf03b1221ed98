/*
Package indenter wraps an io.Writer so that every line written through it
is prefixed, no matter how the text is chunked across Write calls.

The wrapper is a small streaming state machine: it never buffers the
stream, it handles writes that stop and resume mid-line, and it swallows
leading whitespace-only content so the first prefix lands next to real
text. That makes it safe to drive from code that emits output piecemeal,
such as recursive formatters rendering one fragment at a time.

Typical use:

	w := indenter.New(&buf)
	fmt.Fprint(w, "verify\nthis")
	// buf holds "    verify\n    this"

	buf.Reset()
	w = indenter.NewNumbered(&buf, 2)
	fmt.Fprint(w, "verify\nthis")
	// buf holds "   2: verify\n      this"

Prefixes come from a Format: Uniform inserts a fixed marker, Numbered marks
the first line with an index and aligns the rest under its text, Hanging
does the same for an arbitrary marker, and Custom delegates to a caller
callback that may keep its own state.

A Writer assumes exclusive use of its sink and is not safe for concurrent
use. The errchain subpackage builds on this package to render wrapped-error
chains as numbered reports.
*/
package indenter
