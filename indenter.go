package indenter

import (
	"bytes"
	"io"
	"unicode"
)

var newline = []byte{'\n'}

// Writer is an io.Writer that re-splits whatever is written through it on
// line boundaries and inserts the active Format's prefix at the start of
// every line, except for pieces that continue a line begun by an earlier
// Write call. Chunks may be of any size and may begin or end mid-line; the
// Writer keeps the necessary state across calls. Chunks must be UTF-8 text,
// and a chunk boundary must not split a multi-byte rune: leading-whitespace
// absorption decodes runes within the chunk at hand.
//
// Until the first real text arrives, whitespace-only content is absorbed
// without producing any output, even across multiple calls, so the first
// prefix always lines up with actual text.
//
// A Writer holds its sink for its whole lifetime and is not safe for
// concurrent use. While a Writer is in use nothing else should write to its
// sink: interleaved writes would corrupt the line-start tracking.
type Writer struct {
	writer  io.Writer
	started bool
	line    int
	format  Format
}

// New wraps w with the default format, a uniform 4-space indentation.
func New(w io.Writer) *Writer {
	return &Writer{writer: w, format: Uniform("    ")}
}

// NewNumbered wraps w with a Numbered format: the first emitted line is
// marked with the index ind and subsequent lines align under its text.
func NewNumbered(w io.Writer, ind int) *Writer {
	return &Writer{writer: w, format: Numbered(ind)}
}

// WithFormat replaces the active format and returns w for chaining.
// Replacing the format after output has started takes effect at the next
// prefix emission; prefixes and padding already written are not revisited,
// so swapping formats mid-stream is the caller's own alignment problem.
func (w *Writer) WithFormat(format Format) *Writer {
	w.format = format
	return w
}

// Write implements io.Writer.
//
// The returned count covers consumed input bytes only: absorbed leading
// whitespace counts as consumed, injected prefixes and newlines never do,
// and on success n == len(p). The first sink or format failure aborts the
// call and is returned as is; whatever partial output the earlier sub-writes
// produced stays in the sink.
func (w *Writer) Write(p []byte) (n int, err error) {
	pieces := bytes.Split(p, newline)
	for i, piece := range pieces {
		if i > 0 {
			// A '\n' sits between the previous piece and this one. It is
			// only forwarded once output has started; before that it is
			// part of the leading blank run being absorbed.
			if w.started {
				if _, err := w.writer.Write(newline); err != nil {
					return n, err
				}
			}
			n++
		}
		if !w.started {
			trimmed := bytes.TrimLeftFunc(piece, unicode.IsSpace)
			if len(trimmed) == 0 {
				n += len(piece)
				continue
			}
			w.started = true
			if err := w.insertPrefix(); err != nil {
				return n, err
			}
			n += len(piece) - len(trimmed)
			m, err := w.writer.Write(trimmed)
			n += m
			if err != nil {
				return n, err
			}
			continue
		}
		if i > 0 {
			// This piece begins a fresh line, even when it is empty: a bare
			// "\n\n" after output has started still produces a prefixed
			// blank line.
			if err := w.insertPrefix(); err != nil {
				return n, err
			}
		}
		if len(piece) > 0 {
			m, err := w.writer.Write(piece)
			n += m
			if err != nil {
				return n, err
			}
		}
	}
	return n, nil
}

// insertPrefix emits the prefix for the current line and advances the line
// counter. The counter is global across Write calls: formats observe
// 0, 1, 2, ... with no repeats and no gaps, and absorbed leading blanks are
// never counted.
func (w *Writer) insertPrefix() error {
	if err := w.format.insert(w.writer, w.line); err != nil {
		return err
	}
	w.line++
	return nil
}
