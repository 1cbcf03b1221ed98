// Package errchain renders an error and its wrapped causes as a numbered,
// indented report:
//
//	Error:
//	   0: query users
//	   1: open db
//	   2: connection timed out
//
// Each level is written through a fresh numbered indenter.Writer over the
// same sink, so multi-line messages align under their own text and the
// report streams straight to the destination without intermediate
// buffering.
package errchain

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/fatih/color"

	"github.com/panyam/indenter"
)

// Option values adjust how a chain is rendered. They are applied in order;
// later options win where there is a conflict.
type Option struct{ apply func(*config) }

type config struct {
	heading string
	color   *color.Color
	output  Outputter
}

func newConfig(opt ...Option) config {
	c := config{heading: "Error:"}
	for _, o := range opt {
		o.apply(&c)
	}
	return c
}

// Heading replaces the "Error:" headline. An empty heading drops the
// headline entirely and the report starts at level 0.
func Heading(s string) Option {
	return Option{func(c *config) { c.heading = s }}
}

// Color renders the heading and the level numbers through col. The
// continuation padding is measured on the plain header, so coloring never
// disturbs alignment.
func Color(col *color.Color) Option {
	return Option{func(c *config) { c.color = col }}
}

// Outputter accepts log output. It is satisfied by *log.Logger.
type Outputter interface {
	Output(calldepth int, s string) error
}

// Logger sets the destination used by Log. It has no effect on Fprint or
// String.
func Logger(out Outputter) Option {
	return Option{func(c *config) { c.output = out }}
}

// Fprint writes err's headline and numbered cause chain to w. Levels follow
// errors.Unwrap from the outermost error inward; a wrapper that contributes
// no text of its own is skipped. The first write failure aborts the report
// and is returned as is. A nil err writes nothing.
func Fprint(w io.Writer, err error, opt ...Option) error {
	if err == nil {
		return nil
	}
	c := newConfig(opt...)

	wrote := false
	if c.heading != "" {
		if _, err := io.WriteString(w, c.sprint(c.heading)); err != nil {
			return err
		}
		wrote = true
	}
	for n, msg := range levels(err) {
		if wrote {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		wrote = true
		iw := indenter.NewNumbered(w, n)
		if c.color != nil {
			iw.WithFormat(c.coloredNumber(n))
		}
		if _, err := iw.Write([]byte(msg)); err != nil {
			return err
		}
	}
	return nil
}

// String renders err's chain to a string.
func String(err error, opt ...Option) string {
	var sb strings.Builder
	Fprint(&sb, err, opt...)
	return sb.String()
}

// Log renders err's chain and sends it to the configured Outputter,
// log.Default() unless overridden with Logger. A nil err logs nothing.
func Log(err error, opt ...Option) {
	if err == nil {
		return
	}
	out := newConfig(opt...).output
	if out == nil {
		out = log.Default()
	}
	out.Output(2, String(err, opt...))
}

// coloredNumber builds the colored counterpart of indenter.Numbered(n): the
// header goes through the configured color, the padding stays plain and
// matches the uncolored header's width.
func (c *config) coloredNumber(n int) indenter.Format {
	header := fmt.Sprintf("%4d: ", n)
	padding := strings.Repeat(" ", len(header))
	col := c.color
	return indenter.Custom(func(w io.Writer, line int) error {
		if line == 0 {
			_, err := io.WriteString(w, col.Sprint(header))
			return err
		}
		_, err := io.WriteString(w, padding)
		return err
	})
}

func (c *config) sprint(s string) string {
	if c.color == nil {
		return s
	}
	return c.color.Sprint(s)
}

// levels returns the message contributed by each error in err's Unwrap
// chain, outermost first. An error's own message is its Error() text minus
// the conventional ": <cause>" suffix; wrappers whose message is exactly
// their cause's are dropped. Multi-error nodes are not traversed and render
// as a single level.
func levels(err error) []string {
	var msgs []string
	for ; err != nil; err = errors.Unwrap(err) {
		if msg := selfMessage(err); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

func selfMessage(err error) string {
	msg := err.Error()
	cause := errors.Unwrap(err)
	if cause == nil {
		return msg
	}
	if before, ok := strings.CutSuffix(msg, cause.Error()); ok {
		return strings.TrimSuffix(before, ": ")
	}
	return msg
}
