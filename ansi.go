package indenter

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// ANSI escape sequence regex pattern - matches color codes, cursor movements, etc.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripColorCodes removes ANSI escape sequences from a string. It is used
// internally to measure marker widths and is handy for callers that tee
// colored output into a plain sink.
func StripColorCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// displayWidth reports the number of terminal cells s occupies once escape
// sequences are stripped.
func displayWidth(s string) int {
	return runewidth.StringWidth(StripColorCodes(s))
}
