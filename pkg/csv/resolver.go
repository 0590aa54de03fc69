// Package csv provides delimiter resolution from the directive line.
package csv

import (
	"regexp"
	"unicode/utf8"
)

// directivePattern matches a whole "Sep=<char>" line, keyword case-insensitive.
var directivePattern = regexp.MustCompile(`(?i)^sep=(.)$`)

// Resolution is the outcome of delimiter resolution for one document.
type Resolution struct {
	// Delimiter applies to every data line of the document.
	Delimiter rune
	// Directive reports whether the first line was a directive. A directive
	// line is consumed and never appears as a data row.
	Directive bool
}

// Resolve determines the delimiter of a document from its first physical
// line. A line of the form "Sep=<char>" declares the delimiter; anything else,
// including a directive naming an invalid delimiter such as '"', falls back
// to opts.Comma. Resolve never fails.
func Resolve(firstLine string, opts ReaderOptions) Resolution {
	if !opts.IgnoreDirective {
		if delim, ok := parseDirective(firstLine); ok {
			return Resolution{Delimiter: delim, Directive: true}
		}
	}
	return Resolution{Delimiter: opts.Comma}
}

// parseDirective returns the delimiter declared by a directive line.
func parseDirective(line string) (rune, bool) {
	m := directivePattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(m[1])
	if !validDelim(r) {
		return 0, false
	}
	return r, true
}

// DirectiveLine renders the directive line declaring delim.
func DirectiveLine(delim rune) string {
	return "Sep=" + string(delim)
}
