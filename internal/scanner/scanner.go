// Package scanner turns physical lines of delimited text into fields.
//
// Each line is scanned on its own with a two-state machine (unquoted and
// quoted). Quote state never carries across lines, so a field cannot contain
// a line terminator.
package scanner

import (
	"strings"

	"github.com/intel386dx/csv/internal/tokenizer"
)

// SplitLines splits a document into physical lines.
// "\r\n" and "\n" terminate a line; a lone '\r' does not.
// The empty document is one empty line.
func SplitLines(document string) []string {
	return strings.Split(strings.ReplaceAll(document, "\r\n", "\n"), "\n")
}

// Scan scans every line with the given delimiter, one row per line.
func Scan(lines []string, delim rune) [][]string {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, ScanLine(line, delim))
	}
	return rows
}

// ScanLine splits one physical line into fields.
//
// A quote opens a quoted field only at the start of the line or right after
// a delimiter. Inside a quoted field, "" is an escaped quote and a quote
// closes the field only when followed by a delimiter or the end of the line.
// Every other quote is literal. An unterminated quoted field keeps the text
// read so far. Field bytes are copied from line unchanged, valid UTF-8 or
// not. The result always holds at least one field.
func ScanLine(line string, delim rune) []string {
	tokens := tokenizer.Tokenize(line, tokenizer.Options{Delim: delim})

	fields := make([]string, 0, 8)
	var value strings.Builder
	quoted := false

	for i := 0; i < len(tokens); i++ {
		kind := tokens[i].Kind()

		if quoted {
			switch kind {
			case tokenizer.TokenDQuote:
				next := kindAt(tokens, i+1)
				switch next {
				case tokenizer.TokenDQuote:
					value.WriteByte('"')
					i++
				case "", tokenizer.TokenDelim:
					quoted = false
				default:
					value.WriteByte('"')
				}
			default:
				value.WriteString(tokens[i].Text)
			}
			continue
		}

		switch kind {
		case tokenizer.TokenDelim:
			fields = append(fields, value.String())
			value.Reset()
		case tokenizer.TokenDQuote:
			if prev := kindAt(tokens, i-1); prev == "" || prev == tokenizer.TokenDelim {
				quoted = true
			} else {
				value.WriteByte('"')
			}
		default:
			value.WriteString(tokens[i].Text)
		}
	}

	return append(fields, value.String())
}

// kindAt returns the kind of tokens[i], or "" outside the line.
func kindAt(tokens []tokenizer.Token, i int) string {
	if i < 0 || i >= len(tokens) {
		return ""
	}
	return tokens[i].Kind()
}
