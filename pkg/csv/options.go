// Package csv provides configurable options for parsing and stringifying.
package csv

import (
	"unicode/utf8"
)

// DefaultDelimiter is the implicit field delimiter of a document without a
// directive line.
const DefaultDelimiter = ','

// ReaderOptions configures parsing.
type ReaderOptions struct {
	// Comma is the fallback field delimiter, used when the document has no
	// directive line.
	// It must be a valid rune and not '"', \r, \n, or the Unicode replacement character (0xFFFD).
	// Default: ','
	Comma rune

	// IgnoreDirective turns off directive detection. A leading "Sep=;" line
	// is then parsed as ordinary data.
	// Default: false
	IgnoreDirective bool

	// OnDirective, if not nil, is called with the declared delimiter when a
	// directive line is consumed.
	OnDirective func(delim rune)
}

// DefaultReaderOptions returns the default reader configuration.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{
		Comma:           DefaultDelimiter,
		IgnoreDirective: false,
	}
}

// WriterOptions configures stringifying.
type WriterOptions struct {
	// Comma is the field delimiter. Any other value than ',' makes the
	// output start with a "Sep=<delimiter>" directive line.
	// Default: ','
	Comma rune

	// UseCRLF controls whether to use \r\n (true) or \n (false) as the line terminator.
	// Default: false (use \n)
	UseCRLF bool
}

// DefaultWriterOptions returns the default writer configuration.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{
		Comma:   DefaultDelimiter,
		UseCRLF: false,
	}
}

// lineTerminator returns the terminator placed between rows.
func (o WriterOptions) lineTerminator() string {
	if o.UseCRLF {
		return "\r\n"
	}
	return "\n"
}

// validDelim reports whether r is a valid field delimiter.
func validDelim(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Validate checks if the reader options are valid.
func (o ReaderOptions) Validate() error {
	if !validDelim(o.Comma) {
		return &OptionsError{Field: "Comma", Message: "invalid delimiter"}
	}
	return nil
}

// Validate checks if the writer options are valid.
func (o WriterOptions) Validate() error {
	if !validDelim(o.Comma) {
		return &OptionsError{Field: "Comma", Message: "invalid delimiter"}
	}
	return nil
}
