// Package tokenizer splits a single physical line of delimited text into
// character-level tokens using Shape's tokenizer framework.
package tokenizer

// Token type constants for one physical line.
//
// Lines never contain a line terminator, so there is no newline token. The
// scanner decides which quotes open or close a field; the tokenizer only
// reports where they are.
const (
	// Structural tokens
	TokenDelim  = "Delim"  // the active field delimiter
	TokenDQuote = "DQuote" // " (quote character)

	// Field content token
	TokenField = "Field" // run of characters that are neither delimiter nor quote
)
