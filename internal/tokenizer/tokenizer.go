package tokenizer

import (
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Delim is the field delimiter. Default: ','
	Delim rune
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Delim: ',',
	}
}

// NewTokenizerWithOptions creates a line tokenizer for the given delimiter.
//
// Matchers are tried in order:
// 1. Delimiter
// 2. Double quote
// 3. Field content (everything else, including a lone '\r')
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenDelim, string(opts.Delim)),
		tokenizer.StringMatcherFunc(TokenDQuote, `"`),
		FieldContentMatcherWithDelim(opts.Delim),
	)
}

// FieldContentMatcherWithDelim creates a matcher for field content with a custom delimiter.
// Matches runs of characters that are not the delimiter or a quote.
//
// Grammar:
//
//	Field = Character+ ;
//	Character = <any character except delimiter and quote> ;
func FieldContentMatcherWithDelim(delim rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if delim < 128 {
			if byteStream, ok := stream.(tokenizer.ByteStream); ok {
				return fieldContentMatcherByteWithDelim(byteStream, byte(delim))
			}
		}

		return fieldContentMatcherRuneWithDelim(stream, delim)
	}
}

// fieldContentMatcherByteWithDelim scans ASCII-delimited content straight from the byte stream.
func fieldContentMatcherByteWithDelim(stream tokenizer.ByteStream, delim byte) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || b == delim || b == '"' {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenField, []rune(string(value)))
}

func fieldContentMatcherRuneWithDelim(stream tokenizer.Stream, delim rune) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || r == delim || r == '"' {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenField, value)
}

// Token is a shape-core token paired with the exact bytes of the line it covers.
//
// The shape-core stream decodes its input to runes, so a byte that is not
// valid UTF-8 comes back from ValueString as U+FFFD. Text keeps the original
// bytes.
type Token struct {
	*tokenizer.Token
	Text string
}

// Tokenize returns every token of line in order.
// An empty line yields no tokens.
func Tokenize(line string, opts Options) []Token {
	tok := NewTokenizerWithOptions(opts)
	tok.Initialize(line)

	tokens := make([]Token, 0, 8)
	pos := 0
	for {
		token, ok := tok.NextToken()
		if !ok {
			break
		}
		end := advanceRunes(line, pos, utf8.RuneCountInString(token.ValueString()))
		tokens = append(tokens, Token{Token: token, Text: line[pos:end]})
		pos = end
	}
	return tokens
}

// advanceRunes returns the byte offset n runes after pos.
// Each invalid byte counts as one rune, as it does in a []rune conversion.
func advanceRunes(line string, pos, n int) int {
	for ; n > 0 && pos < len(line); n-- {
		_, size := utf8.DecodeRuneInString(line[pos:])
		pos += size
	}
	return pos
}
