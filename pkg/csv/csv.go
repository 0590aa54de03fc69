// Package csv converts between delimited text and an in-memory Table.
//
// A document is split into physical lines ("\r\n" and "\n" both terminate a
// line, a lone "\r" does not). If the first line is a directive such as
//
//	Sep=;
//
// it declares the delimiter for the whole document and is not returned as a
// row. Otherwise the configured delimiter applies, comma by default. Each
// remaining line becomes exactly one Row.
//
// Fields may be quoted to hold the delimiter, and a doubled quote inside a
// quoted field stands for one quote character. Malformed quoting is tolerated:
// stray quotes are kept literally and an unterminated quoted field keeps the
// rest of its line. Field bytes are returned as they appear in the document,
// whether or not they are valid UTF-8.
//
// # Known limitation
//
// Quote state is reset on every line, so a field can never contain a line
// terminator. A quoted field opened on one line does not continue on the next.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each call owns its accumulators; there is no shared mutable state.
//
// # Example
//
//	table, err := csv.Parse("name,job\nSteve,\"Quality Control, QA\"")
//	if err != nil {
//	    // handle error
//	}
//	// table is csv.Table{{"name", "job"}, {"Steve", "Quality Control, QA"}}
//
//	text, err := csv.StringifyWithOptions(table, csv.WriterOptions{Comma: ';'})
//	// text is "Sep=;\nname;job\nSteve;Quality Control, QA"
package csv

import (
	"fmt"
	"io"
	"reflect"

	"github.com/intel386dx/csv/internal/scanner"
	"github.com/shapestone/shape-core/pkg/ast"
)

// Parse parses a document with the default options.
//
// Example:
//
//	table, _ := csv.Parse("Sep=;\na;b;c")
//	// table is csv.Table{{"a", "b", "c"}}
func Parse(document string) (Table, error) {
	return ParseWithOptions(document, DefaultReaderOptions())
}

// ParseWithOptions parses a document with custom options.
//
// Example:
//
//	opts := csv.DefaultReaderOptions()
//	opts.Comma = '\t'
//	table, err := csv.ParseWithOptions("name\tage\nAlice\t30", opts)
func ParseWithOptions(document string, opts ReaderOptions) (Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	lines := scanner.SplitLines(document)
	res := Resolve(lines[0], opts)
	if res.Directive {
		lines = lines[1:]
		if opts.OnDirective != nil {
			opts.OnDirective(res.Delimiter)
		}
	}

	rows := scanner.Scan(lines, res.Delimiter)
	table := make(Table, len(rows))
	for i, row := range rows {
		table[i] = row
	}
	return table, nil
}

// ParseBytes parses a document held in a byte slice.
// A nil slice is an absent document and fails with ErrInvalidInput;
// an empty non-nil slice is the empty document.
func ParseBytes(data []byte) (Table, error) {
	if data == nil {
		return nil, invalidInput("parse", "no document")
	}
	return Parse(string(data))
}

// ParseReader reads the whole document from reader and parses it.
// A nil reader fails with ErrInvalidInput.
func ParseReader(reader io.Reader) (Table, error) {
	return ParseReaderWithOptions(reader, DefaultReaderOptions())
}

// ParseReaderWithOptions reads the whole document from reader and parses it
// with custom options.
func ParseReaderWithOptions(reader io.Reader, opts ReaderOptions) (Table, error) {
	if isNil(reader) {
		return nil, invalidInput("parse", "no reader")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("csv: read document: %w", err)
	}
	return ParseWithOptions(string(data), opts)
}

// ParseValue parses a document supplied as a string, []byte, io.Reader or
// fmt.Stringer. A nil value or any other type fails with ErrInvalidInput.
func ParseValue(v interface{}) (Table, error) {
	switch doc := v.(type) {
	case nil:
		return nil, invalidInput("parse", "no document")
	case string:
		return Parse(doc)
	case []byte:
		return ParseBytes(doc)
	case io.Reader:
		return ParseReader(doc)
	case fmt.Stringer:
		if isNil(doc) {
			return nil, invalidInput("parse", "no document")
		}
		return Parse(doc.String())
	default:
		return nil, invalidInput("parse", "unsupported document type %T", v)
	}
}

// isNil reports whether v is nil or an interface holding a nil pointer,
// map, slice, func or chan.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// ParseNode parses a document into Shape's AST.
//
// Returns an ast.ArrayDataNode representing the parsed document:
//   - *ast.ArrayDataNode for the document (array of rows)
//   - Each row is an *ast.ArrayDataNode of fields
//   - Each field is an *ast.LiteralNode containing a string value
func ParseNode(document string) (ast.SchemaNode, error) {
	table, err := Parse(document)
	if err != nil {
		return nil, err
	}
	return TableToNode(table), nil
}

// Format returns the format identifier for this codec.
func Format() string {
	return "CSV"
}
