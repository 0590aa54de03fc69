// Package csv provides rendering of tables and AST nodes to delimited text.
package csv

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Stringify renders a table with a comma delimiter and "\n" line terminators.
//
// Example:
//
//	text, _ := csv.Stringify(csv.Table{{"a", "b,b", "c"}})
//	// text is `a,"b,b",c`
func Stringify(table Table) (string, error) {
	return StringifyWithOptions(table, DefaultWriterOptions())
}

// StringifyWithOptions renders a table with custom options.
//
// Rendering handles:
//   - Quoting of fields containing the delimiter, quotes, or line breaks
//   - Escaping of quotes (doubled) inside quoted fields
//   - A leading "Sep=<delimiter>" directive line for a non-comma delimiter
//   - No trailing line terminator
//
// A nil table fails with ErrInvalidInput. An empty non-nil table renders as
// the empty string, or as the directive line alone.
func StringifyWithOptions(table Table, opts WriterOptions) (string, error) {
	if table == nil {
		return "", invalidInput("stringify", "no table")
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	terminator := opts.lineTerminator()
	wrote := false

	if opts.Comma != DefaultDelimiter {
		sb.WriteString(DirectiveLine(opts.Comma))
		wrote = true
	}

	for i, row := range table {
		if wrote {
			sb.WriteString(terminator)
		}
		if i == 0 && !wrote {
			sb.WriteString(firstRow(row, opts.Comma))
		} else {
			writeRow(&sb, row, opts.Comma)
		}
		wrote = true
	}

	return sb.String(), nil
}

// StringifyValue renders any tabular value with custom options.
//
// Accepted values are Table, [][]string, []Row, [][]interface{} (each field
// rendered with fmt.Sprint) and ast.SchemaNode as produced by ParseNode.
// nil and every other type fail with ErrInvalidInput.
func StringifyValue(v interface{}, opts WriterOptions) (string, error) {
	table, err := toTable(v)
	if err != nil {
		return "", err
	}
	return StringifyWithOptions(table, opts)
}

func toTable(v interface{}) (Table, error) {
	switch val := v.(type) {
	case nil:
		return nil, invalidInput("stringify", "no table")
	case Table:
		return val, nil
	case []Row:
		return Table(val), nil
	case [][]string:
		if val == nil {
			return nil, invalidInput("stringify", "no table")
		}
		return FromRecords(val), nil
	case [][]interface{}:
		if val == nil {
			return nil, invalidInput("stringify", "no table")
		}
		table := make(Table, len(val))
		for i, row := range val {
			table[i] = make(Row, len(row))
			for j, field := range row {
				if field != nil {
					table[i][j] = fmt.Sprint(field)
				}
			}
		}
		return table, nil
	case ast.SchemaNode:
		return NodeToTable(val)
	default:
		return nil, invalidInput("stringify", "%T is not tabular", v)
	}
}

// writeRow writes the fields of one row joined by delim.
func writeRow(sb *strings.Builder, row Row, delim rune) {
	for i, field := range row {
		if i > 0 {
			sb.WriteRune(delim)
		}
		writeField(sb, field, delim)
	}
}

// firstRow renders the first line of a document without a directive line.
// If it would read back as a directive, its first field is quoted.
func firstRow(row Row, delim rune) string {
	var sb strings.Builder
	writeRow(&sb, row, delim)
	line := sb.String()
	if _, ok := parseDirective(line); !ok || len(row) == 0 {
		return line
	}

	sb.Reset()
	writeQuotedField(&sb, row[0])
	for _, field := range row[1:] {
		sb.WriteRune(delim)
		writeField(&sb, field, delim)
	}
	return sb.String()
}

// writeField writes a field, quoting it when needed.
func writeField(sb *strings.Builder, value string, delim rune) {
	if needsQuoting(value, delim) {
		writeQuotedField(sb, value)
		return
	}
	sb.WriteString(value)
}

// needsQuoting reports whether a field contains the delimiter, a quote,
// or a line break.
func needsQuoting(value string, delim rune) bool {
	return strings.ContainsRune(value, delim) || strings.ContainsAny(value, "\"\r\n")
}

// writeQuotedField wraps a field in quotes, doubling embedded quotes.
func writeQuotedField(sb *strings.Builder, value string) {
	sb.WriteByte('"')
	sb.WriteString(strings.ReplaceAll(value, `"`, `""`))
	sb.WriteByte('"')
}

// Render converts an AST node to delimited text bytes with the default options.
//
// The node should be the result of ParseNode or TableToNode.
func Render(node ast.SchemaNode) ([]byte, error) {
	return RenderWithOptions(node, DefaultWriterOptions())
}

// RenderWithOptions converts an AST node to delimited text bytes with custom options.
//
// Example:
//
//	opts := csv.DefaultWriterOptions()
//	opts.Comma = '\t'
//	opts.UseCRLF = true
//	bytes, err := csv.RenderWithOptions(node, opts)
func RenderWithOptions(node ast.SchemaNode, opts WriterOptions) ([]byte, error) {
	table, err := NodeToTable(node)
	if err != nil {
		return nil, err
	}
	text, err := StringifyWithOptions(table, opts)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}
