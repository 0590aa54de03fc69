// Package csv provides conversion between tables and Shape AST nodes.
package csv

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// TableToNode converts a table to Shape's AST.
//
//   - Table → *ast.ArrayDataNode (array of rows)
//   - Row → *ast.ArrayDataNode (array of fields)
//   - field → *ast.LiteralNode with a string value
//
// Example:
//
//	node := csv.TableToNode(csv.Table{{"name", "age"}, {"Alice", "30"}})
func TableToNode(table Table) ast.SchemaNode {
	pos := ast.ZeroPosition()

	rows := make([]ast.SchemaNode, len(table))
	for i, row := range table {
		fields := make([]ast.SchemaNode, len(row))
		for j, field := range row {
			fields[j] = ast.NewLiteralNode(field, pos)
		}
		rows[i] = ast.NewArrayDataNode(fields, pos)
	}
	return ast.NewArrayDataNode(rows, pos)
}

// NodeToTable converts an AST node back to a table.
//
// The node must be an *ast.ArrayDataNode of *ast.ArrayDataNode rows whose
// elements are *ast.LiteralNode fields. Non-string literal values are
// formatted with %v and nil values become empty fields. Any other shape fails
// with ErrInvalidInput.
//
// Example:
//
//	node, _ := csv.ParseNode("name,age\nAlice,30")
//	table, _ := csv.NodeToTable(node)
//	// table is csv.Table{{"name", "age"}, {"Alice", "30"}}
func NodeToTable(node ast.SchemaNode) (Table, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok || arr == nil {
		return nil, invalidInput("stringify", "%T is not a table node", node)
	}

	elements := arr.Elements()
	table := make(Table, len(elements))
	for i, elem := range elements {
		rowNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, invalidInput("stringify", "row %d: %T is not a row node", i, elem)
		}

		fields := rowNode.Elements()
		row := make(Row, len(fields))
		for j, f := range fields {
			lit, ok := f.(*ast.LiteralNode)
			if !ok {
				return nil, invalidInput("stringify", "row %d field %d: %T is not a literal node", i, j, f)
			}
			row[j] = literalString(lit)
		}
		table[i] = row
	}
	return table, nil
}

// literalString returns the field text of a literal node.
func literalString(lit *ast.LiteralNode) string {
	switch v := lit.Value().(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
