// Package csv provides the in-memory table model.
package csv

// Row is an ordered sequence of unescaped fields.
type Row []string

// Table is an ordered sequence of rows. Rows may differ in length.
type Table []Row

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t)
}

// Width returns the number of fields in row i, or -1 if there is no such row.
func (t Table) Width(i int) int {
	if i < 0 || i >= len(t) {
		return -1
	}
	return len(t[i])
}

// Cell returns the field at row i, column j.
func (t Table) Cell(i, j int) (string, bool) {
	if i < 0 || i >= len(t) || j < 0 || j >= len(t[i]) {
		return "", false
	}
	return t[i][j], true
}

// Records returns the table as a plain [][]string sharing the same fields.
func (t Table) Records() [][]string {
	records := make([][]string, len(t))
	for i, row := range t {
		records[i] = row
	}
	return records
}

// FromRecords builds a Table from a plain [][]string.
func FromRecords(records [][]string) Table {
	if records == nil {
		return nil
	}
	t := make(Table, len(records))
	for i, record := range records {
		t[i] = record
	}
	return t
}
