package csv_test

import (
	"testing"

	"github.com/intel386dx/csv/pkg/csv"
)

func TestToHTMLTable(t *testing.T) {
	table := csv.Table{
		{"Name", "Job"},
		{"Steve", "Quality Control"},
	}

	tests := []struct {
		name   string
		table  csv.Table
		header bool
		want   string
	}{
		{
			name:   "with header",
			table:  table,
			header: true,
			want:   "<table><tr><th>Name</th><th>Job</th></tr><tr><td>Steve</td><td>Quality Control</td></tr></table>",
		},
		{
			name:   "without header",
			table:  table,
			header: false,
			want:   "<table><tr><td>Name</td><td>Job</td></tr><tr><td>Steve</td><td>Quality Control</td></tr></table>",
		},
		{
			name:   "no escaping",
			table:  csv.Table{{"<b>&</b>"}},
			header: false,
			want:   "<table><tr><td><b>&</b></td></tr></table>",
		},
		{
			name:   "empty table",
			table:  csv.Table{},
			header: true,
			want:   "<table></table>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := csv.ToHTMLTable(tt.table, tt.header); got != tt.want {
				t.Errorf("ToHTMLTable() = %q, want %q", got, tt.want)
			}
		})
	}
}
