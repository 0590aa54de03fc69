package csv_test

import (
	"testing"

	"github.com/intel386dx/csv/pkg/csv"
)

func TestDefaultOptions(t *testing.T) {
	r := csv.DefaultReaderOptions()
	if r.Comma != ',' || r.IgnoreDirective || r.OnDirective != nil {
		t.Errorf("unexpected default reader options: %+v", r)
	}

	w := csv.DefaultWriterOptions()
	if w.Comma != ',' || w.UseCRLF {
		t.Errorf("unexpected default writer options: %+v", w)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		comma   rune
		wantErr bool
	}{
		{"comma", ',', false},
		{"semicolon", ';', false},
		{"tab", '\t', false},
		{"non-ASCII", '§', false},
		{"zero", 0, true},
		{"quote", '"', true},
		{"carriage return", '\r', true},
		{"line feed", '\n', true},
		{"replacement character", '\uFFFD', true},
		{"invalid rune", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rErr := csv.ReaderOptions{Comma: tt.comma}.Validate()
			wErr := csv.WriterOptions{Comma: tt.comma}.Validate()
			if (rErr != nil) != tt.wantErr {
				t.Errorf("ReaderOptions.Validate() error = %v, wantErr %v", rErr, tt.wantErr)
			}
			if (wErr != nil) != tt.wantErr {
				t.Errorf("WriterOptions.Validate() error = %v, wantErr %v", wErr, tt.wantErr)
			}
		})
	}
}
