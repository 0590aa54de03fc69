package scanner

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty document", "", []string{""}},
		{"single line", "a,b", []string{"a,b"}},
		{"LF", "a\nb", []string{"a", "b"}},
		{"CRLF", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"mixed terminators", "a\r\nb\nc", []string{"a", "b", "c"}},
		{"lone CR is not a terminator", "a\rb", []string{"a\rb"}},
		{"trailing terminator yields empty line", "a\n", []string{"a", ""}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestScanLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim rune
		want  []string
	}{
		{"empty line", "", ',', []string{""}},
		{"simple", "a,b,c", ',', []string{"a", "b", "c"}},
		{"empty fields", ",,", ',', []string{"", "", ""}},
		{"trailing delimiter", "a,b,", ',', []string{"a", "b", ""}},
		{"quoted delimiter", `a,"b,b",c`, ',', []string{"a", "b,b", "c"}},
		{"doubled quote", `a,"b""B""b",c`, ',', []string{"a", `b"B"b`, "c"}},
		{"empty quoted field", `"",x`, ',', []string{"", "x"}},
		{"only escaped quote", `""""`, ',', []string{`"`}},
		{"quote inside unquoted field", `ab"c,d`, ',', []string{`ab"c`, "d"}},
		{"doubled quote inside unquoted field", `a""b`, ',', []string{`a""b`}},
		{"stray quote inside quoted field", `"a"b",c`, ',', []string{`a"b`, "c"}},
		{"unterminated quote keeps text", `a,"b,c`, ',', []string{"a", "b,c"}},
		{"unterminated after escape", `"a""`, ',', []string{`a"`}},
		{"lone quote", `"`, ',', []string{""}},
		{"whitespace preserved", ` a , b `, ',', []string{" a ", " b "}},
		{"quote after leading space is literal", ` "a"`, ',', []string{` "a"`}},
		{"lone CR is content", "a\rb,c", ',', []string{"a\rb", "c"}},
		{"semicolon delimiter", "a;b;c", ';', []string{"a", "b", "c"}},
		{"comma is content with semicolon", "a,b;c", ';', []string{"a,b", "c"}},
		{"quoted semicolon", `a;"b;b";c`, ';', []string{"a", "b;b", "c"}},
		{"caret delimiter", `a^"b""B""b,b"^c"c;c`, '^', []string{"a", `b"B"b,b`, `c"c;c`}},
		{"tab delimiter", "a\t\"b\tc\"", '\t', []string{"a", "b\tc"}},
		{"invalid UTF-8 kept", "a\xff,\"b\xfe,c\"", ',', []string{"a\xff", "b\xfe,c"}},
		{"invalid UTF-8 with non-ASCII delimiter", "\xe2\x82§x", '§', []string{"\xe2\x82", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanLine(tt.line, tt.delim)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ScanLine(%q, %q) = %q, want %q", tt.line, tt.delim, got, tt.want)
			}
		})
	}
}

// TestScan_LinesAreIndependent tests that an open quote does not leak into the next line.
func TestScan_LinesAreIndependent(t *testing.T) {
	got := Scan(SplitLines("\"a,b\nc,d"), ',')
	want := [][]string{{"a,b"}, {"c", "d"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %q, want %q", got, want)
	}
}

func TestScan_OneRowPerLine(t *testing.T) {
	lines := SplitLines("a\n\n\"x\n")
	rows := Scan(lines, ',')
	if len(rows) != len(lines) {
		t.Fatalf("expected %d rows, got %d", len(lines), len(rows))
	}
	for i, row := range rows {
		if len(row) == 0 {
			t.Errorf("row %d has no fields", i)
		}
	}
}
