package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/intel386dx/csv/pkg/csv"
)

// Context represents the global context for commands
type Context struct {
	Config  *Config
	Verbose bool
	Quiet   bool
	IO      IO
}

// notice prints a progress message on standard error in verbose mode.
func (ctx *Context) notice(format string, args ...interface{}) {
	if ctx.Verbose && !ctx.Quiet {
		color.New(color.FgCyan).Fprintf(color.Error, format+"\n", args...)
	}
}

// readTable reads and parses the named input.
// delimiter overrides the configured fallback delimiter when not empty.
func (ctx *Context) readTable(name, delimiter string) (csv.Table, error) {
	if delimiter == "" {
		delimiter = ctx.Config.Delimiter
	}
	comma, err := parseDelimiter(delimiter)
	if err != nil {
		return nil, err
	}

	text, err := ctx.IO.ReadAllText(name)
	if err != nil {
		return nil, err
	}

	opts := csv.DefaultReaderOptions()
	opts.Comma = comma
	opts.OnDirective = func(delim rune) {
		ctx.notice("New delimiter: %q", delim)
	}
	return csv.ParseWithOptions(text, opts)
}

func describeInput(name string) string {
	if name == "-" {
		return "standard input"
	}
	return "the file " + name
}

// GetCmd prints the row count, the field count of a row, or a single field.
type GetCmd struct {
	File      string `arg:"" help:"CSV file to read, or - for standard input"`
	Row       int    `arg:"" optional:"" default:"-1" help:"Row index (from 0). If omitted, prints the number of rows"`
	Column    int    `arg:"" optional:"" default:"-1" help:"Column index (from 0). If omitted, prints the number of fields in the row"`
	Delimiter string `short:"d" help:"Delimiter used when the input has no Sep= line"`
}

// Run executes the get command
func (cmd *GetCmd) Run(ctx *Context) error {
	ctx.notice("Getting data at row %d column %d from %s...", cmd.Row, cmd.Column, describeInput(cmd.File))

	table, err := ctx.readTable(cmd.File, cmd.Delimiter)
	if err != nil {
		return err
	}

	if cmd.Row < 0 {
		return ctx.IO.WriteLine(strconv.Itoa(table.Len()))
	}

	width := table.Width(cmd.Row)
	if width < 0 {
		return fmt.Errorf("%w: %d (rows: %d)", ErrRowOutOfRange, cmd.Row, table.Len())
	}
	if cmd.Column < 0 {
		return ctx.IO.WriteLine(strconv.Itoa(width))
	}

	value, ok := table.Cell(cmd.Row, cmd.Column)
	if !ok {
		return fmt.Errorf("%w: %d (fields in row %d: %d)", ErrColumnOutOfRange, cmd.Column, cmd.Row, width)
	}
	return ctx.IO.WriteLine(value)
}

// ConvertCmd re-renders the input with another delimiter or line terminator.
type ConvertCmd struct {
	File      string `arg:"" help:"CSV file to read, or - for standard input"`
	Input     string `short:"i" help:"Delimiter used when the input has no Sep= line"`
	Delimiter string `short:"d" help:"Output delimiter (default from config)"`
	CRLF      bool   `help:"Use \\r\\n line terminators"`
}

// Run executes the convert command
func (cmd *ConvertCmd) Run(ctx *Context) error {
	table, err := ctx.readTable(cmd.File, cmd.Input)
	if err != nil {
		return err
	}

	delimiter := cmd.Delimiter
	if delimiter == "" {
		delimiter = ctx.Config.Delimiter
	}
	comma, err := parseDelimiter(delimiter)
	if err != nil {
		return err
	}

	crlf := cmd.CRLF || ctx.Config.CRLF
	text, err := csv.StringifyWithOptions(table, csv.WriterOptions{
		Comma:   comma,
		UseCRLF: crlf,
	})
	if err != nil {
		return err
	}

	// The output ends with the same terminator that joins its rows.
	terminator := "\n"
	if crlf {
		terminator = "\r\n"
	}
	return ctx.IO.WriteText(text + terminator)
}

// HTMLCmd renders the input as an HTML table.
type HTMLCmd struct {
	File      string `arg:"" help:"CSV file to read, or - for standard input"`
	Header    bool   `help:"Render the first row as header cells"`
	Delimiter string `short:"d" help:"Delimiter used when the input has no Sep= line"`
}

// Run executes the html command
func (cmd *HTMLCmd) Run(ctx *Context) error {
	table, err := ctx.readTable(cmd.File, cmd.Delimiter)
	if err != nil {
		return err
	}
	return ctx.IO.WriteLine(csv.ToHTMLTable(table, cmd.Header || ctx.Config.Header))
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	return ctx.IO.WriteLine("csvq v0.1.0")
}
