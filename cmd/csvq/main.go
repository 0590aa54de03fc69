// Command csvq reads delimited text from a file or standard input and
// queries, converts, or renders it.
package main

import (
	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

// CLI represents the command-line interface
type CLI struct {
	Config  string     `help:"Configuration file path" default:"csvq.yaml"`
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Suppress notices" short:"q"`
	Get     GetCmd     `cmd:"" help:"Print the number of rows, the number of fields in a row, or a field"`
	Convert ConvertCmd `cmd:"" help:"Convert to another delimiter or line terminator"`
	HTML    HTMLCmd    `cmd:"" name:"html" help:"Render as an HTML table"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("csvq"),
		kong.Description("Query and convert CSV data. A first line such as \"Sep=;\" declares the delimiter."),
		kong.UsageOnError(),
	)

	sys := newStdIO()
	sys.ExitWith(run(ctx, &cli, sys))
}

// run executes the selected command and returns the exit code.
func run(ctx *kong.Context, cli *CLI, sys IO) int {
	config, err := LoadConfig(cli.Config)
	if err != nil {
		color.New(color.FgRed).Fprintf(color.Error, "Error: %v\n", err)
		return 1
	}

	appCtx := &Context{
		Config:  config,
		Verbose: cli.Verbose,
		Quiet:   cli.Quiet,
		IO:      sys,
	}

	if err := ctx.Run(appCtx); err != nil {
		color.New(color.FgRed).Fprintf(color.Error, "Error: %v\n", err)
		return 1
	}
	return 0
}
