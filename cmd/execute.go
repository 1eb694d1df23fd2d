// Package cmd is the analyzer's command-line front end.
package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"

	"cminor/report"
)

// Execute is the entry point for the `cminor` CLI utility.
func Execute() {
	cli := olive.NewCLI("cminor", "cminor analyzes cminor source files for semantic errors", true)

	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the console log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	cli.AddStringArg("outdir", "o", "directory to write *_log.txt and *_error.txt to", false)
	cli.AddStringArg("buckets", "b", "override the symbol table bucket count", false)
	cli.AddPrimaryArg("source-path", "the path to the cminor source file to analyze", true)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		os.Stdout.WriteString(err.Error() + "\n")
		return
	}

	sourcePath, ok := result.PrimaryArg()
	if !ok {
		os.Stdout.WriteString("missing source file path\n")
		return
	}

	loglevel, _ := result.Arguments["loglevel"].(string)
	outdir, _ := result.Arguments["outdir"].(string)
	buckets, _ := result.Arguments["buckets"].(string)

	opts := resolveOptions(sourcePath, loglevel, buckets, outdir)

	if err := run(opts); err != nil {
		report.Summary(1, 0)
		os.Stdout.WriteString(err.Error() + "\n")
	}
}
