// Package main provides the CLI entry point for copytext-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/copytext-go/internal/config"
	"github.com/ukaji3/copytext-go/internal/logging"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "copytext [input.xlsx | -]",
		Short: "Convert spreadsheet sheets into JSON or YAML data",
		Long: `copytext converts every sheet of a workbook into plain data.
Key-value sheets become objects, table sheets become lists of row objects.
Use "-" to read the workbook from stdin.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(f.logLevel, f.logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0])
		},
	}

	pfs := rootCmd.PersistentFlags()
	pfs.StringVarP(&f.processor, "processor", "p", cfg.Process.Processor, "Default sheet processor")
	pfs.StringVar(&f.logLevel, "log-level", cfg.Logging.Level, "Log level: debug, info, warn, error")
	pfs.StringVar(&f.logFormat, "log-format", cfg.Logging.Format, "Log format: text, json")

	fs := rootCmd.Flags()
	fs.StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	fs.BoolVar(&f.pretty, "pretty", cfg.Output.Pretty, "Pretty-print JSON output")
	fs.StringVar(&f.format, "format", cfg.Output.Format, "Output format: json, yaml")
	fs.StringVar(&f.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	fs.StringToStringVar(&f.overrides, "override", nil, "Per-sheet processor, e.g. --override CORGI=table")
	fs.StringSliceVar(&f.include, "include", cfg.Process.Include, "Only process these sheets")
	fs.StringSliceVar(&f.exclude, "exclude", cfg.Process.Exclude, "Skip these sheets")
	fs.StringVar(&f.includeExpr, "include-expr", "", `Only process sheets matching an expression, e.g. 'name startsWith "CORGI"'`)
	fs.StringVar(&f.excludeExpr, "exclude-expr", "", "Skip sheets matching an expression")
	fs.BoolVar(&f.printArea, "print-area", cfg.Process.PrintArea, "Limit each sheet to its print area when one is defined")
	fs.BoolVar(&f.noMarkdown, "no-markdown", !cfg.Process.Markdown, "Keep Markdown-flagged cells raw")

	rootCmd.AddCommand(newProcessorsCmd(f))

	return rootCmd
}
