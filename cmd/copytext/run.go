package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/copytext-go/pkg/copytext"
	"github.com/ukaji3/copytext-go/pkg/copytext/output"
	"github.com/ukaji3/copytext-go/pkg/copytext/processor"
	"github.com/ukaji3/copytext-go/pkg/copytext/sheetfilter"
)

type flags struct {
	outputPath  string
	pretty      bool
	format      string
	sheetsDir   string
	processor   string
	overrides   map[string]string
	include     []string
	exclude     []string
	includeExpr string
	excludeExpr string
	printArea   bool
	noMarkdown  bool
	logLevel    string
	logFormat   string
}

func run(cmd *cobra.Command, f *flags, inputPath string) error {
	format, err := output.ParseFormat(f.format)
	if err != nil {
		return err
	}

	opts, err := f.options()
	if err != nil {
		return err
	}

	res, err := process(cmd.InOrStdin(), inputPath, opts)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	data, err := output.Encode(res, format, f.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if f.outputPath != "" {
		if err := os.WriteFile(f.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if f.sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
	}

	if f.sheetsDir != "" {
		if err := writeSheetFiles(res, f.sheetsDir, format, f.pretty); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func process(stdin io.Reader, inputPath string, opts copytext.Options) (*copytext.Results, error) {
	if inputPath == "-" {
		return copytext.ProcessReader(stdin, opts)
	}
	return copytext.ProcessFile(inputPath, opts)
}

// options turns flag values into processing options.
func (f *flags) options() (copytext.Options, error) {
	opts := copytext.Options{
		Processor:     f.processor,
		Overrides:     f.overrides,
		PrintAreaOnly: f.printArea,
		Logger:        slog.Default(),
	}

	if f.noMarkdown {
		opts.Registry = processor.NewDefaultRegistry(nil)
	}

	var err error
	if opts.Include, err = buildFilter(f.include, f.includeExpr); err != nil {
		return opts, fmt.Errorf("include: %w", err)
	}
	if opts.Exclude, err = buildFilter(f.exclude, f.excludeExpr); err != nil {
		return opts, fmt.Errorf("exclude: %w", err)
	}

	return opts, nil
}

func buildFilter(names []string, expr string) (sheetfilter.Filter, error) {
	switch {
	case len(names) > 0 && expr != "":
		return nil, errors.New("sheet names and an expression cannot be combined")
	case expr != "":
		return sheetfilter.Expr(expr)
	case len(names) > 0:
		return sheetfilter.Names(names...), nil
	}
	return nil, nil
}

func writeSheetFiles(res *copytext.Results, dir string, format output.Format, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheetName := range res.Names() {
		sheet, _ := res.Get(sheetName)
		data, err := output.Encode(sheet, format, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+format.Extension())
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}

	return nil
}
