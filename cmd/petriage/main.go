// Package main provides the petriage CLI tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"petriage/internal/catalog"
	"petriage/internal/cli"
	"petriage/internal/pe"
	"petriage/internal/report"
)

var (
	verbose     = flag.Bool("v", false, "verbose mode: show all imported functions in the console report")
	quiet       = flag.Bool("q", false, "suppress the console report")
	output      = flag.String("o", "", "write a report file to this path without prompting")
	htmlOut     = flag.Bool("html", false, "write the report file as HTML (with -o)")
	dangerous   = flag.Bool("dangerous", false, "include the dangerous-imports section in the report file (with -o)")
	catalogPath = flag.String("catalog", "", "YAML file with extra library/function annotations to merge")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		red := color.New(color.FgRed, color.Bold)
		_, _ = red.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cat := catalog.Builtin()
	if *catalogPath != "" {
		if err := cat.Load(*catalogPath); err != nil {
			return err
		}
	}

	reader, err := pe.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	analyzer := pe.NewAnalyzer(reader)
	info, err := analyzer.Analyze()
	if err != nil {
		return err
	}

	if !*quiet {
		reporter := cli.NewReporter(info, cat)
		reporter.SetVerbose(*verbose)
		reporter.Print()
	}

	if *output != "" {
		opts := report.Options{IncludeDangerous: *dangerous}
		return writeReport(info, cat, *output, *htmlOut, opts)
	}

	return interactiveReport(info, cat, path)
}

// interactiveReport mirrors the flag-less flow: ask what the report file
// should contain, then where to put it.
func interactiveReport(info *pe.Info, cat *catalog.Catalog, path string) error {
	prompter, err := cli.NewPrompter()
	if err != nil {
		return err
	}
	defer func() { _ = prompter.Close() }()

	save, err := prompter.Confirm("Save a report file?", true)
	if err != nil || !save {
		return err
	}

	includeDangerous, err := prompter.Confirm("Include dangerous/suspicious functions in the output?", false)
	if err != nil {
		return err
	}
	asHTML, err := prompter.Confirm("Save output as HTML?", false)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ext := ".txt"
	if asHTML {
		ext = ".html"
	}
	name, err := prompter.Ask("Enter output file name", base+ext)
	if err != nil {
		return err
	}

	opts := report.Options{IncludeDangerous: includeDangerous}
	return writeReport(info, cat, name, asHTML, opts)
}

func writeReport(info *pe.Info, cat *catalog.Catalog, path string, asHTML bool, opts report.Options) error {
	var content string
	if asHTML {
		content = report.HTML(info, cat, opts)
	} else {
		content = report.Text(info, cat, opts)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	green := color.New(color.FgGreen, color.Bold)
	_, _ = green.Printf("✓ Report saved to %s\n", path)
	return nil
}

func printUsage() {
	cyan := color.New(color.FgCyan, color.Bold)
	_, _ = cyan.Println("\npetriage - PE import table triage tool")

	fmt.Println("\nUsage:")
	fmt.Println("  petriage [options] <PE file path>")
	fmt.Println("\nOptions:")
	fmt.Println("  -v              verbose mode: show all imported functions in the console report")
	fmt.Println("  -q              suppress the console report")
	fmt.Println("  -o <path>       write a report file to this path without prompting")
	fmt.Println("  -html           write the report file as HTML (with -o)")
	fmt.Println("  -dangerous      include the dangerous-imports section in the report file (with -o)")
	fmt.Println("  -catalog <path> YAML file with extra library/function annotations to merge")

	fmt.Println("\nExamples:")
	fmt.Println("  # Console triage")
	fmt.Println("  petriage sample.exe")
	fmt.Println()
	fmt.Println("  # HTML report with dangerous imports, no prompts")
	fmt.Println("  petriage -q -o sample.html -html -dangerous sample.exe")
}
