// Package main implements the texify command line tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/texify-dev/texify/pkg/config"
	"github.com/texify-dev/texify/pkg/logger"
	"github.com/texify-dev/texify/pkg/texify"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "render":
		render(os.Args[2:])
	case "version":
		fmt.Printf("texify version %s\n", version)
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`Texify - Render Python functions as LaTeX

Usage:
    texify render <source.py>  Render a function to LaTeX ("-" reads stdin)
    texify version             Show version
    texify help                Show this help message

Options:
    -style <name>      Output style: function, expression, algorithmic (default: function)
    -identifiers <m>   Identifier renames as comma-separated old=new pairs
    -expand <names>    Comma-separated composite functions to expand
    -prefixes <names>  Comma-separated module prefixes to trim
    -reduce            Inline assignments into the final statement
    -math-symbols      Render Greek identifier names as symbols
    -set-symbols       Use set-theoretic operator glyphs
    -no-signature      Omit the "f(x) =" signature
    -raw-name          Keep the function name out of \mathrm
    -v                 Verbose output`)
}

func render(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	style := fs.String("style", "function", "output style")
	identifiers := fs.String("identifiers", "", "identifier renames, old=new pairs")
	expand := fs.String("expand", "", "composite functions to expand")
	prefixes := fs.String("prefixes", "", "module prefixes to trim")
	reduce := fs.Bool("reduce", false, "inline assignments")
	mathSymbols := fs.Bool("math-symbols", false, "render Greek names as symbols")
	setSymbols := fs.Bool("set-symbols", false, "use set-theoretic glyphs")
	noSignature := fs.Bool("no-signature", false, "omit the signature")
	rawName := fs.Bool("raw-name", false, "keep the function name out of \\mathrm")
	verbose := fs.Bool("v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *verbose {
		logger.InitDev()
	} else {
		_ = logger.Init(logger.Config{Level: logger.LevelWarn, Format: "text", Output: os.Stderr})
	}
	logger.LogConvertStart(args)
	start := time.Now()

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		os.Exit(1)
	}
	source, err := readSource(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	outStyle, err := parseStyle(*style)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Defaults()
	cfg.ReduceAssignments = *reduce
	cfg.UseMathSymbols = *mathSymbols
	cfg.UseSetSymbols = *setSymbols
	cfg.UseSignature = !*noSignature
	cfg.UseRawFunctionName = *rawName
	if *expand != "" {
		cfg.ExpandFunctions = strings.Split(*expand, ",")
	}
	if *prefixes != "" {
		cfg.Prefixes = strings.Split(*prefixes, ",")
	}
	if *identifiers != "" {
		cfg.Identifiers, err = parsePairs(*identifiers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	latex, err := texify.GetLatex(source, outStyle, &cfg)
	if err != nil {
		logger.LogConvertComplete(false, time.Since(start).String())
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger.LogConvertComplete(true, time.Since(start).String())
	fmt.Println(latex)
}

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func parseStyle(name string) (texify.Style, error) {
	switch name {
	case "function":
		return texify.StyleFunction, nil
	case "expression":
		return texify.StyleExpression, nil
	case "algorithmic":
		return texify.StyleAlgorithmic, nil
	}
	return 0, fmt.Errorf("unknown style: %s", name)
}

func parsePairs(spec string) (map[string]string, error) {
	pairs := make(map[string]string)
	for _, entry := range strings.Split(spec, ",") {
		old, replacement, ok := strings.Cut(entry, "=")
		if !ok || old == "" || replacement == "" {
			return nil, fmt.Errorf("malformed identifier pair: %q", entry)
		}
		pairs[old] = replacement
	}
	return pairs, nil
}
