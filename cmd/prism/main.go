// Package main is the entry point for the prism syntax renderer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/prism/internal/config"
	"github.com/dshills/prism/internal/console"
	"github.com/dshills/prism/internal/render"
	"github.com/dshills/prism/internal/theme"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		themeName   string
		lexerName   string
		lineNumbers bool
		rangeSpec   string
		highlights  string
		codeWidth   int
		tabSize     int
		dedent      bool
		listThemes  bool
		showVersion bool
	)

	flag.StringVar(&configPath, "config", config.Path(), "Path to configuration file")
	flag.StringVar(&configPath, "c", config.Path(), "Path to configuration file (shorthand)")
	flag.StringVar(&themeName, "theme", "", "Color theme name")
	flag.StringVar(&themeName, "t", "", "Color theme name (shorthand)")
	flag.StringVar(&lexerName, "lexer", "", "Lexer name (default: guess from filename)")
	flag.StringVar(&lexerName, "l", "", "Lexer name (shorthand)")
	flag.BoolVar(&lineNumbers, "numbers", false, "Show line numbers")
	flag.BoolVar(&lineNumbers, "n", false, "Show line numbers (shorthand)")
	flag.StringVar(&rangeSpec, "range", "", "Line range to render, e.g. 3:10")
	flag.StringVar(&rangeSpec, "r", "", "Line range to render (shorthand)")
	flag.StringVar(&highlights, "highlight", "", "Comma-separated line numbers to highlight")
	flag.StringVar(&highlights, "H", "", "Line numbers to highlight (shorthand)")
	flag.IntVar(&codeWidth, "width", 0, "Fixed content width, excluding the gutter")
	flag.IntVar(&codeWidth, "w", 0, "Fixed content width (shorthand)")
	flag.IntVar(&tabSize, "tab-size", 0, "Tab stop width")
	flag.BoolVar(&dedent, "dedent", true, "Strip common leading whitespace")
	flag.BoolVar(&listThemes, "themes", false, "List available themes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Prism - syntax-highlighted source viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: prism [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  prism main.go               Highlight a file\n")
		fmt.Fprintf(os.Stderr, "  prism -n -t dracula main.go Line numbers, dracula theme\n")
		fmt.Fprintf(os.Stderr, "  prism -n -r 10:40 main.go   Render lines 10-40 only\n")
		fmt.Fprintf(os.Stderr, "  cat main.go | prism -l go   Highlight stdin\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Prism %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	if listThemes {
		for _, name := range theme.Names() {
			fmt.Println(name)
		}
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if themeName == "" {
		themeName = cfg.Theme
	}
	if tabSize < 1 {
		tabSize = cfg.TabSize
	}
	if !lineNumbers {
		lineNumbers = cfg.LineNumbers
	}

	opts := render.Options{
		Theme:       themeName,
		Dedent:      dedent,
		LineNumbers: lineNumbers,
		CodeWidth:   codeWidth,
		TabSize:     tabSize,
	}
	if opts.LineRange, err = parseRange(rangeSpec); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.HighlightLines, err = parseHighlights(highlights); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	syntax, err := load(flag.Arg(0), lexerName, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := console.New(os.Stdout).Print(syntax); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// load builds the renderer from a file path or stdin.
func load(path, lexerName string, opts render.Options) (*render.Syntax, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		code := string(data)
		if lexerName == "" {
			if lexer := lexers.Analyse(code); lexer != nil {
				lexerName = lexer.Config().Name
			}
		}
		return render.New(code, lexerName, opts), nil
	}

	if lexerName != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return render.New(string(data), lexerName, opts), nil
	}

	return render.FromPath(path, opts)
}

// parseRange parses "start:end" into a line range.
func parseRange(spec string) (render.LineRange, error) {
	if spec == "" {
		return render.LineRange{}, nil
	}
	start, end, ok := strings.Cut(spec, ":")
	if !ok {
		return render.LineRange{}, fmt.Errorf("invalid range %q: expected start:end", spec)
	}
	s, err := strconv.Atoi(start)
	if err != nil {
		return render.LineRange{}, fmt.Errorf("invalid range start %q", start)
	}
	e, err := strconv.Atoi(end)
	if err != nil {
		return render.LineRange{}, fmt.Errorf("invalid range end %q", end)
	}
	if s < 1 || e < s {
		return render.LineRange{}, fmt.Errorf("invalid range %q: need 1 <= start <= end", spec)
	}
	return render.LineRange{Start: s, End: e}, nil
}

// parseHighlights parses a comma-separated list of line numbers.
func parseHighlights(spec string) (map[int]bool, error) {
	if spec == "" {
		return nil, nil
	}
	lines := make(map[int]bool)
	for _, part := range strings.Split(spec, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid highlight line %q", part)
		}
		lines[n] = true
	}
	return lines, nil
}
