package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// renderFlags holds flags for the render command.
type renderFlags struct {
	common commonFlags
	id     string
	engine string
	output string
	page   bool
	style  string
}

// buildFlags holds flags for the build command.
type buildFlags struct {
	common  commonFlags
	content string
	out     string
	workers int
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	common  commonFlags
	content string
	addr    string
	watch   bool
	drafts  bool
	workers int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text, json")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	fs := newFlagSet("render", printRenderUsage, stderr)
	f := &renderFlags{}

	fs.StringVar(&f.id, "id", "", "document ID for image paths (default: file name)")
	fs.StringVarP(&f.engine, "engine", "e", "", "render engine: event, goldmark")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&f.page, "page", false, "wrap the fragment in the site layout")
	fs.StringVar(&f.style, "style", "", "chroma style for code blocks")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	fs := newFlagSet("build", printBuildUsage, stderr)
	f := &buildFlags{}

	fs.StringVar(&f.content, "content", "", "content directory (overrides config)")
	fs.StringVarP(&f.out, "out", "o", "", "output directory (overrides config)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renders (0 = auto)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string, stderr io.Writer) (*serveFlags, []string, error) {
	fs := newFlagSet("serve", printServeUsage, stderr)
	f := &serveFlags{}

	fs.StringVar(&f.content, "content", "", "content directory (overrides config)")
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (overrides config)")
	fs.BoolVar(&f.watch, "watch", false, "reload posts when files change")
	fs.BoolVar(&f.drafts, "drafts", false, "serve draft posts")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renders (0 = auto)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, stderr io.Writer) (*commonFlags, []string, error) {
	fs := newFlagSet("config", printConfigUsage, stderr)
	f := &commonFlags{}
	addCommonFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
