package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/config"
	"github.com/alnah/go-md2post/internal/content"
	"github.com/alnah/go-md2post/internal/hints"
)

// Command names.
const (
	cmdRender  = "render"
	cmdBuild   = "build"
	cmdServe   = "serve"
	cmdConfig  = "config"
	cmdVersion = "version"
	cmdHelp    = "help"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage        = errors.New("invalid usage")
	ErrReadMarkdown = errors.New("failed to read markdown")
	ErrWriteOutput  = errors.New("failed to write output")
	ErrListen       = errors.New("failed to listen")
)

// runMain dispatches args[1] and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	var err error
	switch cmd {
	case cmdRender:
		err = runRender(ctx, rest, env)
	case cmdBuild:
		err = runBuild(ctx, rest, env)
	case cmdServe:
		err = runServe(ctx, rest, env)
	case cmdConfig:
		err = runConfig(rest, env)
	case cmdVersion, "--version":
		fmt.Fprintf(env.Stdout, "md2post %s\n", Version)
	case cmdHelp, "-h", "--help":
		err = runHelp(rest, env)
	default:
		printUsage(env.Stderr)
		err = fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// hintFor returns the hint suffix matching err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(defaultConfigName))
	case errors.Is(err, md2post.ErrUnknownEngine):
		return hints.ForUnknownEngine(md2post.Engines())
	case errors.Is(err, content.ErrFrontMatter), errors.Is(err, content.ErrMissingField):
		return hints.ForFrontMatter()
	case errors.Is(err, md2post.ErrMissingImageExtension):
		return hints.ForMissingImageExtension()
	case errors.Is(err, content.ErrImageNotFound):
		return hints.ForImageNotFound()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// usageError wraps a flag parse failure. Help requests pass through.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
