package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render one markdown file to HTML")
	fmt.Fprintln(w, "  build      Render every post into a static site")
	fmt.Fprintln(w, "  serve      Serve the blog over HTTP")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2post help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags every command accepts.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: md2post)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post render [file.md|-] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one markdown file to an HTML fragment, or a full page with --page.")
	fmt.Fprintln(w, "Reads stdin when no file is given. Front matter is optional.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --id <s>              Document ID for image paths (default: file name)")
	fmt.Fprintln(w, "  -e, --engine <s>          Render engine: event, goldmark")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "      --page                Wrap the fragment in the site layout")
	fmt.Fprintln(w, "      --style <s>           Chroma style for code blocks")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every published post and write the whole site to a directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --content <dir>       Content directory (overrides config)")
	fmt.Fprintln(w, "  -o, --out <dir>           Output directory (overrides config)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel renders (0 = auto)")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the blog over HTTP until interrupted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --content <dir>       Content directory (overrides config)")
	fmt.Fprintln(w, "  -a, --addr <host:port>    Listen address (overrides config)")
	fmt.Fprintln(w, "      --watch               Reload posts when files change")
	fmt.Fprintln(w, "      --drafts              Serve draft posts")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel renders (0 = auto)")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after defaults are applied, as YAML.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for the named command, or the main usage.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdRender:
		printRenderUsage(env.Stdout)
	case cmdBuild:
		printBuildUsage(env.Stdout)
	case cmdServe:
		printServeUsage(env.Stdout)
	case cmdConfig:
		printConfigUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: md2post version")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: md2post help [command]")
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
