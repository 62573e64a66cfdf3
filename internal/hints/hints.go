// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-md2post/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForListen returns hints for server listen errors. Inside a container a
// loopback address is unreachable from the host, so binding all
// interfaces is suggested.
func ForListen(addr string) string {
	hints := []string{"use --addr to pick another port"}
	if IsInContainer() && strings.HasPrefix(addr, "127.0.0.1") {
		hints = append(hints, "bind 0.0.0.0 inside containers")
	}
	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2post/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2post") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForFrontMatter returns hints for malformed post headers.
func ForFrontMatter() string {
	return format("posts start with a --- block holding title, published (YYYY-MM-DD) and draft")
}

// ForMissingImageExtension returns hints for local images without extension.
func ForMissingImageExtension() string {
	return format("local images need a file extension, e.g. ![alt](diagram.png)")
}

// ForImageNotFound returns hints for image copy failures.
func ForImageNotFound() string {
	return format("images are looked up next to index.md, then in its img/ directory")
}

// ForUnknownEngine returns hints listing the available render engines.
func ForUnknownEngine(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
