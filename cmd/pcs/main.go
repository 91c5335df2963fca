package main

import (
	"os"
	"strings"

	"pcs-pro/internal/cli"
)

func isScanCode(s string) bool {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "item-") {
		// Keep it permissive; IDs are generated but users may paste variants.
		return len(s) > len("item-")
	}
	// QR payloads are UUIDs (8-4-4-4-12). A loose shape check is enough
	// here; resolution decides whether the code actually exists.
	if len(s) == 36 && strings.Count(s, "-") == 4 {
		return true
	}
	return false
}

func rewriteDirectLookupArgs(argv []string) []string {
	// Convenience: `pcs <code>` works like `pcs items find <code>`, so a
	// scanned label can be pasted straight after the binary name.
	//
	// Cobra treats the first non-flag token as a subcommand, so argv is
	// rewritten before parsing. Users often pass persistent flags first
	// (e.g. `pcs --dir ... <code>`), so find the first positional token,
	// not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir": true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isScanCode(argv[i+1]) {
				out := make([]string, 0, len(argv)+2)
				out = append(out, argv[:i+1]...)
				out = append(out, "items", "find")
				out = append(out, argv[i+1:]...)
				return out
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		if isScanCode(a) {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, "items", "find")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
