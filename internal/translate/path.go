package translate

import (
	"os"
	"strings"
)

// ToWindowsPath rewrites a Unix-style path into its Windows form:
// forward slashes become backslashes and a leading ~ expands to the
// user profile directory.
func ToWindowsPath(path string) string {
	p := strings.ReplaceAll(path, "/", "\\")
	if strings.HasPrefix(p, "~") {
		if home := os.Getenv("USERPROFILE"); home != "" {
			p = home + p[1:]
		}
	}
	return p
}

func quoteIfNeeded(p string) string {
	if strings.Contains(p, " ") {
		return `"` + p + `"`
	}
	return p
}
