package flagset

import (
	"path/filepath"
	"strings"
)

// aliasTable maps accepted executable names to the flags they imply.
// Installing (or symlinking) the binary as one of these names applies
// the flags before any explicit arguments.
var aliasTable = map[string][]string{
	"ll": {"-l"},
	"la": {"-la"},
	"l":  {"-F"},
}

// AliasArgs returns the implicit flags for the invoked program name, or
// nil when the name carries no alias. The extension is ignored so that
// ll.exe behaves like ll.
func AliasArgs(invoked string) []string {
	name := filepath.Base(invoked)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return aliasTable[name]
}
