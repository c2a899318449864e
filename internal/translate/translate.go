// Package translate turns a parsed ls flag set into the equivalent
// native Windows listing commands. Translation is deterministic: the
// same flags and paths always yield byte-identical output.
package translate

import (
	"strings"

	"github.com/unixish/lsw/internal/flagset"
)

// Translation holds both native renderings of one ls invocation plus a
// one-line description of what it does.
type Translation struct {
	Dir         string
	PowerShell  string
	Description string
}

// Build composes the native commands for the given flag set.
func Build(fs flagset.FlagSet) Translation {
	return Translation{
		Dir:         buildDirCommand(fs),
		PowerShell:  buildPowerShellCommand(fs),
		Description: buildDescription(fs),
	}
}

func buildDirCommand(fs flagset.FlagSet) string {
	parts := []string{"dir"}

	if fs.Hidden() {
		parts = append(parts, table.feature("hidden").Dir)
	}
	if fs.Recursive {
		parts = append(parts, table.feature("recursive").Dir)
	}
	if fs.Directory {
		parts = append(parts, table.feature("directory").Dir)
	}
	// Bare format conflicts with the long listing columns.
	if fs.OnePerLine && !fs.Long {
		parts = append(parts, table.feature("bare").Dir)
	}

	if rule, ok := table.sort(string(fs.SortBy())); ok {
		if fs.Reverse {
			parts = append(parts, rule.DirReversed)
		} else {
			parts = append(parts, rule.Dir)
		}
	} else if fs.Reverse && !fs.NoSort {
		parts = append(parts, "/O-N")
	}

	for _, p := range fs.Paths {
		parts = append(parts, quoteIfNeeded(ToWindowsPath(p)))
	}
	return strings.Join(parts, " ")
}

func buildPowerShellCommand(fs flagset.FlagSet) string {
	var sb strings.Builder
	sb.WriteString("Get-ChildItem")

	if fs.Hidden() {
		sb.WriteString(" " + table.feature("hidden").PowerShell)
	}
	if fs.Recursive {
		sb.WriteString(" " + table.feature("recursive").PowerShell)
	}
	if fs.Directory {
		sb.WriteString(" " + table.feature("directory").PowerShell)
	}
	for _, p := range fs.Paths {
		sb.WriteString(" -Path " + quoteIfNeeded(ToWindowsPath(p)))
	}

	if rule, ok := table.sort(string(fs.SortBy())); ok {
		sb.WriteString(" | Sort-Object " + rule.Property)
		if !fs.Reverse {
			sb.WriteString(" -Descending")
		}
	} else if fs.Reverse && !fs.NoSort {
		sb.WriteString(" | Sort-Object Name -Descending")
	}

	if fs.Long {
		sb.WriteString(" | Format-Table Mode, LastWriteTime, Length, Name -AutoSize")
	} else if fs.OnePerLine {
		sb.WriteString(" | Select-Object -ExpandProperty Name")
	}
	return sb.String()
}

func buildDescription(fs flagset.FlagSet) string {
	var parts []string
	// -a and -A feed the same hidden switch and share its description.
	if fs.Hidden() {
		parts = append(parts, table.feature("hidden").Describe)
	}
	if fs.Long {
		parts = append(parts, "long format")
	}
	if fs.Recursive {
		parts = append(parts, table.feature("recursive").Describe)
	}
	if rule, ok := table.sort(string(fs.SortBy())); ok {
		parts = append(parts, rule.Describe)
	}
	if fs.Reverse {
		parts = append(parts, "reverse order")
	}
	if fs.HumanReadable {
		parts = append(parts, "human-readable sizes")
	}

	if len(parts) == 0 {
		return "list directory contents"
	}
	return "list directory contents (" + strings.Join(parts, ", ") + ")"
}
