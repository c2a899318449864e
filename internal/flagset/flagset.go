package flagset

import (
	"fmt"

	"github.com/mattn/go-isatty"
)

// FlagSet is the parsed listing request. Any combination of fields is
// valid; the zero value means "list the current directory, short form".
type FlagSet struct {
	// Display
	Long          bool // -l
	All           bool // -a
	AlmostAll     bool // -A
	HumanReadable bool // -H
	OnePerLine    bool // -1
	Recursive     bool // -R
	Directory     bool // -d
	Classify      bool // -F
	ShowSize      bool // -s, accepted for compatibility, no native switch

	// Sorting
	SortByTime bool // -t
	SortBySize bool // -S
	Reverse    bool // -r
	NoSort     bool // -U

	Color ColorMode

	// Modes
	Explain bool // print translation, do not run
	Native  bool // print only the selected backend command
	Teach   bool // print translation, then run
	Rosetta bool // print cheatsheet
	Tree    bool // run native tree command

	// Backend forcing
	UsePowerShell bool
	UseCmd        bool

	Paths []string
}

// SortKey is the effective sort order after resolving the individual
// sort flags. Time wins over size when both are set.
type SortKey string

const (
	SortNone SortKey = "none"
	SortTime SortKey = "time"
	SortSize SortKey = "size"
)

func (f FlagSet) SortBy() SortKey {
	switch {
	case f.NoSort:
		return SortNone
	case f.SortByTime:
		return SortTime
	case f.SortBySize:
		return SortSize
	}
	return SortNone
}

// Hidden reports whether hidden entries should be included.
func (f FlagSet) Hidden() bool { return f.All || f.AlmostAll }

// ColorMode controls output colorization.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColor accepts the GNU ls spellings for --color values.
func ParseColor(v string) (ColorMode, error) {
	switch v {
	case "always", "yes", "force":
		return ColorAlways, nil
	case "never", "no", "none":
		return ColorNever, nil
	case "", "auto", "tty", "if-tty":
		return ColorAuto, nil
	}
	return ColorAuto, fmt.Errorf("unknown color option: %s", v)
}

// Enabled resolves the mode against the given output descriptor.
func (c ColorMode) Enabled(fd uintptr) bool {
	switch c {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
