// Package execute runs translated listing commands through the native
// Windows shells and maps their outcomes onto process exit codes.
package execute

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/unixish/lsw/internal/flagset"
	"github.com/unixish/lsw/internal/translate"
)

// Backend identifies which native shell carries out the listing.
type Backend string

const (
	BackendCmd        Backend = "cmd"
	BackendPowerShell Backend = "powershell"
)

// Select picks the backend for a flag set. Forcing flags win;
// otherwise PowerShell is used for long or human-readable listings,
// which dir renders poorly, and cmd.exe for everything else.
func Select(fs flagset.FlagSet) Backend {
	switch {
	case fs.UsePowerShell:
		return BackendPowerShell
	case fs.UseCmd:
		return BackendCmd
	case fs.Long || fs.HumanReadable:
		return BackendPowerShell
	}
	return BackendCmd
}

// Command returns the program and argument vector for running the
// translation on the given backend, plus the native command line the
// user would type themselves.
func Command(b Backend, tr translate.Translation) (program string, args []string, line string) {
	if b == BackendPowerShell {
		return "powershell.exe", []string{"-NoProfile", "-Command", tr.PowerShell}, tr.PowerShell
	}
	return "cmd.exe", []string{"/C", tr.Dir}, tr.Dir
}

// Line is the command string Command would execute, for display modes.
func Line(b Backend, tr translate.Translation) string {
	_, _, line := Command(b, tr)
	return line
}

// Run executes the translation with stdio passed through to the
// caller. A child that starts but fails yields a *StatusError with its
// exit code; a child that cannot be started yields a *SpawnError.
func Run(b Backend, tr translate.Translation, log zerolog.Logger) error {
	program, args, line := Command(b, tr)
	log.Debug().Str("program", program).Str("command", line).Msg("spawning native listing")
	return runPassthrough(program, args)
}

// RunTree runs the native tree command for the first requested path.
func RunTree(fs flagset.FlagSet, log zerolog.Logger) error {
	path := "."
	if len(fs.Paths) > 0 {
		path = fs.Paths[0]
	}
	path = translate.ToWindowsPath(path)
	log.Debug().Str("path", path).Msg("spawning native tree")
	return runPassthrough("cmd.exe", []string{"/C", "tree", "/F", path})
}

func runPassthrough(program string, args []string) error {
	cmd := exec.Command(program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return &SpawnError{Program: program}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &StatusError{Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("program %s execution failed: %v", program, err)
}
