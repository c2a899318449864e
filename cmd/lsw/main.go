package main

import (
	"os"
	"strings"

	"github.com/unixish/lsw/cmd/lsw/root"
	"github.com/unixish/lsw/internal/flagset"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	args := os.Args[1:]

	// When the binary is invoked under an alias name (ll, la, l), the
	// alias's implicit flags are prepended so explicit flags combine
	// with them.
	if overlay := flagset.AliasArgs(os.Args[0]); len(overlay) > 0 {
		args = append(append([]string(nil), overlay...), args...)
	}

	if err := root.Execute(args); err != nil {
		// Print a short, single-line error to stderr on failures.
		// Do not print usage or stack traces. A propagated child exit
		// status carries no message of its own; the child already
		// wrote to stderr.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg != "" {
			_, _ = os.Stderr.WriteString("lsw: " + msg + "\n")
		}
		code := 1
		if ec, ok := err.(exitCoder); ok {
			if c := ec.ExitCode(); c != 0 {
				code = c
			}
		}
		os.Exit(code)
	}
}
