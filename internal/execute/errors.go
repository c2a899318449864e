package execute

import "fmt"

// SpawnError reports a backend that could not be launched at all,
// as opposed to one that ran and failed. Exit code 127 keeps it
// distinguishable from any plausible child status.
type SpawnError struct {
	Program string
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("program %s not found", e.Program)
}

func (e *SpawnError) ExitCode() int { return 127 }

// StatusError carries a child's non-zero exit status verbatim. It has
// no message of its own: the child already reported on stderr.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return "" }

func (e *StatusError) ExitCode() int { return e.Code }
