package root

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/unixish/lsw/internal/buildinfo"
	"github.com/unixish/lsw/internal/execute"
	"github.com/unixish/lsw/internal/flagset"
	"github.com/unixish/lsw/internal/rosetta"
	"github.com/unixish/lsw/internal/translate"
)

// NewRootCmd creates the lsw command. There are no subcommands: every
// non-flag argument is a path to list.
func NewRootCmd() *cobra.Command {
	fs := &flagset.FlagSet{}
	var (
		colorWhen  string
		verbose    bool
		cheatsheet bool
	)

	cmd := &cobra.Command{
		Use:   "lsw [flags] [path ...]",
		Short: "Unix ls flags, translated to Windows dir and Get-ChildItem",
		Long: `lsw parses familiar ls flags and runs the equivalent native Windows
listing command. Use --explain to see the translation without running
it, --teach to see it while running it, and --rosetta for a general
Unix-to-Windows cheatsheet.

Install the binary as ll, la or l to get the usual shell aliases:
ll = lsw -l, la = lsw -la, l = lsw -F.`,
		Args:          cobra.ArbitraryArgs,
		Version:       buildinfo.Summary(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cheatsheet {
				fs.Rosetta = true
			}
			return run(cmd, fs, colorWhen, verbose, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&fs.Long, "long", "l", false, "Long listing format")
	f.BoolVarP(&fs.All, "all", "a", false, "Include hidden entries")
	f.BoolVarP(&fs.AlmostAll, "almost-all", "A", false, "Include hidden entries, without . and ..")
	f.BoolVarP(&fs.HumanReadable, "human-readable", "H", false, "Human-readable sizes")
	f.BoolVarP(&fs.OnePerLine, "one-per-line", "1", false, "One entry per line")
	f.BoolVarP(&fs.Recursive, "recursive", "R", false, "List subdirectories recursively")
	f.BoolVarP(&fs.Directory, "directory", "d", false, "List directories themselves, not their contents")
	f.BoolVarP(&fs.Classify, "classify", "F", false, "Append type indicator to entries")
	f.BoolVarP(&fs.ShowSize, "size", "s", false, "Show file size (compatibility flag)")
	f.BoolVarP(&fs.SortByTime, "sort-time", "t", false, "Sort by modification time, newest first")
	f.BoolVarP(&fs.SortBySize, "sort-size", "S", false, "Sort by size, largest first")
	f.BoolVarP(&fs.Reverse, "reverse", "r", false, "Reverse sort order")
	f.BoolVarP(&fs.NoSort, "unsorted", "U", false, "Do not sort")
	f.StringVar(&colorWhen, "color", "auto", "Colorize output: always, never or auto")
	f.Lookup("color").NoOptDefVal = "auto"

	f.BoolVar(&fs.Explain, "explain", false, "Print the Windows translation without executing it")
	f.BoolVar(&fs.Native, "native", false, "Print only the native command line, for scripting")
	f.BoolVar(&fs.Teach, "teach", false, "Print the Windows translation, then execute it")
	f.BoolVar(&fs.Rosetta, "rosetta", false, "Print a Unix-to-Windows cheatsheet and exit")
	f.BoolVar(&cheatsheet, "cheatsheet", false, "Synonym for --rosetta")
	f.BoolVar(&fs.Tree, "tree", false, "Show a tree view via the native tree command")
	f.BoolVar(&fs.UsePowerShell, "powershell", false, "Force the PowerShell backend")
	f.BoolVar(&fs.UseCmd, "cmd", false, "Force the cmd.exe backend")
	f.BoolVarP(&verbose, "verbose", "v", false, "Log translation decisions to stderr")

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

// run dispatches one invocation: rosetta wins over explain, explain
// over native, native over teach, teach over plain execution.
func run(cmd *cobra.Command, fs *flagset.FlagSet, colorWhen string, verbose bool, args []string) error {
	color, err := flagset.ParseColor(colorWhen)
	if err != nil {
		return err
	}
	fs.Color = color
	fs.Paths = args
	if len(fs.Paths) == 0 {
		fs.Paths = []string{"."}
	}

	log := newLogger(cmd, *fs, verbose)

	if fs.Rosetta {
		return rosetta.Print(cmd.OutOrStdout())
	}
	if fs.Tree {
		return execute.RunTree(*fs, log)
	}

	tr := translate.Build(*fs)
	backend := execute.Select(*fs)
	log.Debug().
		Str("backend", string(backend)).
		Str("dir", tr.Dir).
		Str("powershell", tr.PowerShell).
		Msg("translated")

	switch {
	case fs.Explain:
		_, err := fmt.Fprint(cmd.OutOrStdout(), explainText(tr))
		return err
	case fs.Native:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), execute.Line(backend, tr))
		return err
	case fs.Teach:
		fmt.Fprint(cmd.ErrOrStderr(), explainText(tr))
		fmt.Fprintln(cmd.ErrOrStderr(), "---")
	}
	return execute.Run(backend, tr, log)
}

func explainText(tr translate.Translation) string {
	return fmt.Sprintf("Command (cmd.exe):    %s\nCommand (PowerShell): %s\n\nDescription: %s\n",
		tr.Dir, tr.PowerShell, tr.Description)
}

func newLogger(cmd *cobra.Command, fs flagset.FlagSet, verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	w := zerolog.ConsoleWriter{
		Out:     cmd.ErrOrStderr(),
		NoColor: !fs.Color.Enabled(os.Stderr.Fd()),
	}
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
