package translate

import (
	"strings"
	"testing"

	"github.com/unixish/lsw/internal/flagset"
)

func buildFor(t *testing.T, fs flagset.FlagSet) Translation {
	t.Helper()
	if len(fs.Paths) == 0 {
		fs.Paths = []string{"."}
	}
	return Build(fs)
}

func TestBuildDefault(t *testing.T) {
	tr := buildFor(t, flagset.FlagSet{})
	if tr.Dir != "dir ." {
		t.Fatalf("unexpected dir command: %q", tr.Dir)
	}
	if tr.PowerShell != "Get-ChildItem -Path ." {
		t.Fatalf("unexpected powershell command: %q", tr.PowerShell)
	}
	if tr.Description != "list directory contents" {
		t.Fatalf("unexpected description: %q", tr.Description)
	}
}

func TestBuildLongAll(t *testing.T) {
	tr := buildFor(t, flagset.FlagSet{Long: true, All: true})
	if tr.Dir != "dir /A ." {
		t.Fatalf("unexpected dir command: %q", tr.Dir)
	}
	if !strings.HasPrefix(tr.PowerShell, "Get-ChildItem -Force -Path .") {
		t.Fatalf("unexpected powershell command: %q", tr.PowerShell)
	}
	if !strings.Contains(tr.PowerShell, "Format-Table Mode, LastWriteTime, Length, Name -AutoSize") {
		t.Fatalf("long format should add Format-Table: %q", tr.PowerShell)
	}
	if !strings.Contains(tr.Description, "show hidden files") || !strings.Contains(tr.Description, "long format") {
		t.Fatalf("unexpected description: %q", tr.Description)
	}
}

func TestAlmostAllSharesHiddenDescription(t *testing.T) {
	tr := buildFor(t, flagset.FlagSet{AlmostAll: true})
	if tr.Dir != "dir /A ." {
		t.Fatalf("-A feeds the hidden switch: %q", tr.Dir)
	}
	if tr.Description != "list directory contents (show hidden files)" {
		t.Fatalf("-A shares the hidden description: %q", tr.Description)
	}
}

func TestSortDirectionInversion(t *testing.T) {
	cases := []struct {
		fs   flagset.FlagSet
		want string
	}{
		{flagset.FlagSet{SortByTime: true}, "/O-D"},
		{flagset.FlagSet{SortByTime: true, Reverse: true}, "/OD"},
		{flagset.FlagSet{SortBySize: true}, "/O-S"},
		{flagset.FlagSet{SortBySize: true, Reverse: true}, "/OS"},
		{flagset.FlagSet{Reverse: true}, "/O-N"},
	}
	for _, c := range cases {
		tr := buildFor(t, c.fs)
		if !strings.Contains(tr.Dir, c.want) {
			t.Fatalf("dir command %q should contain %q", tr.Dir, c.want)
		}
	}
}

func TestPowerShellSortDirection(t *testing.T) {
	tr := buildFor(t, flagset.FlagSet{SortByTime: true})
	if !strings.Contains(tr.PowerShell, "Sort-Object LastWriteTime -Descending") {
		t.Fatalf("ls -t is newest first: %q", tr.PowerShell)
	}
	tr = buildFor(t, flagset.FlagSet{SortByTime: true, Reverse: true})
	if !strings.Contains(tr.PowerShell, "Sort-Object LastWriteTime") || strings.Contains(tr.PowerShell, "-Descending") {
		t.Fatalf("ls -tr is oldest first: %q", tr.PowerShell)
	}
	tr = buildFor(t, flagset.FlagSet{Reverse: true})
	if !strings.Contains(tr.PowerShell, "Sort-Object Name -Descending") {
		t.Fatalf("bare -r reverses name order: %q", tr.PowerShell)
	}
}

func TestUnsortedSuppressesSortSwitches(t *testing.T) {
	tr := buildFor(t, flagset.FlagSet{NoSort: true, SortByTime: true, Reverse: true})
	if strings.Contains(tr.Dir, "/O") {
		t.Fatalf("-U should drop all sort switches: %q", tr.Dir)
	}
	if strings.Contains(tr.PowerShell, "Sort-Object") {
		t.Fatalf("-U should drop Sort-Object: %q", tr.PowerShell)
	}
}

func TestBareOnlyWithoutLong(t *testing.T) {
	tr := buildFor(t, flagset.FlagSet{OnePerLine: true})
	if !strings.Contains(tr.Dir, "/B") {
		t.Fatalf("-1 should use bare format: %q", tr.Dir)
	}
	if !strings.Contains(tr.PowerShell, "Select-Object -ExpandProperty Name") {
		t.Fatalf("-1 should expand names: %q", tr.PowerShell)
	}
	tr = buildFor(t, flagset.FlagSet{OnePerLine: true, Long: true})
	if strings.Contains(tr.Dir, "/B") {
		t.Fatalf("-l overrides bare format: %q", tr.Dir)
	}
}

func TestRecursiveAndDirectorySwitches(t *testing.T) {
	tr := buildFor(t, flagset.FlagSet{Recursive: true, Directory: true})
	if tr.Dir != "dir /S /AD ." {
		t.Fatalf("unexpected dir command: %q", tr.Dir)
	}
	if !strings.Contains(tr.PowerShell, "-Recurse -Directory") {
		t.Fatalf("unexpected powershell command: %q", tr.PowerShell)
	}
}

func TestBuildDeterministic(t *testing.T) {
	fs := flagset.FlagSet{Long: true, All: true, Paths: []string{`C:\x`}}
	first := Build(fs)
	second := Build(fs)
	if first != second {
		t.Fatalf("translation not deterministic:\n%+v\n%+v", first, second)
	}
	if first.Dir != `dir /A C:\x` {
		t.Fatalf("unexpected dir command: %q", first.Dir)
	}
}

func TestSwitchOrderStable(t *testing.T) {
	fs := flagset.FlagSet{All: true, Recursive: true, SortByTime: true}
	tr := buildFor(t, fs)
	if tr.Dir != "dir /A /S /O-D ." {
		t.Fatalf("switch order should be fixed: %q", tr.Dir)
	}
}

func TestToWindowsPath(t *testing.T) {
	if got := ToWindowsPath("./src/app"); got != `.\src\app` {
		t.Fatalf("slash conversion: %q", got)
	}
	t.Setenv("USERPROFILE", `C:\Users\dev`)
	if got := ToWindowsPath("~/projects"); got != `C:\Users\dev\projects` {
		t.Fatalf("home expansion: %q", got)
	}
}

func TestPathWithSpacesIsQuoted(t *testing.T) {
	tr := buildFor(t, flagset.FlagSet{Paths: []string{"My Documents"}})
	if !strings.Contains(tr.Dir, `"My Documents"`) {
		t.Fatalf("path should be quoted: %q", tr.Dir)
	}
	if !strings.Contains(tr.PowerShell, `-Path "My Documents"`) {
		t.Fatalf("path should be quoted: %q", tr.PowerShell)
	}
}

func TestMultiplePathsKeepOrder(t *testing.T) {
	tr := buildFor(t, flagset.FlagSet{Paths: []string{"a", "b"}})
	if tr.Dir != "dir a b" {
		t.Fatalf("paths should keep argument order: %q", tr.Dir)
	}
}
