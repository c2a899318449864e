// Package rosetta renders the static Unix-to-Windows cheatsheet. The
// content is fixed at build time and independent of any parsed flags.
package rosetta

import (
	_ "embed"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

//go:embed rosetta.yaml
var sheetYAML []byte

type row struct {
	Unix       string `yaml:"unix"`
	Cmd        string `yaml:"cmd"`
	PowerShell string `yaml:"powershell"`
}

type group struct {
	Name string `yaml:"name"`
	Rows []row  `yaml:"rows"`
}

type sheet struct {
	Groups []group `yaml:"groups"`
}

var cheatsheet = mustLoadSheet()

func mustLoadSheet() sheet {
	var s sheet
	if err := yaml.Unmarshal(sheetYAML, &s); err != nil {
		panic(fmt.Sprintf("rosetta: bad embedded cheatsheet: %v", err))
	}
	return s
}

// Print writes the cheatsheet as an aligned three-column table.
func Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "UNIX\tCMD.EXE\tPOWERSHELL")
	for _, g := range cheatsheet.Groups {
		fmt.Fprintln(tw, "\t\t")
		for _, r := range g.Rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Unix, r.Cmd, r.PowerShell)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nAliases: ll = ls -l | la = ls -la | l = ls -F\nTip: use --explain with any flags to see their Windows translation.\n")
	return err
}
