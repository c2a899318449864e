package translate

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed mappings.yaml
var mappingsYAML []byte

// Feature maps one boolean ls feature to its native fragments.
type Feature struct {
	Name       string `yaml:"name"`
	Dir        string `yaml:"dir"`
	PowerShell string `yaml:"powershell"`
	Describe   string `yaml:"describe"`
}

// SortRule maps a sort key to its dir switches (normal and reversed)
// and the Get-ChildItem property to sort on.
type SortRule struct {
	Key         string `yaml:"key"`
	Dir         string `yaml:"dir"`
	DirReversed string `yaml:"dirReversed"`
	Property    string `yaml:"property"`
	Describe    string `yaml:"describe"`
}

// Table is the full option mapping. It is loaded once at process start
// from the embedded document and never mutated.
type Table struct {
	Features []Feature  `yaml:"features"`
	Sorts    []SortRule `yaml:"sorts"`
}

var table = mustLoadTable()

func mustLoadTable() Table {
	var t Table
	if err := yaml.Unmarshal(mappingsYAML, &t); err != nil {
		panic(fmt.Sprintf("translate: bad embedded mappings: %v", err))
	}
	return t
}

func (t Table) feature(name string) Feature {
	for _, f := range t.Features {
		if f.Name == name {
			return f
		}
	}
	return Feature{}
}

func (t Table) sort(key string) (SortRule, bool) {
	for _, s := range t.Sorts {
		if s.Key == key {
			return s, true
		}
	}
	return SortRule{}, false
}
