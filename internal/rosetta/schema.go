package rosetta

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE []byte

// ValidateSheet checks the embedded cheatsheet against its schema.
// Every row must carry all three columns; absent YAML keys would
// otherwise decode to "" and render as empty cells.
func ValidateSheet() error {
	ctx := cuecontext.New()
	schema := ctx.CompileBytes(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("invalid cheatsheet schema: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(sheetYAML, &doc); err != nil {
		return fmt.Errorf("invalid cheatsheet document: %v", err)
	}
	v := schema.Unify(ctx.Encode(doc))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("cheatsheet document does not match schema: %v", err)
	}
	return nil
}
