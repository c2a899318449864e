package translate

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE []byte

// ValidateMappings checks the embedded mapping document against its
// schema. The document ships inside the binary, so this guards the
// build rather than runtime input.
func ValidateMappings() error {
	ctx := cuecontext.New()
	schema := ctx.CompileBytes(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("invalid mapping schema: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(mappingsYAML, &doc); err != nil {
		return fmt.Errorf("invalid mapping document: %v", err)
	}
	v := schema.Unify(ctx.Encode(doc))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("mapping document does not match schema: %v", err)
	}
	return nil
}
