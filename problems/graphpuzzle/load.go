package graphpuzzle

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a Definition from r. Unknown fields are rejected.
// The result is not validated; pass it to New.
func LoadYAML(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &def, nil
}

// hclPuzzleFile is the top-level structure of a puzzle file for decoding.
//
//	name     = "kiwis-and-dogs"
//	vertices = ["A", "B"]
//
//	edge "A" "B" {
//	  cost = var.ab
//	  when = ["nobody(E)"]
//	  both = true
//	}
//
//	group "kiwi" {
//	  start = ["B"]
//	  goal  = "A"
//	}
type hclPuzzleFile struct {
	Name     string      `hcl:"name,optional"`
	Vertices []string    `hcl:"vertices"`
	Edges    []*hclEdge  `hcl:"edge,block"`
	Groups   []*hclGroup `hcl:"group,block"`
}

type hclEdge struct {
	From string   `hcl:"from,label"`
	To   string   `hcl:"to,label"`
	Cost float64  `hcl:"cost"`
	When []string `hcl:"when,optional"`
	Both bool     `hcl:"both,optional"`
}

type hclGroup struct {
	Name  string   `hcl:"name,label"`
	Start []string `hcl:"start"`
	Goal  string   `hcl:"goal"`
}

// LoadHCL parses src (named filename in diagnostics) as an HCL puzzle file.
// vars is exposed to expressions as the object var, so cost = var.ab reads
// vars["ab"]. Values are converted to the attribute types as HCL does, a
// string "3" becomes the number 3.
func LoadHCL(filename string, src []byte, vars map[string]cty.Value) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrDecode, filename, diags)
	}

	return decodeHCL(filename, file, vars)
}

// LoadHCLFile reads and parses the HCL puzzle file at path.
func LoadHCLFile(path string, vars map[string]cty.Value) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrDecode, path, diags)
	}

	return decodeHCL(path, file, vars)
}

// StringVars wraps plain string values for LoadHCL.
func StringVars(kv map[string]string) map[string]cty.Value {
	out := make(map[string]cty.Value, len(kv))
	for k, v := range kv {
		out[k] = cty.StringVal(v)
	}

	return out
}

func decodeHCL(filename string, file *hcl.File, vars map[string]cty.Value) (*Definition, error) {
	varObj := cty.EmptyObjectVal
	if len(vars) > 0 {
		varObj = cty.ObjectVal(vars)
	}
	evalCtx := &hcl.EvalContext{Variables: map[string]cty.Value{"var": varObj}}

	var parsed hclPuzzleFile
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL file %s: %w", ErrDecode, filename, diags)
	}

	def := &Definition{Name: parsed.Name, Vertices: parsed.Vertices}
	for _, e := range parsed.Edges {
		def.Edges = append(def.Edges, Edge{From: e.From, To: e.To, Cost: e.Cost, When: e.When, Both: e.Both})
	}
	for _, g := range parsed.Groups {
		def.Groups = append(def.Groups, Group{Name: g.Name, Start: g.Start, Goal: g.Goal})
	}

	return def, nil
}
