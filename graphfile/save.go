package graphfile

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/gogpu/vortex"
)

// Marshal renders a graph as HCL document source. Nodes appear in
// insertion order and parameters in name order, so output is stable
// across runs.
func Marshal(g *vortex.Graph) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i, n := range g.Nodes() {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("node", []string{n.Op.Name(), n.ID})

		names := make([]string, 0, len(n.Params))
		for name := range n.Params {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			block.Body().SetAttributeValue(name, ctyFrom(n.Params[name]))
		}
	}

	for _, c := range g.Connections() {
		body.AppendNewline()
		block := body.AppendNewBlock("connect", nil)
		block.Body().SetAttributeValue("from", cty.StringVal(c.FromNode+"."+c.FromPort))
		block.Body().SetAttributeValue("to", cty.StringVal(c.ToNode+"."+c.ToPort))
	}

	return f.Bytes()
}

// Save writes a graph document to path.
func Save(g *vortex.Graph, path string) error {
	if err := os.WriteFile(path, Marshal(g), 0o644); err != nil {
		return fmt.Errorf("graphfile: failed to write %s: %w", path, err)
	}
	return nil
}

// ctyFrom converts a graph value to its document representation.
func ctyFrom(v vortex.Value) cty.Value {
	if v.Type == vortex.TypeFloat {
		return cty.NumberFloatVal(float64(v.V[0]))
	}
	n := v.Type.Components()
	elems := make([]cty.Value, n)
	for i := 0; i < n; i++ {
		elems[i] = cty.NumberFloatVal(float64(v.V[i]))
	}
	return cty.TupleVal(elems)
}
