package graphfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/gogpu/vortex"
)

// Ext is the conventional file extension for graph documents.
const Ext = ".vortex.hcl"

// hclNode represents one `node "type" "id"` block. Parameters are left
// as a raw body and decoded against the operator's ports.
type hclNode struct {
	Type string   `hcl:"type,label"`
	ID   string   `hcl:"id,label"`
	Body hcl.Body `hcl:",remain"`
}

// hclConnect represents one `connect` block.
type hclConnect struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// hclGraphFile represents the top-level structure of a graph document.
type hclGraphFile struct {
	Nodes    []*hclNode    `hcl:"node,block"`
	Connects []*hclConnect `hcl:"connect,block"`
}

// Load parses the graph document at path and builds a graph against the
// operator registry.
func Load(path string) (*vortex.Graph, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to parse %s: %w", path, diags)
	}
	return build(file, path)
}

// Parse builds a graph from in-memory document source. filename is used
// in diagnostics only.
func Parse(src []byte, filename string) (*vortex.Graph, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to parse %s: %w", filename, diags)
	}
	return build(file, filename)
}

func build(file *hcl.File, filename string) (*vortex.Graph, error) {
	var doc hclGraphFile
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to decode %s: %w", filename, diags)
	}

	g := vortex.NewGraph()
	for _, hn := range doc.Nodes {
		n, err := g.AddNode(hn.ID, hn.Type)
		if err != nil {
			return nil, fmt.Errorf("graphfile: %s: %w", filename, err)
		}
		if err := decodeParams(g, n, hn.Body); err != nil {
			return nil, fmt.Errorf("graphfile: %s: node %q: %w", filename, hn.ID, err)
		}
	}

	for _, hc := range doc.Connects {
		fromNode, fromPort, err := splitEndpoint(hc.From)
		if err != nil {
			return nil, fmt.Errorf("graphfile: %s: %w", filename, err)
		}
		toNode, toPort, err := splitEndpoint(hc.To)
		if err != nil {
			return nil, fmt.Errorf("graphfile: %s: %w", filename, err)
		}
		if err := g.Connect(fromNode, fromPort, toNode, toPort); err != nil {
			return nil, fmt.Errorf("graphfile: %s: %w", filename, err)
		}
	}

	vortex.Logger().Debug("graph document loaded",
		"file", filename, "nodes", len(doc.Nodes), "connections", len(doc.Connects))
	return g, nil
}

// decodeParams applies a node block's attributes as constant input
// values.
func decodeParams(g *vortex.Graph, n *vortex.Node, body hcl.Body) error {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("invalid parameters: %w", diags)
	}

	// Sorted for deterministic error reporting.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cv, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("parameter %q: %w", name, diags)
		}
		v, err := valueFrom(cv)
		if err != nil {
			return fmt.Errorf("parameter %q: %w", name, err)
		}
		if err := g.SetParam(n.ID, name, v); err != nil {
			return err
		}
	}
	return nil
}

// valueFrom converts a decoded HCL value to a graph value: numbers to
// scalars, number lists to vectors by length. The port's own type
// coerces further on assignment.
func valueFrom(cv cty.Value) (vortex.Value, error) {
	t := cv.Type()
	switch {
	case t == cty.Number:
		f, _ := cv.AsBigFloat().Float64()
		return vortex.Float(float32(f)), nil

	case t.IsTupleType() || t.IsListType():
		var comps []float32
		for it := cv.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			if ev.Type() != cty.Number {
				return vortex.Value{}, fmt.Errorf("vector component must be a number, got %s", ev.Type().FriendlyName())
			}
			f, _ := ev.AsBigFloat().Float64()
			comps = append(comps, float32(f))
		}
		switch len(comps) {
		case 2:
			return vortex.Vec2Value(comps[0], comps[1]), nil
		case 3:
			return vortex.Vec3Value(comps[0], comps[1], comps[2]), nil
		case 4:
			return vortex.Vec4Value(comps[0], comps[1], comps[2], comps[3]), nil
		}
		return vortex.Value{}, fmt.Errorf("vector must have 2-4 components, got %d", len(comps))
	}
	return vortex.Value{}, fmt.Errorf("unsupported parameter type %s", t.FriendlyName())
}

// splitEndpoint parses a "node.port" reference.
func splitEndpoint(s string) (node, port string, err error) {
	node, port, ok := strings.Cut(s, ".")
	if !ok || node == "" || port == "" {
		return "", "", fmt.Errorf("endpoint %q must have the form \"node.port\"", s)
	}
	return node, port, nil
}
