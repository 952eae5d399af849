package vortex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/vortex/wgsl"
)

// Graph errors.
var (
	// ErrCycle is returned when the graph contains a connection cycle.
	ErrCycle = errors.New("vortex: graph contains a cycle")

	// ErrNoOutput is returned when a graph has no "output" node.
	ErrNoOutput = errors.New("vortex: graph has no output node")

	// ErrUnknownNode is returned when a connection or parameter
	// references a node id not present in the graph.
	ErrUnknownNode = errors.New("vortex: unknown node")

	// ErrUnknownPort is returned when a connection or parameter names a
	// port the operator does not declare.
	ErrUnknownPort = errors.New("vortex: unknown port")

	// ErrPortConstant is returned when connecting to a constant-only
	// input.
	ErrPortConstant = errors.New("vortex: port accepts constants only")

	// ErrInputConnected is returned when connecting to an input that
	// already has an incoming connection.
	ErrInputConnected = errors.New("vortex: input already connected")
)

// Node is one operator instance in a graph. Params hold constant values
// for inputs without an incoming connection.
type Node struct {
	ID     string
	Op     Operator
	Params map[string]Value
}

// Connection routes one node's output port to another node's input port.
type Connection struct {
	FromNode, FromPort string
	ToNode, ToPort     string
}

// Graph is a directed acyclic network of operator nodes. Graphs are not
// safe for concurrent mutation; Eval and WGSL on an unchanging graph are
// safe from any number of goroutines.
type Graph struct {
	nodes map[string]*Node
	order []string // insertion order, for deterministic output
	conns []Connection
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: map[string]*Node{}}
}

// AddNode creates a node with the given id running the named operator
// from the registry.
func (g *Graph) AddNode(id, opName string) (*Node, error) {
	if id == "" {
		return nil, errors.New("vortex: node id must not be empty")
	}
	if _, exists := g.nodes[id]; exists {
		return nil, fmt.Errorf("vortex: node %q already exists", id)
	}
	op, ok := Lookup(opName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, opName)
	}
	n := &Node{ID: id, Op: op, Params: map[string]Value{}}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n, nil
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// Nodes returns the graph's nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Connections returns a copy of the graph's connections.
func (g *Graph) Connections() []Connection {
	return append([]Connection(nil), g.conns...)
}

// SetParam sets a constant input value on a node, converting it to the
// port's type.
func (g *Graph) SetParam(nodeID, port string, v Value) error {
	n := g.nodes[nodeID]
	if n == nil {
		return fmt.Errorf("%w: %q", ErrUnknownNode, nodeID)
	}
	p, ok := inputPort(n.Op, port)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownPort, nodeID, port)
	}
	n.Params[port] = v.Convert(p.Type)
	return nil
}

// Connect routes fromNode's output port to toNode's input port. The
// target input must exist, must not be constant-only, and must not
// already have an incoming connection; value types are coerced with
// shader promotion rules, so any two port types are connectable.
func (g *Graph) Connect(fromNode, fromPort, toNode, toPort string) error {
	src := g.nodes[fromNode]
	if src == nil {
		return fmt.Errorf("%w: %q", ErrUnknownNode, fromNode)
	}
	dst := g.nodes[toNode]
	if dst == nil {
		return fmt.Errorf("%w: %q", ErrUnknownNode, toNode)
	}
	if _, ok := outputPort(src.Op, fromPort); !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownPort, fromNode, fromPort)
	}
	p, ok := inputPort(dst.Op, toPort)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownPort, toNode, toPort)
	}
	if p.ConstantOnly {
		return fmt.Errorf("%w: %s.%s", ErrPortConstant, toNode, toPort)
	}
	for _, c := range g.conns {
		if c.ToNode == toNode && c.ToPort == toPort {
			return fmt.Errorf("%w: %s.%s", ErrInputConnected, toNode, toPort)
		}
	}
	g.conns = append(g.conns, Connection{
		FromNode: fromNode, FromPort: fromPort,
		ToNode: toNode, ToPort: toPort,
	})
	return nil
}

func inputPort(op Operator, name string) (Port, bool) {
	for _, p := range op.Inputs() {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}

func outputPort(op Operator, name string) (Port, bool) {
	for _, p := range op.Outputs() {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}

// outputNode returns the graph's terminal node: the unique node whose
// operator has no outputs.
func (g *Graph) outputNode() (*Node, error) {
	var out *Node
	for _, id := range g.order {
		n := g.nodes[id]
		if len(n.Op.Outputs()) == 0 {
			if out != nil {
				return nil, fmt.Errorf("vortex: multiple output nodes (%q, %q)", out.ID, n.ID)
			}
			out = n
		}
	}
	if out == nil {
		return nil, ErrNoOutput
	}
	return out, nil
}

// sorted returns the nodes in dependency order (sources first) using
// Kahn's algorithm over insertion order, so output is deterministic.
func (g *Graph) sorted() ([]*Node, error) {
	indegree := make(map[string]int, len(g.nodes))
	for _, id := range g.order {
		indegree[id] = 0
	}
	for _, c := range g.conns {
		indegree[c.ToNode]++
	}

	var queue []string
	for _, id := range g.order {
		if indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	out := make([]*Node, 0, len(g.nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		out = append(out, g.nodes[id])
		for _, c := range g.conns {
			if c.FromNode != id {
				continue
			}
			indegree[c.ToNode]--
			if indegree[c.ToNode] == 0 {
				queue = append(queue, c.ToNode)
			}
		}
	}

	if len(out) != len(g.nodes) {
		return nil, ErrCycle
	}
	return out, nil
}

// Validate checks that the graph is acyclic and has exactly one output
// node.
func (g *Graph) Validate() error {
	if _, err := g.outputNode(); err != nil {
		return err
	}
	_, err := g.sorted()
	return err
}

// incoming returns the connection feeding the given input, if any.
func (g *Graph) incoming(nodeID, port string) (Connection, bool) {
	for _, c := range g.conns {
		if c.ToNode == nodeID && c.ToPort == port {
			return c, true
		}
	}
	return Connection{}, false
}

// Eval evaluates the graph on the host at normalized fragment coordinate
// (u, v) and returns the output node's result. Each node is computed
// once per call; the graph itself is not mutated.
func (g *Graph) Eval(u, v float32) (Value, error) {
	out, err := g.outputNode()
	if err != nil {
		return Value{}, err
	}
	sorted, err := g.sorted()
	if err != nil {
		return Value{}, err
	}

	fc := &FragContext{U: u, V: v}
	results := make(map[string]Value, len(sorted))
	for _, n := range sorted {
		inputs := n.Op.Inputs()
		args := make([]Value, len(inputs))
		for i, p := range inputs {
			args[i] = g.resolveValue(n, p, results)
		}
		results[n.ID] = n.Op.Eval(fc, args)
	}
	return results[out.ID], nil
}

// resolveValue produces the value for one input port: connection result,
// node parameter, or port default, converted to the port type.
func (g *Graph) resolveValue(n *Node, p Port, results map[string]Value) Value {
	if c, ok := g.incoming(n.ID, p.Name); ok {
		return results[c.FromNode].Convert(p.Type)
	}
	if v, ok := n.Params[p.Name]; ok {
		return v.Convert(p.Type)
	}
	return p.Default.Convert(p.Type)
}

// WGSL compiles the graph to a complete WGSL module: one let-binding per
// node in dependency order, feeding the fragment stage's return value.
func (g *Graph) WGSL() (string, error) {
	out, err := g.outputNode()
	if err != nil {
		return "", err
	}
	sorted, err := g.sorted()
	if err != nil {
		return "", err
	}

	m := wgsl.NewModule()
	locals := make(map[string]wgsl.Expr, len(sorted))
	for _, n := range sorted {
		inputs := n.Op.Inputs()
		args := make([]wgsl.Expr, len(inputs))
		for i, p := range inputs {
			args[i] = g.resolveExpr(n, p, locals)
		}
		e := n.Op.Gen(args)
		if n == out {
			locals[n.ID] = e
			continue
		}
		locals[n.ID] = m.Let(localName(n), e)
	}

	source, err := m.Source(convertExpr(locals[out.ID], TypeColor))
	if err != nil {
		return "", err
	}
	Logger().Debug("graph compiled", "nodes", len(sorted), "bytes", len(source))
	return source, nil
}

// resolveExpr produces the expression for one input port: upstream local,
// node parameter, or port default, converted to the port type.
func (g *Graph) resolveExpr(n *Node, p Port, locals map[string]wgsl.Expr) wgsl.Expr {
	if c, ok := g.incoming(n.ID, p.Name); ok {
		return convertExpr(locals[c.FromNode], p.Type)
	}
	v := p.Default
	if pv, ok := n.Params[p.Name]; ok {
		v = pv
	}
	return constExpr(v.Convert(p.Type))
}

// constExpr renders a value as a literal expression.
func constExpr(v Value) wgsl.Expr {
	if v.Type == TypeFloat {
		return wgsl.Lit{V: v.V[0]}
	}
	n := v.Type.Components()
	args := make([]wgsl.Expr, n)
	for i := 0; i < n; i++ {
		args[i] = wgsl.Lit{V: v.V[i]}
	}
	return wgsl.Vec{T: v.Type.WGSL(), Args: args}
}

// localName derives the WGSL identifier for a node's let-binding.
func localName(n *Node) string {
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, n.ID)
	return "n_" + id
}
