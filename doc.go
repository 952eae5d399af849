// Package vortex provides shader-graph operator nodes and a compiler
// from node graphs to WGSL.
//
// # Overview
//
// vortex is a headless node-graph library for procedural shader
// authoring in the GoGPU ecosystem. Graphs are built from a catalog of
// operators (easing curves, noise, color blending), compiled to complete
// WGSL modules, and evaluated on the host for golden-output testing and
// CPU previews.
//
// # Quick Start
//
//	import "github.com/gogpu/vortex"
//
//	g := vortex.NewGraph()
//	g.AddNode("coords", "uv")
//	g.AddNode("edge", "smootherstep")
//	g.AddNode("screen", "output")
//	g.Connect("coords", "out", "edge", "t")
//	g.Connect("edge", "out", "screen", "color")
//
//	source, err := g.WGSL()      // complete WGSL module
//	val, err := g.Eval(0.5, 0.5) // same graph on the CPU
//
// # Architecture
//
// The library is organized into:
//   - Public API: Graph, Node, Operator, Value, the operator catalog
//   - wgsl: expression IR, module emitter, naga validation
//   - graphfile: declarative HCL graph documents
//   - preview: CPU rendering of graph output to images
//
// # Operators
//
// Built-in operators register themselves at init and are looked up by
// name: "uv", "const_float", "const_color", "noise", "smoothstep",
// "smootherstep", "mix", "output". External packages add operators with
// [Register].
//
// # Coordinate System
//
// Fragment coordinates are normalized to [0, 1] on both axes, (0, 0) at
// the bottom-left, matching the generated full-screen triangle shader.
package vortex

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
