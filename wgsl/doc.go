// Package wgsl renders shader-graph expressions to WGSL source text.
//
// The package provides a small expression IR ([Expr]), a module builder
// ([Module]) that assigns one let-binding per graph node, and a library of
// helper functions (smootherstep, gradient noise) that are included in the
// generated module only when an expression references them.
//
// Generated modules are complete shaders: a full-screen triangle vertex
// stage plus a fragment stage whose body is the compiled graph. Use
// [Validate] or [CompileToSPIRV] to check the output with naga.
package wgsl
