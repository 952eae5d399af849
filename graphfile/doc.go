// Package graphfile loads and saves shader graphs as declarative HCL
// documents.
//
// A graph document lists node blocks, labeled with operator type and
// node id, and connect blocks routing "node.port" endpoints:
//
//	node "uv" "coords" {}
//
//	node "smootherstep" "edge" {
//	  low  = 0.2
//	  high = 0.8
//	}
//
//	node "output" "screen" {}
//
//	connect {
//	  from = "coords.out"
//	  to   = "edge.t"
//	}
//
//	connect {
//	  from = "edge.out"
//	  to   = "screen.color"
//	}
//
// Node attributes set constant input values: numbers for float ports,
// number lists for vector and color ports. Operator types resolve
// against the vortex registry at load time.
package graphfile
