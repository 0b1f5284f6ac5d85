// Package model contains the in-memory representation of Flow metadata
// documents and the supporting element types.
//
// A Flow is typically loaded from its XML document into the structures
// defined here.  Node-bearing collections (decisions, screens, assignments,
// record operations and so on) hold the graph vertices; the `graph`
// sub-package provides uniform traversal and rewiring over them through the
// Node capability interface.
package model
