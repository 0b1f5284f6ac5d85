// Package flowmeta reads, repairs and rewrites Flow metadata documents.
//
// A flow document is a tree of typed node collections wired together by
// named connectors.  The library normalizes the structurally ambiguous XML
// serialization into a canonical array-consistent model, and exposes a
// directed-graph view over the result so callers can query and rewire nodes
// without knowing the heterogeneous document schema.
//
// End-users typically interact through the high-level Service facade exposed
// by the root package:
//
//	srv := flowmeta.New()
//	flow, _ := srv.Load(ctx, "MyFlow.flow-meta.xml")
//	parents := graph.ParentNodes(flow, "Approve")
//	graph.Reparent(flow, "Approve", "Review")
//	_ = srv.Save(ctx, "MyFlow.flow-meta.xml", flow)
//
// For more details see the individual sub-packages.
package flowmeta
