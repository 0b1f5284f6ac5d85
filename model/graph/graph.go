// Package graph is the logical directed-graph view over a flow document.  It
// is stateless: every function is a pure query over the document except
// Reparent, which rewrites matching connectors in place.  Callers only need
// the model.Node capability surface, never the concrete node variants.
package graph

import (
	"github.com/flowmeta/flowmeta/model"
)

// Nodes enumerates every node-like entity of the flow: the start node first
// when present, then every element of every node-bearing collection in
// declared collection order, preserving collection-internal order.
func Nodes(flow *model.Flow) []model.Node {
	if flow == nil {
		return nil
	}
	var nodes []model.Node
	if flow.Start != nil {
		nodes = append(nodes, flow.Start)
	}
	for _, node := range flow.ActionCalls {
		nodes = append(nodes, node)
	}
	for _, node := range flow.ApexPluginCalls {
		nodes = append(nodes, node)
	}
	for _, node := range flow.Assignments {
		nodes = append(nodes, node)
	}
	for _, node := range flow.CollectionProcessors {
		nodes = append(nodes, node)
	}
	for _, node := range flow.CustomErrors {
		nodes = append(nodes, node)
	}
	for _, node := range flow.Decisions {
		nodes = append(nodes, node)
	}
	for _, node := range flow.DynamicChoiceSets {
		nodes = append(nodes, node)
	}
	for _, node := range flow.Loops {
		nodes = append(nodes, node)
	}
	for _, node := range flow.OrchestratedStages {
		nodes = append(nodes, node)
	}
	for _, node := range flow.RecordCreates {
		nodes = append(nodes, node)
	}
	for _, node := range flow.RecordDeletes {
		nodes = append(nodes, node)
	}
	for _, node := range flow.RecordLookups {
		nodes = append(nodes, node)
	}
	for _, node := range flow.RecordUpdates {
		nodes = append(nodes, node)
	}
	for _, node := range flow.Screens {
		nodes = append(nodes, node)
	}
	for _, node := range flow.Subflows {
		nodes = append(nodes, node)
	}
	for _, node := range flow.Transforms {
		nodes = append(nodes, node)
	}
	for _, node := range flow.Waits {
		nodes = append(nodes, node)
	}
	return nodes
}

// NodeNames returns the names of all named nodes in enumeration order.
func NodeNames(flow *model.Flow) []string {
	var names []string
	for _, node := range Nodes(flow) {
		if name := node.NodeName(); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Find returns the first node in enumeration order with the given name, or
// nil when no node matches.  The empty name never matches; the start node is
// typically nameless and is not reachable through it.
func Find(flow *model.Flow, name string) model.Node {
	if name == "" {
		return nil
	}
	for _, node := range Nodes(flow) {
		if node.NodeName() == name {
			return node
		}
	}
	return nil
}

// Connectors returns the node's outbound connectors in the fixed slot order
// documented on model.Node.
func Connectors(node model.Node) []*model.Connector {
	if node == nil {
		return nil
	}
	return node.Connectors()
}

// ParentNodes returns every node with at least one connector targeting the
// named child, in enumeration order.  A node referencing the child through
// several connectors appears once.  The result is empty, never an error,
// when nothing matches.
func ParentNodes(flow *model.Flow, name string) []model.Node {
	var parents []model.Node
	if name == "" {
		return parents
	}
	for _, node := range Nodes(flow) {
		for _, connector := range node.Connectors() {
			if connector.TargetReference == name {
				parents = append(parents, node)
				break
			}
		}
	}
	return parents
}

// Reparent rewrites, in place, every connector targeting source so that it
// targets target, and returns the number of rewritten connectors.  The node
// named source is itself untouched; applying the same rewrite again is a
// no-op.
func Reparent(flow *model.Flow, source, target string) int {
	rewritten := 0
	if source == "" {
		return rewritten
	}
	for _, node := range ParentNodes(flow, source) {
		for _, connector := range node.Connectors() {
			if connector.TargetReference == source {
				connector.Retarget(target)
				rewritten++
			}
		}
	}
	return rewritten
}
