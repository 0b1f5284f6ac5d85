// Package normalizer repairs the structurally ambiguous document trees
// produced by the XML codec into the canonical array-consistent shape: every
// field the schema table declares becomes a sequence, to arbitrary nesting
// depth.  The pass is idempotent and safe on partially normalized input.
package normalizer

import (
	"github.com/flowmeta/flowmeta/internal/tree"
	"github.com/flowmeta/flowmeta/model/schema"
)

// Service applies a schema table to generic document trees.
type Service struct {
	table *schema.Table
}

// New creates a normalizer for the given table; a nil table selects the
// built-in one.
func New(table *schema.Table) *Service {
	if table == nil {
		table = schema.Default()
	}
	return &Service{table: table}
}

// Table returns the schema table the service normalizes against.
func (s *Service) Table() *schema.Table {
	return s.table
}

// Normalize mutates the parsed document tree in place so that every
// schema-declared field holds a sequence: singletons are wrapped, absent or
// null values become empty sequences, and nested entries recurse per element.
func (s *Service) Normalize(document map[string]interface{}) {
	if document == nil {
		return
	}
	for _, field := range s.table.ArrayFields {
		tree.CoerceSequence(document, field)
	}
	for field, entry := range s.table.Entries {
		s.normalizeField(document, field, entry)
	}
}

// normalizeField applies an entry to one field of a container.  The singleton
// entry-node field holds at most one object and is normalized directly;
// every other field is coerced to a sequence first and normalized per
// element.
func (s *Service) normalizeField(container map[string]interface{}, field string, entry *schema.Entry) {
	if field == s.table.Singleton {
		if object := tree.Object(container[field]); object != nil {
			s.applyEntry(object, entry)
		}
		return
	}
	tree.CoerceSequence(container, field)
	tree.Items(container, field, func(object map[string]interface{}) {
		s.applyEntry(object, entry)
	})
}

// applyEntry normalizes one element object against an entry: declared child
// fields become sequences, nested entries recurse into their child elements,
// and a recursive field reprocesses its elements with the same entry so that
// self-similar groups normalize to unbounded depth.  An empty recursive
// sequence short-circuits.
func (s *Service) applyEntry(object map[string]interface{}, entry *schema.Entry) {
	for _, child := range entry.Fields {
		tree.CoerceSequence(object, child)
	}
	for child, nested := range entry.Nested {
		tree.CoerceSequence(object, child)
		tree.Items(object, child, func(element map[string]interface{}) {
			s.applyEntry(element, nested)
		})
	}
	if entry.Recursive != "" {
		tree.Items(object, entry.Recursive, func(element map[string]interface{}) {
			s.applyEntry(element, entry)
		})
	}
}
