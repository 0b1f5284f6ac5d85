// Package schema holds the declarative table driving normalization and
// canonical ordering of Flow documents.  The table ships as an embedded YAML
// document so extending coverage to a new nested structure means adding an
// entry, not code.  Callers must treat a Table as immutable; engines receive
// it at construction rather than reaching for package state.
package schema

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed schema.yaml
var builtin []byte

type (
	// Entry describes the nested treatment of one collection field: which
	// child fields must be sequences, which of those have entries of their
	// own, and optionally one child whose elements repeat the parent group
	// shape to unbounded depth.
	Entry struct {
		Fields    []string          `yaml:"fields,omitempty"`
		Nested    map[string]*Entry `yaml:"nested,omitempty"`
		Recursive string            `yaml:"recursive,omitempty"`
	}

	// Table is the full normalization schema.  ArrayFields is the flat list
	// of collection fields; Entries covers the subset needing nested
	// treatment; Singleton names the entry-node field, which holds at most
	// one object instead of a sequence.
	Table struct {
		Singleton   string            `yaml:"singleton"`
		ArrayFields []string          `yaml:"arrayFields"`
		Entries     map[string]*Entry `yaml:"entries"`
	}
)

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table parsed from the embedded document.  The
// returned value is shared; callers must not mutate it.
func Default() *Table {
	defaultOnce.Do(func() {
		table, err := Parse(builtin)
		if err != nil {
			panic(fmt.Sprintf("schema: invalid embedded table: %v", err))
		}
		defaultTable = table
	})
	return defaultTable
}

// Parse decodes a YAML schema document into a Table.
func Parse(data []byte) (*Table, error) {
	table := &Table{}
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("failed to parse schema table: %w", err)
	}
	return table, nil
}

// Entry returns the nested entry for a field, or nil when the field needs no
// deep treatment.
func (t *Table) Entry(field string) *Entry {
	return t.Entries[field]
}

// IsArrayField reports whether the field is one of the flat collection
// fields.
func (t *Table) IsArrayField(field string) bool {
	for _, candidate := range t.ArrayFields {
		if candidate == field {
			return true
		}
	}
	return false
}
