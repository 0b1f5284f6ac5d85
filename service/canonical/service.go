// Package canonical produces a deterministically ordered copy of a flow
// document for reproducible serialization.  Every collection is sorted by
// element name with a locale-aware comparison; a nameless element sorts as
// the empty string, so it comes first, and equal names keep their relative
// input order.  Only an explicit allow-list of nested sequences is sorted
// (decision rules, screen fields and screen actions), deliberately narrower
// than the normalization schema.
package canonical

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/flowmeta/flowmeta/model"
)

// Service sorts flow documents into canonical order.
type Service struct {
	collator *collate.Collator
}

// Option customizes the ordering service.
type Option func(s *Service)

// WithCollator overrides the collator used for name comparison.
func WithCollator(collator *collate.Collator) Option {
	return func(s *Service) { s.collator = collator }
}

// New creates an ordering service.
func New(options ...Option) *Service {
	ret := &Service{
		collator: collate.New(language.English),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// named is the accessor every sortable element shares.
type named interface {
	NodeName() string
}

// sortedCopy returns a name-sorted copy of the collection; the input slice is
// left untouched and element pointers are shared with it.
func sortedCopy[T named](s *Service, items []T) []T {
	if len(items) == 0 {
		return items
	}
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return s.collator.CompareString(out[i].NodeName(), out[j].NodeName()) < 0
	})
	return out
}

// Apply returns a copy of the flow with every collection sorted into
// canonical order.  The original document is never mutated; applying the
// result again yields an identical document.
func (s *Service) Apply(flow *model.Flow) *model.Flow {
	if flow == nil {
		return nil
	}
	sorted := *flow

	sorted.ActionCalls = sortedCopy(s, flow.ActionCalls)
	sorted.ApexPluginCalls = sortedCopy(s, flow.ApexPluginCalls)
	sorted.Assignments = sortedCopy(s, flow.Assignments)
	sorted.CollectionProcessors = sortedCopy(s, flow.CollectionProcessors)
	sorted.CustomErrors = sortedCopy(s, flow.CustomErrors)
	sorted.Decisions = s.sortedDecisions(flow.Decisions)
	sorted.DynamicChoiceSets = sortedCopy(s, flow.DynamicChoiceSets)
	sorted.Loops = sortedCopy(s, flow.Loops)
	sorted.OrchestratedStages = sortedCopy(s, flow.OrchestratedStages)
	sorted.RecordCreates = sortedCopy(s, flow.RecordCreates)
	sorted.RecordDeletes = sortedCopy(s, flow.RecordDeletes)
	sorted.RecordLookups = sortedCopy(s, flow.RecordLookups)
	sorted.RecordUpdates = sortedCopy(s, flow.RecordUpdates)
	sorted.Screens = s.sortedScreens(flow.Screens)
	sorted.Subflows = sortedCopy(s, flow.Subflows)
	sorted.Transforms = sortedCopy(s, flow.Transforms)
	sorted.Waits = sortedCopy(s, flow.Waits)

	sorted.Choices = sortedCopy(s, flow.Choices)
	sorted.Constants = sortedCopy(s, flow.Constants)
	sorted.Environments = s.sortedStrings(flow.Environments)
	sorted.Formulas = sortedCopy(s, flow.Formulas)
	sorted.ProcessMetadataValues = s.sortedProcessMetadataValues(flow.ProcessMetadataValues)
	sorted.Stages = sortedCopy(s, flow.Stages)
	sorted.Steps = sortedCopy(s, flow.Steps)
	sorted.TextTemplates = sortedCopy(s, flow.TextTemplates)
	sorted.Variables = sortedCopy(s, flow.Variables)

	return &sorted
}

// sortedDecisions sorts the decisions and, per decision, its rules.  Each
// decision with rules is copied so the original keeps its rule order.
func (s *Service) sortedDecisions(decisions []*model.Decision) []*model.Decision {
	out := sortedCopy(s, decisions)
	for i, decision := range out {
		if len(decision.Rules) == 0 {
			continue
		}
		clone := *decision
		clone.Rules = sortedCopy(s, decision.Rules)
		out[i] = &clone
	}
	return out
}

// sortedScreens sorts the screens and, per screen, its top-level fields and
// actions.  Nested section fields keep their order; only the allow-listed
// sequences are canonicalized.
func (s *Service) sortedScreens(screens []*model.Screen) []*model.Screen {
	out := sortedCopy(s, screens)
	for i, screen := range out {
		if len(screen.Fields) == 0 && len(screen.Actions) == 0 {
			continue
		}
		clone := *screen
		clone.Fields = sortedCopy(s, screen.Fields)
		clone.Actions = sortedCopy(s, screen.Actions)
		out[i] = &clone
	}
	return out
}

func (s *Service) sortedStrings(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, len(values))
	copy(out, values)
	sort.SliceStable(out, func(i, j int) bool {
		return s.collator.CompareString(out[i], out[j]) < 0
	})
	return out
}

func (s *Service) sortedProcessMetadataValues(values []*model.ProcessMetadataValue) []*model.ProcessMetadataValue {
	if len(values) == 0 {
		return values
	}
	out := make([]*model.ProcessMetadataValue, len(values))
	copy(out, values)
	sort.SliceStable(out, func(i, j int) bool {
		return s.collator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
