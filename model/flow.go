package model

type (
	// Flow is the root document entity.  Every collection field is a sequence
	// after normalization; Start is the distinguished entry node and belongs
	// to no collection.  Field order below is the declared collection order
	// the graph view enumerates in.
	Flow struct {
		// Source records where the document came from; it is never serialized.
		Source *Source `json:"-"`

		FullName       string `json:"fullName,omitempty"`
		Label          string `json:"label,omitempty"`
		Description    string `json:"description,omitempty"`
		APIVersion     string `json:"apiVersion,omitempty"`
		InterviewLabel string `json:"interviewLabel,omitempty"`
		ProcessType    string `json:"processType,omitempty"`
		Status         string `json:"status,omitempty"`

		Start *Start `json:"start,omitempty"`

		// Node-bearing collections, in declared enumeration order.
		ActionCalls          []*ActionCall          `json:"actionCalls,omitempty"`
		ApexPluginCalls      []*ApexPluginCall      `json:"apexPluginCalls,omitempty"`
		Assignments          []*Assignment          `json:"assignments,omitempty"`
		CollectionProcessors []*CollectionProcessor `json:"collectionProcessors,omitempty"`
		CustomErrors         []*CustomError         `json:"customErrors,omitempty"`
		Decisions            []*Decision            `json:"decisions,omitempty"`
		DynamicChoiceSets    []*DynamicChoiceSet    `json:"dynamicChoiceSets,omitempty"`
		Loops                []*Loop                `json:"loops,omitempty"`
		OrchestratedStages   []*OrchestratedStage   `json:"orchestratedStages,omitempty"`
		RecordCreates        []*RecordCreate        `json:"recordCreates,omitempty"`
		RecordDeletes        []*RecordDelete        `json:"recordDeletes,omitempty"`
		RecordLookups        []*RecordLookup        `json:"recordLookups,omitempty"`
		RecordUpdates        []*RecordUpdate        `json:"recordUpdates,omitempty"`
		Screens              []*Screen              `json:"screens,omitempty"`
		Subflows             []*Subflow             `json:"subflows,omitempty"`
		Transforms           []*Transform           `json:"transforms,omitempty"`
		Waits                []*Wait                `json:"waits,omitempty"`

		// Auxiliary collections; not part of the node graph.
		Choices               []*Choice               `json:"choices,omitempty"`
		Constants             []*Constant             `json:"constants,omitempty"`
		Environments          []string                `json:"environments,omitempty"`
		Formulas              []*Formula              `json:"formulas,omitempty"`
		ProcessMetadataValues []*ProcessMetadataValue `json:"processMetadataValues,omitempty"`
		Stages                []*Stage                `json:"stages,omitempty"`
		Steps                 []*Step                 `json:"steps,omitempty"`
		TextTemplates         []*TextTemplate         `json:"textTemplates,omitempty"`
		Variables             []*Variable             `json:"variables,omitempty"`

		StartElementReference string `json:"startElementReference,omitempty"`
	}

	// Source provides information about the origin of a flow document.
	Source struct {
		URL  string
		Name string
	}

	// Choice is a static screen choice.
	Choice struct {
		Element
		ChoiceText string `json:"choiceText,omitempty"`
		DataType   string `json:"dataType,omitempty"`
		Value      *Value `json:"value,omitempty"`
	}

	// Constant is an immutable named value.
	Constant struct {
		Element
		DataType string `json:"dataType,omitempty"`
		Value    *Value `json:"value,omitempty"`
	}

	// Formula is a named expression evaluated on demand.
	Formula struct {
		Element
		DataType   string `json:"dataType,omitempty"`
		Expression string `json:"expression,omitempty"`
		Scale      string `json:"scale,omitempty"`
	}

	// ProcessMetadataValue is an opaque process annotation.
	ProcessMetadataValue struct {
		Name  string `json:"name,omitempty"`
		Value *Value `json:"value,omitempty"`
	}

	// Stage is a declarative progress marker.
	Stage struct {
		Element
		IsActive   string `json:"isActive,omitempty"`
		StageOrder string `json:"stageOrder,omitempty"`
	}

	// Step is a legacy placeholder element retained for older documents.
	Step struct {
		Element
	}

	// TextTemplate is a reusable text block.
	TextTemplate struct {
		Element
		IsViewedAsPlainText string `json:"isViewedAsPlainText,omitempty"`
		Text                string `json:"text,omitempty"`
	}

	// Variable is a typed mutable slot.
	Variable struct {
		Element
		DataType     string `json:"dataType,omitempty"`
		ObjectType   string `json:"objectType,omitempty"`
		IsCollection string `json:"isCollection,omitempty"`
		IsInput      string `json:"isInput,omitempty"`
		IsOutput     string `json:"isOutput,omitempty"`
		Value        *Value `json:"value,omitempty"`
	}
)

// NewFlow creates an empty flow with the given API name.
func NewFlow(name string) *Flow {
	return &Flow{FullName: name, Source: &Source{Name: name}}
}

// WithStart sets the entry node.
func (f *Flow) WithStart(start *Start) *Flow {
	f.Start = start
	return f
}

// WithConnector sets the direct connector of the start node.
func (s *Start) WithConnector(target string) *Start {
	s.Connector = &Connector{TargetReference: target}
	return s
}

// AddRule appends a rule to the decision and returns the decision.
func (d *Decision) AddRule(rule *Rule) *Decision {
	d.Rules = append(d.Rules, rule)
	return d
}

// WithDefaultConnector sets the decision fallback edge.
func (d *Decision) WithDefaultConnector(target string) *Decision {
	d.DefaultConnector = &Connector{TargetReference: target}
	return d
}

// WithConnector sets the assignment outbound edge.
func (a *Assignment) WithConnector(target string) *Assignment {
	a.Connector = &Connector{TargetReference: target}
	return a
}
