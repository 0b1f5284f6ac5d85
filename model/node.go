package model

// Node is the capability surface the graph view operates on.  Every node-like
// entity exposes its stable name and its outbound connectors in the fixed slot
// order: connector, defaultConnector, nextValueConnector, noMoreValuesConnector,
// faultConnector, then rule, scheduled-path and wait-event connectors in their
// declaration order.  Unset slots are omitted, never padded.
type Node interface {
	NodeName() string
	Connectors() []*Connector
}

type (
	// Start is the distinguished entry node.  It lives outside every
	// collection and a document holds at most one.
	Start struct {
		Element
		TriggerType       string           `json:"triggerType,omitempty"`
		Object            string           `json:"object,omitempty"`
		RecordTriggerType string           `json:"recordTriggerType,omitempty"`
		Filters           []*Filter        `json:"filters,omitempty"`
		Schedule          *Schedule        `json:"schedule,omitempty"`
		ScheduledPaths    []*ScheduledPath `json:"scheduledPaths,omitempty"`
		Connector         *Connector       `json:"connector,omitempty"`
	}

	// Schedule carries the recurrence of a scheduled start.
	Schedule struct {
		StartDate string `json:"startDate,omitempty"`
		StartTime string `json:"startTime,omitempty"`
		Frequency string `json:"frequency,omitempty"`
	}

	// Decision routes execution through the first matching rule, falling back
	// to the default connector.
	Decision struct {
		Element
		DefaultConnector      *Connector `json:"defaultConnector,omitempty"`
		DefaultConnectorLabel string     `json:"defaultConnectorLabel,omitempty"`
		Rules                 []*Rule    `json:"rules,omitempty"`
	}

	// Screen presents fields to a user; nested fields form sections that can
	// recurse arbitrarily deep.
	Screen struct {
		Element
		AllowBack   string          `json:"allowBack,omitempty"`
		AllowFinish string          `json:"allowFinish,omitempty"`
		AllowPause  string          `json:"allowPause,omitempty"`
		Fields      []*ScreenField  `json:"fields,omitempty"`
		Actions     []*ScreenAction `json:"actions,omitempty"`
		Connector   *Connector      `json:"connector,omitempty"`
	}

	// ScreenField is a single screen input, display element or section; a
	// section holds further fields.
	ScreenField struct {
		Element
		FieldType        string         `json:"fieldType,omitempty"`
		FieldText        string         `json:"fieldText,omitempty"`
		DataType         string         `json:"dataType,omitempty"`
		IsRequired       string         `json:"isRequired,omitempty"`
		ChoiceReferences []string       `json:"choiceReferences,omitempty"`
		InputParameters  []*Parameter   `json:"inputParameters,omitempty"`
		Fields           []*ScreenField `json:"fields,omitempty"`
	}

	// ScreenAction binds a screen component to an invocable action.
	ScreenAction struct {
		Element
		ActionName      string       `json:"actionName,omitempty"`
		InputParameters []*Parameter `json:"inputParameters,omitempty"`
	}

	// Assignment applies a list of variable mutations, then continues.
	Assignment struct {
		Element
		AssignmentItems []*AssignmentItem `json:"assignmentItems,omitempty"`
		Connector       *Connector        `json:"connector,omitempty"`
	}

	// RecordLookup reads matching records into an output reference.
	RecordLookup struct {
		Element
		Object          string     `json:"object,omitempty"`
		Filters         []*Filter  `json:"filters,omitempty"`
		QueriedFields   []string   `json:"queriedFields,omitempty"`
		OutputReference string     `json:"outputReference,omitempty"`
		Connector       *Connector `json:"connector,omitempty"`
		FaultConnector  *Connector `json:"faultConnector,omitempty"`
	}

	// RecordCreate inserts a record built from input assignments.
	RecordCreate struct {
		Element
		Object           string             `json:"object,omitempty"`
		InputAssignments []*InputAssignment `json:"inputAssignments,omitempty"`
		InputReference   string             `json:"inputReference,omitempty"`
		Connector        *Connector         `json:"connector,omitempty"`
		FaultConnector   *Connector         `json:"faultConnector,omitempty"`
	}

	// RecordUpdate rewrites matching records with input assignments.
	RecordUpdate struct {
		Element
		Object           string             `json:"object,omitempty"`
		Filters          []*Filter          `json:"filters,omitempty"`
		InputAssignments []*InputAssignment `json:"inputAssignments,omitempty"`
		InputReference   string             `json:"inputReference,omitempty"`
		Connector        *Connector         `json:"connector,omitempty"`
		FaultConnector   *Connector         `json:"faultConnector,omitempty"`
	}

	// RecordDelete removes matching records.
	RecordDelete struct {
		Element
		Object         string     `json:"object,omitempty"`
		Filters        []*Filter  `json:"filters,omitempty"`
		InputReference string     `json:"inputReference,omitempty"`
		Connector      *Connector `json:"connector,omitempty"`
		FaultConnector *Connector `json:"faultConnector,omitempty"`
	}

	// Subflow invokes another flow and maps its inputs and outputs.
	Subflow struct {
		Element
		FlowName          string       `json:"flowName,omitempty"`
		InputAssignments  []*Parameter `json:"inputAssignments,omitempty"`
		OutputAssignments []*Parameter `json:"outputAssignments,omitempty"`
		Connector         *Connector   `json:"connector,omitempty"`
	}

	// ActionCall invokes a declared action.
	ActionCall struct {
		Element
		ActionName       string       `json:"actionName,omitempty"`
		ActionType       string       `json:"actionType,omitempty"`
		InputParameters  []*Parameter `json:"inputParameters,omitempty"`
		OutputParameters []*Parameter `json:"outputParameters,omitempty"`
		Connector        *Connector   `json:"connector,omitempty"`
		FaultConnector   *Connector   `json:"faultConnector,omitempty"`
	}

	// ApexPluginCall invokes an apex plugin class.
	ApexPluginCall struct {
		Element
		ApexClass        string       `json:"apexClass,omitempty"`
		InputParameters  []*Parameter `json:"inputParameters,omitempty"`
		OutputParameters []*Parameter `json:"outputParameters,omitempty"`
		Connector        *Connector   `json:"connector,omitempty"`
		FaultConnector   *Connector   `json:"faultConnector,omitempty"`
	}

	// Wait suspends until one of its events fires; the default connector is
	// taken when no event condition holds.
	Wait struct {
		Element
		WaitEvents            []*WaitEvent `json:"waitEvents,omitempty"`
		DefaultConnector      *Connector   `json:"defaultConnector,omitempty"`
		DefaultConnectorLabel string       `json:"defaultConnectorLabel,omitempty"`
		FaultConnector        *Connector   `json:"faultConnector,omitempty"`
	}

	// Transform reshapes a source value into a target shape.
	Transform struct {
		Element
		ObjectType      string            `json:"objectType,omitempty"`
		DataType        string            `json:"dataType,omitempty"`
		TransformValues []*TransformValue `json:"transformValues,omitempty"`
		Connector       *Connector        `json:"connector,omitempty"`
	}

	// TransformValue groups the per-target actions of a transform node.
	TransformValue struct {
		TransformValueActions []*TransformValueAction `json:"transformValueActions,omitempty"`
	}

	// TransformValueAction is one mapping step of a transform value.
	TransformValueAction struct {
		TransformType      string       `json:"transformType,omitempty"`
		OutputFieldApiName string       `json:"outputFieldApiName,omitempty"`
		Value              *Value       `json:"value,omitempty"`
		InputParameters    []*Parameter `json:"inputParameters,omitempty"`
	}

	// OrchestratedStage runs interactive or background steps as one stage of
	// an orchestration.
	OrchestratedStage struct {
		Element
		StageSteps     []*StageStep `json:"stageSteps,omitempty"`
		ExitConditions []*Condition `json:"exitConditions,omitempty"`
		Connector      *Connector   `json:"connector,omitempty"`
		FaultConnector *Connector   `json:"faultConnector,omitempty"`
	}

	// StageStep is a single unit of work inside an orchestrated stage.
	StageStep struct {
		Element
		ActionName       string       `json:"actionName,omitempty"`
		ActionType       string       `json:"actionType,omitempty"`
		EntryConditions  []*Condition `json:"entryConditions,omitempty"`
		ExitConditions   []*Condition `json:"exitConditions,omitempty"`
		InputParameters  []*Parameter `json:"inputParameters,omitempty"`
		OutputParameters []*Parameter `json:"outputParameters,omitempty"`
	}

	// Loop iterates a collection, taking the next-value connector per element
	// and the no-more-values connector on exhaustion.
	Loop struct {
		Element
		CollectionReference   string     `json:"collectionReference,omitempty"`
		IterationOrder        string     `json:"iterationOrder,omitempty"`
		NextValueConnector    *Connector `json:"nextValueConnector,omitempty"`
		NoMoreValuesConnector *Connector `json:"noMoreValuesConnector,omitempty"`
	}

	// CollectionProcessor filters or sorts a collection in one pass.
	CollectionProcessor struct {
		Element
		CollectionProcessorType    string       `json:"collectionProcessorType,omitempty"`
		CollectionReference        string       `json:"collectionReference,omitempty"`
		AssignNextValueToReference string       `json:"assignNextValueToReference,omitempty"`
		ConditionLogic             string       `json:"conditionLogic,omitempty"`
		Conditions                 []*Condition `json:"conditions,omitempty"`
		Connector                  *Connector   `json:"connector,omitempty"`
	}

	// CustomError raises a custom fault with one or more messages.
	CustomError struct {
		Element
		CustomErrorMessages []*CustomErrorMessage `json:"customErrorMessages,omitempty"`
		Connector           *Connector            `json:"connector,omitempty"`
		FaultConnector      *Connector            `json:"faultConnector,omitempty"`
	}

	// CustomErrorMessage is a single message carried by a custom error node.
	CustomErrorMessage struct {
		ErrorMessage   string `json:"errorMessage,omitempty"`
		FieldSelection string `json:"fieldSelection,omitempty"`
		IsFieldError   string `json:"isFieldError,omitempty"`
	}

	// DynamicChoiceSet derives screen choices from records; it carries no
	// connectors but still participates in node enumeration.
	DynamicChoiceSet struct {
		Element
		DataType          string              `json:"dataType,omitempty"`
		DisplayField      string              `json:"displayField,omitempty"`
		Object            string              `json:"object,omitempty"`
		ValueField        string              `json:"valueField,omitempty"`
		Filters           []*Filter           `json:"filters,omitempty"`
		OutputAssignments []*OutputAssignment `json:"outputAssignments,omitempty"`
	}
)

func appendConnector(dst []*Connector, c *Connector) []*Connector {
	if c == nil {
		return dst
	}
	return append(dst, c)
}

// Connectors yields the direct connector followed by scheduled-path
// connectors in path order.
func (s *Start) Connectors() []*Connector {
	out := appendConnector(nil, s.Connector)
	for _, path := range s.ScheduledPaths {
		out = appendConnector(out, path.Connector)
	}
	return out
}

// Connectors yields the default connector followed by rule connectors in rule
// order.
func (d *Decision) Connectors() []*Connector {
	out := appendConnector(nil, d.DefaultConnector)
	for _, rule := range d.Rules {
		out = appendConnector(out, rule.Connector)
	}
	return out
}

func (s *Screen) Connectors() []*Connector {
	return appendConnector(nil, s.Connector)
}

func (a *Assignment) Connectors() []*Connector {
	return appendConnector(nil, a.Connector)
}

func (r *RecordLookup) Connectors() []*Connector {
	return appendConnector(appendConnector(nil, r.Connector), r.FaultConnector)
}

func (r *RecordCreate) Connectors() []*Connector {
	return appendConnector(appendConnector(nil, r.Connector), r.FaultConnector)
}

func (r *RecordUpdate) Connectors() []*Connector {
	return appendConnector(appendConnector(nil, r.Connector), r.FaultConnector)
}

func (r *RecordDelete) Connectors() []*Connector {
	return appendConnector(appendConnector(nil, r.Connector), r.FaultConnector)
}

func (s *Subflow) Connectors() []*Connector {
	return appendConnector(nil, s.Connector)
}

func (a *ActionCall) Connectors() []*Connector {
	return appendConnector(appendConnector(nil, a.Connector), a.FaultConnector)
}

func (a *ApexPluginCall) Connectors() []*Connector {
	return appendConnector(appendConnector(nil, a.Connector), a.FaultConnector)
}

// Connectors yields the default connector, the fault connector, then wait
// event connectors in event order.
func (w *Wait) Connectors() []*Connector {
	out := appendConnector(appendConnector(nil, w.DefaultConnector), w.FaultConnector)
	for _, event := range w.WaitEvents {
		out = appendConnector(out, event.Connector)
	}
	return out
}

func (t *Transform) Connectors() []*Connector {
	return appendConnector(nil, t.Connector)
}

func (o *OrchestratedStage) Connectors() []*Connector {
	return appendConnector(appendConnector(nil, o.Connector), o.FaultConnector)
}

// Connectors yields the next-value connector followed by the no-more-values
// connector.
func (l *Loop) Connectors() []*Connector {
	return appendConnector(appendConnector(nil, l.NextValueConnector), l.NoMoreValuesConnector)
}

func (c *CollectionProcessor) Connectors() []*Connector {
	return appendConnector(nil, c.Connector)
}

func (c *CustomError) Connectors() []*Connector {
	return appendConnector(appendConnector(nil, c.Connector), c.FaultConnector)
}

// Connectors returns nil; choice sets never reference other nodes.
func (d *DynamicChoiceSet) Connectors() []*Connector {
	return nil
}
