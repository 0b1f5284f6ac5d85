package model

type (
	// Connector is a directed edge descriptor.  TargetReference names the node
	// it points at; a connector is owned by exactly the node, rule, scheduled
	// path or wait event that declares it and is never shared.
	Connector struct {
		TargetReference string `json:"targetReference,omitempty"`
		IsGoTo          string `json:"isGoTo,omitempty"`
	}

	// Rule is a conditional outcome of a decision node.  Its connector, when
	// set, is followed whenever the rule matches.
	Rule struct {
		Element
		ConditionLogic string       `json:"conditionLogic,omitempty"`
		Conditions     []*Condition `json:"conditions,omitempty"`
		Connector      *Connector   `json:"connector,omitempty"`
	}

	// ScheduledPath is a time-based outcome of the start node.
	ScheduledPath struct {
		Element
		PathType     string     `json:"pathType,omitempty"`
		OffsetNumber string     `json:"offsetNumber,omitempty"`
		OffsetUnit   string     `json:"offsetUnit,omitempty"`
		RecordField  string     `json:"recordField,omitempty"`
		TimeSource   string     `json:"timeSource,omitempty"`
		Connector    *Connector `json:"connector,omitempty"`
	}

	// WaitEvent is a resumable outcome of a wait node.
	WaitEvent struct {
		Element
		EventType       string       `json:"eventType,omitempty"`
		ConditionLogic  string       `json:"conditionLogic,omitempty"`
		Conditions      []*Condition `json:"conditions,omitempty"`
		InputParameters []*Parameter `json:"inputParameters,omitempty"`
		Connector       *Connector   `json:"connector,omitempty"`
	}
)

// Retarget points the connector at a different node.
func (c *Connector) Retarget(name string) {
	c.TargetReference = name
}
