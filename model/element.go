package model

type (
	// Element carries the identity shared by every named Flow entity.  Name is
	// the stable identifier the graph view keys on; Label and Description are
	// presentation only.
	Element struct {
		Name        string `json:"name,omitempty"`
		Label       string `json:"label,omitempty"`
		Description string `json:"description,omitempty"`
	}

	// Value is the polymorphic literal/reference holder used by conditions,
	// assignments and defaults.  All scalars stay strings, mirroring the XML
	// document; at most one slot is set.
	Value struct {
		StringValue      string `json:"stringValue,omitempty"`
		NumberValue      string `json:"numberValue,omitempty"`
		BooleanValue     string `json:"booleanValue,omitempty"`
		DateValue        string `json:"dateValue,omitempty"`
		ElementReference string `json:"elementReference,omitempty"`
	}

	// Condition is a single comparison within a rule, wait event or
	// collection processor.
	Condition struct {
		LeftValueReference string `json:"leftValueReference,omitempty"`
		Operator           string `json:"operator,omitempty"`
		RightValue         *Value `json:"rightValue,omitempty"`
	}

	// Filter restricts a record operation to matching rows.
	Filter struct {
		Field    string `json:"field,omitempty"`
		Operator string `json:"operator,omitempty"`
		Value    *Value `json:"value,omitempty"`
	}

	// InputAssignment writes a value into a record field before a create or
	// update.
	InputAssignment struct {
		Field string `json:"field,omitempty"`
		Value *Value `json:"value,omitempty"`
	}

	// OutputAssignment maps a record field back onto a flow variable.
	OutputAssignment struct {
		AssignToReference string `json:"assignToReference,omitempty"`
		Field             string `json:"field,omitempty"`
	}

	// Parameter is a named input/output of an action, plugin or stage step.
	Parameter struct {
		Name  string `json:"name,omitempty"`
		Value *Value `json:"value,omitempty"`
	}

	// AssignmentItem is a single operation performed by an assignment node.
	AssignmentItem struct {
		AssignToReference string `json:"assignToReference,omitempty"`
		Operator          string `json:"operator,omitempty"`
		Value             *Value `json:"value,omitempty"`
	}
)

// NodeName returns the element name; an element that never had one yields "".
func (e *Element) NodeName() string {
	return e.Name
}
