// Package tree provides helpers over the generic map trees produced by the
// XML codec: map[string]interface{} objects, []interface{} sequences and
// string scalars.  It lives under `internal` because callers should not rely
// on the exact tree shape outside the normalization pipeline.
package tree

// Object returns the value as a generic object, or nil when it is anything
// else.
func Object(value interface{}) map[string]interface{} {
	object, _ := value.(map[string]interface{})
	return object
}

// Sequence returns the value held at field as a sequence, or nil when it is
// absent or not a sequence.
func Sequence(container map[string]interface{}, field string) []interface{} {
	sequence, _ := container[field].([]interface{})
	return sequence
}

// CoerceSequence forces container[field] to hold a sequence: a present
// non-sequence value is wrapped in a one-element sequence, an absent, nil or
// empty-string value becomes an empty sequence.  Calling it twice equals
// calling it once.
func CoerceSequence(container map[string]interface{}, field string) {
	switch value := container[field].(type) {
	case []interface{}:
	case nil:
		container[field] = []interface{}{}
	case string:
		if value == "" {
			container[field] = []interface{}{}
		} else {
			container[field] = []interface{}{value}
		}
	default:
		container[field] = []interface{}{value}
	}
}

// Items invokes the callback for every object element of the sequence held at
// field; scalar elements are skipped.
func Items(container map[string]interface{}, field string, callback func(object map[string]interface{})) {
	for _, item := range Sequence(container, field) {
		if object := Object(item); object != nil {
			callback(object)
		}
	}
}
