package schema

import "strings"

// ErrorKind classifies a per-field validation failure. A field carries at
// most one kind per validation pass.
type ErrorKind int

const (
	// KindMissing: a required field has no value.
	KindMissing ErrorKind = iota
	// KindEmpty: a non-nullable field is present but empty.
	KindEmpty
	// KindWrongType: a non-empty value failed its validator.
	KindWrongType
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissing:
		return "missing required fields"
	case KindEmpty:
		return "fields must not be empty"
	case KindWrongType:
		return "fields have wrong type"
	default:
		return "invalid fields"
	}
}

// FieldError is one per-field failure.
type FieldError struct {
	Kind  ErrorKind
	Field string
}

// ValidationError aggregates every per-field failure of one pass. Fields
// keep declaration order; kinds appear in first-seen order.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var kinds []ErrorKind
	byKind := make(map[ErrorKind][]string)
	for _, fe := range e.Errors {
		if _, seen := byKind[fe.Kind]; !seen {
			kinds = append(kinds, fe.Kind)
		}
		byKind[fe.Kind] = append(byKind[fe.Kind], fe.Field)
	}

	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, k.String()+": ["+strings.Join(byKind[k], ", ")+"]")
	}
	return strings.Join(parts, ", ")
}

// ConstraintError reports a failed pair constraint. It lists every
// candidate pair and never combines with per-field errors: the constraint
// only runs on an otherwise valid input.
type ConstraintError struct {
	Pairs [][]string
}

func (e *ConstraintError) Error() string {
	pairs := make([]string, len(e.Pairs))
	for i, p := range e.Pairs {
		pairs[i] = "[" + strings.Join(p, ", ") + "]"
	}
	return "at least one full pair of fields must be present: " + strings.Join(pairs, ", ")
}
