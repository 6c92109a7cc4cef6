// Package schema implements the declarative validation engine behind the
// request types. A Schema is a statically-built, ordered table of field
// specs plus an optional cross-field pair constraint; Validate is a pure
// function from an input mapping to an immutable Result, it never mutates
// the schema or the input.
package schema

import (
	"encoding/json"

	"scoring-api/internal/scoring/field"
)

// FieldSpec declares one named field of a schema. Specs are built once at
// process start and are read-only afterwards.
type FieldSpec struct {
	Name      string
	Required  bool
	Nullable  bool
	Validator field.Validator
}

// PairConstraint requires at least one of its pairs to be fully present
// (both fields set, non-null) after per-field validation succeeds.
type PairConstraint struct {
	Pairs [][]string
}

func (c *PairConstraint) satisfied(has map[string]struct{}) bool {
	for _, pair := range c.Pairs {
		ok := true
		for _, name := range pair {
			if _, set := has[name]; !set {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// Schema is an ordered field table with an optional pair constraint.
type Schema struct {
	fields     []FieldSpec
	constraint *PairConstraint
}

// New builds a schema from its field specs in declaration order.
func New(fields []FieldSpec, constraint *PairConstraint) *Schema {
	return &Schema{fields: fields, constraint: constraint}
}

// Fields returns the declared field names in order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Result is the outcome of a successful validation pass. Attributes holds
// every declared field (possibly nil); Has marks the fields that were
// present and non-null in the input. Zero values still count as present:
// gender 0 satisfies the {birthday, gender} pair.
type Result struct {
	Attributes map[string]any
	Has        map[string]struct{}
}

// HasField reports whether the field was present and non-null.
func (r *Result) HasField(name string) bool {
	_, ok := r.Has[name]
	return ok
}

// Validate checks input against the schema. Every field is checked
// independently and all per-field errors are aggregated into a single
// *ValidationError; the pair constraint runs only when there are none and
// fails with *ConstraintError. A JSON null is indistinguishable from an
// absent key.
func (s *Schema) Validate(input map[string]any) (*Result, error) {
	var errs []FieldError
	res := &Result{
		Attributes: make(map[string]any, len(s.fields)),
		Has:        make(map[string]struct{}, len(s.fields)),
	}

	for _, f := range s.fields {
		value := input[f.Name]

		if value == nil {
			if f.Required {
				errs = append(errs, FieldError{Kind: KindMissing, Field: f.Name})
				continue
			}
			res.Attributes[f.Name] = nil
			continue
		}
		if isEmpty(value) {
			if !f.Nullable {
				errs = append(errs, FieldError{Kind: KindEmpty, Field: f.Name})
				continue
			}
			res.Attributes[f.Name] = value
			res.Has[f.Name] = struct{}{}
			continue
		}
		if !f.Validator.IsValid(value) {
			errs = append(errs, FieldError{Kind: KindWrongType, Field: f.Name})
			continue
		}
		res.Attributes[f.Name] = value
		res.Has[f.Name] = struct{}{}
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	if s.constraint != nil && !s.constraint.satisfied(res.Has) {
		return nil, &ConstraintError{Pairs: s.constraint.Pairs}
	}
	return res, nil
}

// isEmpty mirrors JSON falsiness: empty string, empty list or object,
// numeric zero, false. Callers have already ruled out nil.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	case bool:
		return !v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n == 0
		}
		if f, err := v.Float64(); err == nil {
			return f == 0
		}
		return false
	case int:
		return v == 0
	case int64:
		return v == 0
	case float64:
		return v == 0
	default:
		return false
	}
}
