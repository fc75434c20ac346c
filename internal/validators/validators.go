// Package validators provides declarative input validation for the API's
// entity kinds.
//
// Each entity kind is described by a [Schema]: a mapping from field name to a
// [Rule] with a required flag and a value check. Validating a payload yields
// a [FieldErrors] map that transports a field-to-message mapping to the
// caller, which the HTTP layer renders as a 400-class response body.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable, composable, and testable validation strategies.
package validators

import (
	"fmt"
	"math"
)

// Rule describes the constraints of a single field.
type Rule struct {
	// Required marks the field as mandatory; absent required fields fail
	// validation with a "required" message.
	Required bool

	// Check inspects a provided value and returns a human-readable problem
	// description, or "" when the value is acceptable.
	Check func(value any) string
}

// Schema maps field names to their validation rules for one entity kind.
type Schema map[string]Rule

// Validate checks the provided field values against the schema.
//
// fields holds the values that were present in the payload; a required field
// missing from the map fails validation. Fields present in the map but not
// described by the schema are ignored — unknown-field rejection is a
// decoding concern, not a validation one.
//
// Returns nil when every rule passes.
func (s Schema) Validate(fields map[string]any) FieldErrors {
	errs := make(FieldErrors)

	for name, rule := range s {
		value, provided := fields[name]
		if !provided {
			if rule.Required {
				errs[name] = "this field is required"
			}
			continue
		}

		if rule.Check != nil {
			if problem := rule.Check(value); problem != "" {
				errs[name] = problem
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Partial returns a copy of the schema with every Required flag cleared.
// Used for partial updates, where absent fields keep their stored values and
// only provided fields are checked.
func (s Schema) Partial() Schema {
	partial := make(Schema, len(s))
	for name, rule := range s {
		partial[name] = Rule{Check: rule.Check}
	}
	return partial
}

// NonEmptyString requires a string value that is non-empty after trimming.
// The trimming itself happens during payload normalization; here only the
// result is judged.
func NonEmptyString(value any) string {
	s, ok := value.(string)
	if !ok {
		return "must be a string"
	}
	if s == "" {
		return "must not be blank"
	}
	return ""
}

// MinLenString requires a string of at least n bytes.
func MinLenString(n int) func(value any) string {
	return func(value any) string {
		s, ok := value.(string)
		if !ok {
			return "must be a string"
		}
		if len(s) < n {
			return fmt.Sprintf("ensure this field has at least %d characters", n)
		}
		return ""
	}
}

// NonNegativeInt requires an integer value >= 0.
func NonNegativeInt(value any) string {
	n, ok := value.(int)
	if !ok {
		return "must be an integer"
	}
	if n < 0 {
		return "must be greater than or equal to 0"
	}
	return ""
}

// NonNegativePrice requires a number >= 0 with at most two decimal places.
func NonNegativePrice(value any) string {
	p, ok := value.(float64)
	if !ok {
		return "must be a number"
	}
	if p < 0 {
		return "must be greater than or equal to 0"
	}

	cents := p * 100
	if math.Abs(cents-math.Round(cents)) > 1e-9 {
		return "ensure no more than 2 decimal places"
	}
	return ""
}
