package validation

import (
	"errors"
	"fmt"
)

// ErrInvalidValidationRule signals a constraint that cannot be turned into a
// runtime check, such as a pattern that is not a valid regular expression.
var ErrInvalidValidationRule = errors.New("validation: invalid validation rule")

// RuleError locates the offending field and rule when compilation fails.
type RuleError struct {
	FieldID string
	Rule    string
	Err     error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("validation: field %q rule %q: %v", e.FieldID, e.Rule, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }

// Is matches RuleError against ErrInvalidValidationRule so callers can use
// errors.Is without caring about the concrete type.
func (e *RuleError) Is(target error) bool {
	return target == ErrInvalidValidationRule
}
