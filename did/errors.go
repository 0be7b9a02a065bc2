package did

import "fmt"

// ValidationError reports a DID entity field that failed validation.
// Construction of DID entities is all-or-nothing: on a ValidationError no
// partially valid value is returned.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
