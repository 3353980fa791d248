package engine

import (
	"fmt"
)

// FatalInitError reports the bootstrap step that failed. Kind is one of the
// core.Err* values, or nil when a collaborator's error is propagated as-is.
// errors.Is matches both Kind and the underlying error.
type FatalInitError struct {
	Step Step
	Kind error
	Err  error
}

func (e *FatalInitError) Error() string {
	if e.Kind == nil {
		return fmt.Sprintf("bootstrap step %d (%s): %v", e.Step, e.Step, e.Err)
	}
	return fmt.Sprintf("bootstrap step %d (%s): %v: %v", e.Step, e.Step, e.Kind, e.Err)
}

func (e *FatalInitError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// stepError carries the failure kind out of a bootstrap step.
type stepError struct {
	kind error
	err  error
}

func (e *stepError) Error() string {
	return fmt.Sprintf("%v: %v", e.kind, e.err)
}

func (e *stepError) Unwrap() error {
	return e.err
}

func fail(kind error, err error) error {
	return &stepError{kind: kind, err: err}
}
