package pipeline

import "fmt"

// FatalError ends a run with a user-facing message and no further steps.
type FatalError struct {
	Msg string
	Err error
}

// Fatalf builds a FatalError from a format string.
func Fatalf(format string, args ...any) *FatalError {
	return &FatalError{Msg: fmt.Sprintf(format, args...)}
}

func (e *FatalError) Error() string {
	return e.Msg
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// StepError reports which step failed.
type StepError struct {
	Message string
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q: %v", e.Message, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
