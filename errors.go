package results

import "strings"

// UnwrapError is the panic payload raised when the unwrap family of
// operations is invoked on the absent or failed variant. No other
// operation raises it.
type UnwrapError struct {
	Msg     string
	Payload error
}

// Error implements the error interface.
func (e *UnwrapError) Error() string {
	return e.Msg
}

// Unwrap returns the error payload of the failed Result, if any.
func (e *UnwrapError) Unwrap() error {
	return e.Payload
}

// PanicError carries a recovered panic value that is not itself an
// error. The original value is kept unchanged in Value.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return "panic: " + renderValue(e.Value)
}

// AggregateError collects the errors of several failed Results in
// their original order.
type AggregateError struct {
	Errs []error
}

// Error implements the error interface.
func (e *AggregateError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = renderValue(err)
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the collected errors for errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errs
}
