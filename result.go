package results

import (
	"errors"
	"iter"

	"github.com/oznakn/ts-results/internal/stacktrace"
)

// NewError creates a new error with the given message.
func NewError(msg string) error {
	return errors.New(msg)
}

// Result represents the outcome of an operation that may fail. It
// contains either a success value or an error. A failed Result carries
// a call-stack trace captured when it was constructed. The zero value
// is an Err with a nil error.
type Result[T any] struct {
	value T
	err   error
	ok    bool
	trace *stacktrace.Trace
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result. The current call stack is captured,
// starting at the caller of Err, and travels with the Result through
// any later chaining.
func Err[T any](err error) Result[T] {
	return newErr[T](err, 1)
}

// newErr builds a failed Result with a trace that skips the given
// number of frames above newErr itself.
func newErr[T any](err error, skip int) Result[T] {
	return Result[T]{err: err, trace: stacktrace.Capture(skip + 1)}
}

// errAs rebuilds a failed Result under a new value type, keeping the
// payload and the original construction-time trace.
func errAs[T, U any](r Result[T]) Result[U] {
	return Result[U]{err: r.err, trace: r.trace}
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is an error.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Expect returns the success value or panics with an *UnwrapError
// whose message embeds msg, the rendered error and the trace captured
// when the Err was constructed.
func (r Result[T]) Expect(msg string) T {
	if !r.ok {
		panic(&UnwrapError{Msg: msg + " - Error: " + r.Stack(), Payload: r.err})
	}
	return r.value
}

// Unwrap returns the success value or panics on error.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapError{Msg: "tried to unwrap Err: " + r.Stack(), Payload: r.err})
	}
	return r.value
}

// UnwrapErr returns the error or panics on success.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic(&UnwrapError{Msg: "tried to unwrap the error of Ok"})
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// Else returns the success value or a default.
//
// Deprecated: Use UnwrapOr instead.
func (r Result[T]) Else(defaultValue T) T {
	return r.UnwrapOr(defaultValue)
}

// UnwrapOrElse returns the success value or computes a default from
// the error.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Map applies a function to the success value. An Err is returned
// untouched and fn is never invoked.
func (r Result[T]) Map(fn func(T) T) Result[T] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return r
}

// MapErr applies a function to the error. Ok is returned untouched and
// fn is never invoked. The construction-time trace is kept.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Result[T]{err: fn(r.err), trace: r.trace}
}

// AndThen applies a function that itself returns a Result, so chains
// flatten instead of nesting. An Err is returned untouched and fn is
// never invoked.
func (r Result[T]) AndThen(fn func(T) Result[T]) Result[T] {
	if r.ok {
		return fn(r.value)
	}
	return r
}

// MapResult applies a transformation function to Result.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return errAs[T, U](r)
}

// MapResultErr applies a function to the error.
func MapResultErr[T any](r Result[T], fn func(error) error) Result[T] {
	return r.MapErr(fn)
}

// FlatMapResult applies a function that returns a Result.
func FlatMapResult[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.ok {
		return fn(r.value)
	}
	return errAs[T, U](r)
}

// Match executes one of two functions based on Result state.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// MatchResult executes one of two functions and returns the result.
func MatchResult[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// ToOption converts Result to Option, discarding error.
func (r Result[T]) ToOption() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Stack returns the rendered error followed by the call stack captured
// when the Err was constructed. It returns "" for Ok. The string is
// recomputed from the immutable captured counters, so it reflects the
// construction site no matter when it is read.
func (r Result[T]) Stack() string {
	if r.ok {
		return ""
	}
	return renderValue(r.err) + "\n" + r.trace.String()
}

// Seq returns a fresh single-use iterator over the Result (0 or 1
// element).
func (r Result[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// ToSlice converts Result to a slice (empty on error).
func (r Result[T]) ToSlice() []T {
	if r.ok {
		return []T{r.value}
	}
	return []T{}
}

// String formats the Result as a diagnostic label.
func (r Result[T]) String() string {
	if r.ok {
		return "Ok(" + renderValue(r.value) + ")"
	}
	return "Err(" + renderValue(r.err) + ")"
}

// AllResults scans the inputs left to right and short-circuits on the
// first Err, which is returned with its payload and trace intact.
// Otherwise it returns Ok of every value in input order.
func AllResults[T any](rs ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if !r.ok {
			return errAs[T, []T](r)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// AnyResults scans the inputs left to right and short-circuits on the
// first Ok. If every input failed, it returns a single Err wrapping an
// *AggregateError that holds each error in input order.
func AnyResults[T any](rs ...Result[T]) Result[T] {
	errs := make([]error, 0, len(rs))
	for _, r := range rs {
		if r.ok {
			return r
		}
		errs = append(errs, r.err)
	}
	return newErr[T](&AggregateError{Errs: errs}, 1)
}

type resultMarker interface {
	isResultValue()
}

func (Result[T]) isResultValue() {}

// IsResult returns true if v is a Result of any element type.
func IsResult(v any) bool {
	_, ok := v.(resultMarker)
	return ok
}
