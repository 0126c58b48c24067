package results

import "iter"

// Option represents an optional value that may or may not be present.
// It provides a type-safe alternative to nil pointers. The zero value
// is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{present: false}
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Expect returns the contained value or panics with an *UnwrapError
// carrying msg if the Option is empty.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(&UnwrapError{Msg: msg})
	}
	return o.value
}

// Unwrap returns the contained value or panics if empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(&UnwrapError{Msg: "tried to unwrap None"})
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// Map applies a function to the contained value if present. None is
// returned untouched and fn is never invoked.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if o.present {
		return Some(fn(o.value))
	}
	return o
}

// AndThen applies a function that itself returns an Option, so chains
// flatten instead of nesting. None is returned untouched and fn is
// never invoked.
func (o Option[T]) AndThen(fn func(T) Option[T]) Option[T] {
	if o.present {
		return fn(o.value)
	}
	return o
}

// MapOption applies a transformation function to Option.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMapOption applies a function that returns an Option.
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

// ToResult converts the Option to a Result, substituting err for an
// empty Option. The replacement error is a plain value, never a
// deferred computation.
func (o Option[T]) ToResult(err error) Result[T] {
	if o.present {
		return Ok(o.value)
	}
	return newErr[T](err, 1)
}

// Match executes one of two functions based on Option state.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// MatchOption executes one of two functions and returns the result.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// Filter returns None if predicate returns false.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Seq returns a fresh single-use iterator over the Option (0 or 1
// element).
func (o Option[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// ToSlice converts Option to a slice (empty or single element).
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// String formats the Option as a diagnostic label.
func (o Option[T]) String() string {
	if o.present {
		return "Some(" + renderValue(o.value) + ")"
	}
	return "None"
}

// FromPtr creates an Option from a pointer.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromOk creates an Option from a value and ok flag, mirroring Go's
// comma-ok lookups.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// ToPtr converts Option to a pointer.
func (o Option[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// AllOptions scans the inputs left to right and short-circuits on the
// first None. Otherwise it returns Some of every value in input order.
func AllOptions[T any](opts ...Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.present {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// AnyOption scans the inputs left to right and returns the first Some.
// None is returned only when every input is empty.
func AnyOption[T any](opts ...Option[T]) Option[T] {
	for _, o := range opts {
		if o.present {
			return o
		}
	}
	return None[T]()
}

type optionMarker interface {
	isOptionValue()
}

func (Option[T]) isOptionValue() {}

// IsOption returns true if v is an Option of any element type.
func IsOption(v any) bool {
	_, ok := v.(optionMarker)
	return ok
}
