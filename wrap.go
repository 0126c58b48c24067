package results

// panicPayload converts a recovered panic value into an error without
// losing the original value.
func panicPayload(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}

// Wrap invokes op inside a recover boundary. A normal return becomes
// Ok; a panic of any kind becomes Err and never propagates to the
// caller of Wrap. A panic value that is already an error is kept with
// its identity intact, anything else is preserved inside *PanicError.
func Wrap[T any](op func() T) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			// Skip this closure and the runtime's panic frame so the
			// trace starts at the panic site inside op.
			res = newErr[T](panicPayload(r), 2)
		}
	}()
	return Ok(op())
}

// Try wraps a function that may return an error.
func Try[T any](fn func() (T, error)) Result[T] {
	value, err := fn()
	if err != nil {
		return newErr[T](err, 1)
	}
	return Ok(value)
}

// TryFunc wraps a function call with error handling.
func TryFunc[T any](value T, err error) Result[T] {
	if err != nil {
		return newErr[T](err, 1)
	}
	return Ok(value)
}
