// Package results provides Rust-style Option and Result containers for
// Go: explicit, inspectable value-or-absence and success-or-failure
// types with chaining, batch combinators and panic-boundary adapters.
package results

// OptionToResult converts Option[T] to Result[T] with the provided
// error for None.
func OptionToResult[T any](opt Option[T], err error) Result[T] {
	if opt.present {
		return Ok(opt.value)
	}
	return newErr[T](err, 1)
}

// ResultToOption converts Result[T] to Option[T], discarding error.
func ResultToOption[T any](res Result[T]) Option[T] {
	return res.ToOption()
}

// IdentityFunc is an identity function for functor law testing.
func IdentityFunc[T any](v T) T {
	return v
}

// ComposeFunc composes two functions for functor law testing.
func ComposeFunc[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
