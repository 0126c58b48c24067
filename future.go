package results

import "context"

// Future represents an async computation that resolves to a Result.
// It completes exactly once and its outcome is immutable afterwards.
type Future[T any] struct {
	done chan struct{}
	res  Result[T]
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// WrapAsync starts op on its own goroutine and returns a Future that
// resolves to Ok on return and Err on panic. A panic thrown before any
// suspension point still resolves the Future instead of crashing the
// caller; WrapAsync itself never fails.
func WrapAsync[T any](op func() T) *Future[T] {
	f := newFuture[T]()
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.res = newErr[T](panicPayload(r), 2)
			}
		}()
		f.res = Ok(op())
	}()
	return f
}

// Go starts an async computation with Go's (value, error) shape. A
// returned error resolves the Future to Err, as does a panic.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.res = newErr[T](panicPayload(r), 2)
			}
		}()
		f.res = TryFunc(fn())
	}()
	return f
}

// Await blocks until the future completes and returns its Result.
func (f *Future[T]) Await() Result[T] {
	<-f.done
	return f.res
}

// AwaitContext blocks until the future completes or ctx is cancelled.
// Cancellation abandons the wait only; the wrapped operation keeps
// running and the Future can still be awaited later.
func (f *Future[T]) AwaitContext(ctx context.Context) (Result[T], error) {
	select {
	case <-f.done:
		return f.res, nil
	case <-ctx.Done():
		var zero Result[T]
		return zero, ctx.Err()
	}
}

// Done returns a channel that closes when the future completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// AwaitAll waits for every future and combines the outcomes with
// AllResults semantics.
func AwaitAll[T any](futures ...*Future[T]) Result[[]T] {
	rs := make([]Result[T], len(futures))
	for i, f := range futures {
		rs[i] = f.Await()
	}
	return AllResults(rs...)
}

// AwaitAny waits for every future and combines the outcomes with
// AnyResults semantics.
func AwaitAny[T any](futures ...*Future[T]) Result[T] {
	rs := make([]Result[T], len(futures))
	for i, f := range futures {
		rs[i] = f.Await()
	}
	return AnyResults(rs...)
}
