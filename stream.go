package results

import "iter"

// Stream provides lazy, potentially infinite sequences with a memoized
// tail. Head exposes the Option contract for the empty case; Seq
// bridges a Stream into the iter.Seq world.
type Stream[T any] struct {
	head  T
	tail  *Lazy[*Stream[T]]
	empty bool
}

// EmptyStream returns an empty stream.
func EmptyStream[T any]() *Stream[T] {
	return &Stream[T]{empty: true}
}

// ConsStream creates a stream with head and lazy tail.
func ConsStream[T any](head T, tail func() *Stream[T]) *Stream[T] {
	return &Stream[T]{head: head, tail: NewLazy(tail)}
}

// StreamFromSlice creates a stream from a slice.
func StreamFromSlice[T any](slice []T) *Stream[T] {
	if len(slice) == 0 {
		return EmptyStream[T]()
	}
	return ConsStream(slice[0], func() *Stream[T] {
		return StreamFromSlice(slice[1:])
	})
}

// IterateStream creates an infinite stream from a seed and a step
// function.
func IterateStream[T any](seed T, next func(T) T) *Stream[T] {
	return ConsStream(seed, func() *Stream[T] {
		return IterateStream(next(seed), next)
	})
}

// IsEmpty returns true if the stream is empty.
func (s *Stream[T]) IsEmpty() bool {
	return s == nil || s.empty
}

// Head returns the first element.
func (s *Stream[T]) Head() Option[T] {
	if s.IsEmpty() {
		return None[T]()
	}
	return Some(s.head)
}

// Tail returns the rest of the stream, evaluating it at most once.
func (s *Stream[T]) Tail() *Stream[T] {
	if s.IsEmpty() {
		return s
	}
	return s.tail.Get()
}

// Seq returns a fresh iterator that walks the stream lazily. Safe on
// infinite streams as long as consumption is bounded.
func (s *Stream[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := s; !cur.IsEmpty(); cur = cur.Tail() {
			if !yield(cur.head) {
				return
			}
		}
	}
}
