package results

import "iter"

// Lazy sequence combinators over Go 1.23+ range functions, plus the
// bridges that expose the elements held inside an Option or a Result.
// Every function returns a fresh iterator per call; nothing is
// materialized until the caller ranges over it, so infinite sequences
// are fine as long as consumption is bounded.

// FromSlice creates an iterator from a slice.
func FromSlice[T any](slice []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slice {
			if !yield(v) {
				return
			}
		}
	}
}

// OptionItems iterates over the elements held inside a slice-valued
// Option. None yields nothing.
func OptionItems[T any](o Option[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !o.present {
			return
		}
		for _, v := range o.value {
			if !yield(v) {
				return
			}
		}
	}
}

// OptionSeq flattens an Option holding a lazy sequence. None yields
// nothing; a contained sequence may be infinite.
func OptionSeq[T any](o Option[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !o.present {
			return
		}
		o.value(yield)
	}
}

// ResultItems iterates over the elements held inside a slice-valued
// Result. Err yields nothing.
func ResultItems[T any](r Result[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !r.ok {
			return
		}
		for _, v := range r.value {
			if !yield(v) {
				return
			}
		}
	}
}

// ResultSeq flattens a Result holding a lazy sequence. Err yields
// nothing.
func ResultSeq[T any](r Result[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !r.ok {
			return
		}
		r.value(yield)
	}
}

// Map transforms sequence elements.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter keeps elements matching predicate.
func Filter[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Take limits a sequence to n elements. The source is never pulled
// past the nth element.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count == n {
				return
			}
		}
	}
}

// Chain concatenates two sequences.
func Chain[T any](first, second iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range first {
			if !yield(v) {
				return
			}
		}
		for v := range second {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect materializes a sequence to a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var result []T
	for v := range seq {
		result = append(result, v)
	}
	return result
}

// Find returns the first element matching predicate.
func Find[T any](seq iter.Seq[T], pred func(T) bool) Option[T] {
	for v := range seq {
		if pred(v) {
			return Some(v)
		}
	}
	return None[T]()
}

// Count returns the number of elements.
func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// Reduce accumulates sequence values.
func Reduce[T, U any](seq iter.Seq[T], initial U, fn func(U, T) U) U {
	acc := initial
	for v := range seq {
		acc = fn(acc, v)
	}
	return acc
}
