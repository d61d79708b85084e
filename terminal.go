package iterable

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// ConsumerFunc consumes element elem.
type ConsumerFunc[T any] func(elem T)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
type AccumulatorFunc[T any, A any] func(acc A, elem T) A

// Each calls each for each element of seq.
func Each[T any](seq iter.Seq[T], each ConsumerFunc[T]) {
	for elem := range seq {
		each(elem)
	}
}

// Reduce calls reduce for each element of seq, folding it into accumulator acc, returning the final accumulator.
func Reduce[T any, A any](seq iter.Seq[T], acc A, reduce AccumulatorFunc[T, A]) A {
	for elem := range seq {
		acc = reduce(acc, elem)
	}

	return acc
}

// AnyMatch returns true as soon as pred returns true for an element of seq, that is, an element matches.
func AnyMatch[T any](seq iter.Seq[T], pred PredicateFunc[T]) bool {
	return FirstFunc(seq, pred).Ok
}

// AllMatch returns true if pred returns true for all elements of seq, that is, all elements match.
// It stops at the first element that does not match.
func AllMatch[T any](seq iter.Seq[T], pred PredicateFunc[T]) bool {
	for elem := range seq {
		if !pred(elem) {
			return false
		}
	}

	return true
}

// Count returns the number of elements of seq.
func Count[T any](seq iter.Seq[T]) uint64 {
	count := counter{}

	for range seq {
		count.advance()
	}

	return count.n
}

// First returns the first element of seq, or an absent option if seq is empty.
// No element after the first is requested from seq.
func First[T any](seq iter.Seq[T]) g.Option[T] {
	for elem := range seq {
		return g.Some(elem)
	}

	return g.None[T]()
}

// FirstFunc returns the first element of seq for which pred returns true, or an absent option if there is none.
// No element after the matching one is requested from seq.
func FirstFunc[T any](seq iter.Seq[T], pred PredicateFunc[T]) g.Option[T] {
	for elem := range seq {
		if pred(elem) {
			return g.Some(elem)
		}
	}

	return g.None[T]()
}

// FirstOrDefault returns the first element of seq, or the zero value of T if seq is empty.
// Unlike First, an empty seq cannot be told apart from one starting with the zero value.
func FirstOrDefault[T any](seq iter.Seq[T]) T {
	for elem := range seq {
		return elem
	}

	var zero T
	return zero
}

// FirstOrDefaultFunc returns the first element of seq for which pred returns true, or the zero value of T
// if there is none.
func FirstOrDefaultFunc[T any](seq iter.Seq[T], pred PredicateFunc[T]) T {
	for elem := range seq {
		if pred(elem) {
			return elem
		}
	}

	var zero T
	return zero
}
