package iterable

import "iter"

// Produce returns a sequence of the elements of the given slices, in order.
// The sequence can be traversed any number of times.
func Produce[T any](slices ...[]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, slice := range slices {
			for _, elem := range slice {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// ProduceChannel returns a sequence of the elements received through the given channels, in order.
// Each channel is drained until it is closed before moving on to the next one.
// Elements received are gone, so a second traversal only sees what is left in the channels.
func ProduceChannel[T any](channels ...<-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, ch := range channels {
			for elem := range ch {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Join returns a sequence of the elements of the given sequences, in order.
func Join[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for elem := range seq {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Generate returns an infinite sequence of the results of calling gen with index 0, 1, 2, ...
func Generate[T any](gen func(index uint64) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		index := counter{}

		for {
			if !yield(gen(index.n)) {
				return
			}

			index.advance()
		}
	}
}

// Repeat returns an infinite sequence of elem.
func Repeat[T any](elem T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(elem) {
		}
	}
}

// Pair is a key and its associated value.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// PairsOf returns a sequence of the key/value pairs of seq.
func PairsOf[K any, V any](seq iter.Seq2[K, V]) iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for key, value := range seq {
			if !yield(Pair[K, V]{Key: key, Value: value}) {
				return
			}
		}
	}
}

// Unpair returns a sequence of the keys and values of the pairs of seq.
func Unpair[K any, V any](seq iter.Seq[Pair[K, V]]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := range seq {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}
