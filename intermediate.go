package iterable

import (
	"iter"
	"log/slog"
	"slices"

	g "github.com/anacrolix/generics"
)

// MapperFunc maps element elem to type U.
type MapperFunc[T any, U any] func(elem T) U

// IndexedMapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream sequence.
type IndexedMapperFunc[T any, U any] func(elem T, index uint64) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// IndexedPredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream sequence.
type IndexedPredicateFunc[T any] func(elem T, index uint64) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(elem T) T {
		return elem
	}
}

// Filter returns a sequence of the elements of seq for which filter returns true.
func Filter[T any](seq iter.Seq[T], filter PredicateFunc[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := range seq {
			if filter(elem) && !yield(elem) {
				return
			}
		}
	}
}

// FilterIndexed returns a sequence of the elements of seq for which filter returns true.
// The index passed to filter counts every element of seq, whether it matched or not.
func FilterIndexed[T any](seq iter.Seq[T], filter IndexedPredicateFunc[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		index := counter{}

		for elem := range seq {
			if filter(elem, index.n) && !yield(elem) {
				return
			}

			index.advance()
		}
	}
}

// Map returns a sequence that calls mapp for each element of seq, mapping it to type U.
func Map[T any, U any](seq iter.Seq[T], mapp MapperFunc[T, U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for elem := range seq {
			if !yield(mapp(elem)) {
				return
			}
		}
	}
}

// MapIndexed returns a sequence that calls mapp for each element of seq and its index, mapping it to type U.
func MapIndexed[T any, U any](seq iter.Seq[T], mapp IndexedMapperFunc[T, U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		index := counter{}

		for elem := range seq {
			if !yield(mapp(elem, index.n)) {
				return
			}

			index.advance()
		}
	}
}

// FlatMap returns a sequence that calls mapp for each element of seq, mapping it to an intermediate sequence
// of elements of type U.
// The new sequence produces all elements of each intermediate sequence before calling mapp for the next element.
func FlatMap[T any, U any](seq iter.Seq[T], mapp MapperFunc[T, iter.Seq[U]]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for elem := range seq {
			for inner := range mapp(elem) {
				if !yield(inner) {
					return
				}
			}
		}
	}
}

// FlatMapNested returns a sequence that calls mapp for each element of each inner sequence of seq.
// Inner sequences are consumed one after the other, in the order produced by seq.
func FlatMapNested[T any, U any](seq iter.Seq[iter.Seq[T]], mapp MapperFunc[T, U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for inner := range seq {
			for elem := range inner {
				if !yield(mapp(elem)) {
					return
				}
			}
		}
	}
}

// Flatten returns a sequence of the elements of the inner sequences of seq, in order.
func Flatten[T any](seq iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return FlatMapNested(seq, Identity[T]())
}

// FilterMap returns a sequence that calls mapp for each element of seq and produces the values
// of the options that are present. Absent options are skipped.
func FilterMap[T any, U any](seq iter.Seq[T], mapp MapperFunc[T, g.Option[U]]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for elem := range seq {
			opt := mapp(elem)
			if opt.Ok && !yield(opt.Value) {
				return
			}
		}
	}
}

// FilterMapIndexed is like FilterMap, but also passes the index of each element of seq to mapp.
// The index counts every element of seq, including those mapped to an absent option.
func FilterMapIndexed[T any, U any](seq iter.Seq[T], mapp IndexedMapperFunc[T, g.Option[U]]) iter.Seq[U] {
	return func(yield func(U) bool) {
		index := counter{}

		for elem := range seq {
			opt := mapp(elem, index.n)
			if opt.Ok && !yield(opt.Value) {
				return
			}

			index.advance()
		}
	}
}

// FilterMapPtr returns a sequence that calls mapp for each element of seq and produces the non-nil results.
func FilterMapPtr[T any, U any](seq iter.Seq[T], mapp MapperFunc[T, *U]) iter.Seq[*U] {
	return func(yield func(*U) bool) {
		for elem := range seq {
			ptr := mapp(elem)
			if ptr != nil && !yield(ptr) {
				return
			}
		}
	}
}

// FilterMapPtrIndexed is like FilterMapPtr, but also passes the index of each element of seq to mapp.
func FilterMapPtrIndexed[T any, U any](seq iter.Seq[T], mapp IndexedMapperFunc[T, *U]) iter.Seq[*U] {
	return func(yield func(*U) bool) {
		index := counter{}

		for elem := range seq {
			ptr := mapp(elem, index.n)
			if ptr != nil && !yield(ptr) {
				return
			}

			index.advance()
		}
	}
}

// TryMap returns a sequence that calls mapp for each element of seq, producing each result with its error.
// Errors are passed through as returned by mapp; the consumer decides whether to keep going.
func TryMap[T any, U any](seq iter.Seq[T], mapp func(elem T) (U, error)) iter.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		for elem := range seq {
			if !yield(mapp(elem)) {
				return
			}
		}
	}
}

// Peek returns a sequence that calls peek for each element of seq, in order, and produces the same elements.
func Peek[T any](seq iter.Seq[T], peek ConsumerFunc[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := range seq {
			peek(elem)

			if !yield(elem) {
				return
			}
		}
	}
}

// Trace returns a sequence that logs each element of seq and its index to logger at debug level,
// and produces the same elements.
func Trace[T any](seq iter.Seq[T], logger *slog.Logger, msg string) iter.Seq[T] {
	return func(yield func(T) bool) {
		index := counter{}

		for elem := range seq {
			logger.Debug(msg, slog.Uint64("index", index.n), slog.Any("element", elem))

			if !yield(elem) {
				return
			}

			index.advance()
		}
	}
}

// Limit returns a sequence of the elements of seq, in order, up to max elements.
// seq is not asked for more elements once max elements have been produced.
func Limit[T any](seq iter.Seq[T], max uint64) iter.Seq[T] {
	return func(yield func(T) bool) {
		if max == 0 {
			return
		}

		done := uint64(0)

		for elem := range seq {
			if !yield(elem) {
				return
			}

			done++
			if done == max {
				return
			}
		}
	}
}

// Skip returns a sequence of the elements of seq, in order, skipping the first num elements.
func Skip[T any](seq iter.Seq[T], num uint64) iter.Seq[T] {
	return func(yield func(T) bool) {
		done := uint64(0)

		for elem := range seq {
			if done < num {
				done++
				continue
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// Sort returns a sequence that consumes all elements of seq, sorts them using less, and produces them in sorted order.
// The sort is stable.
func Sort[T any](seq iter.Seq[T], less LessFunc[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		result := ToList(seq)

		slices.SortStableFunc(result, func(a T, b T) int {
			switch {
			case less(a, b):
				return -1
			case less(b, a):
				return 1
			default:
				return 0
			}
		})

		for _, elem := range result {
			if !yield(elem) {
				return
			}
		}
	}
}
