package iterable

import (
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ToList returns the elements of seq, in order.
// The result is never nil.
func ToList[T any](seq iter.Seq[T]) []T {
	result := []T{}

	for elem := range seq {
		result = append(result, elem)
	}

	return result
}

// ToArray returns the elements of seq, in order, in a slice without spare capacity.
func ToArray[T any](seq iter.Seq[T]) []T {
	return slices.Clip(ToList(seq))
}

// ToSet returns a set of the elements of seq. Duplicate elements are coalesced.
func ToSet[T comparable](seq iter.Seq[T]) Set[T] {
	result := NewSet[T]()

	for elem := range seq {
		result[elem] = struct{}{}
	}

	return result
}

// ToSortedSet returns a set of the elements of seq, in ascending order.
// Duplicate elements are coalesced, keeping the first one produced.
func ToSortedSet[T constraints.Ordered](seq iter.Seq[T]) *SortedSet[T] {
	return ToSortedSetFunc(seq, ordered[T])
}

// ToSortedSetFunc returns a set of the elements of seq, ordered by less.
// Elements that are neither less nor greater than each other are considered equal and coalesced,
// keeping the first one produced.
func ToSortedSetFunc[T any](seq iter.Seq[T], less LessFunc[T]) *SortedSet[T] {
	result := NewSortedSet(less)

	for elem := range seq {
		_ = result.Add(elem)
	}

	return result
}

// ToDict returns a map of the key/value pairs of seq.
// If a key is produced more than once, it returns a DuplicateKeyError and no map.
func ToDict[K comparable, V any](seq iter.Seq2[K, V]) (map[K]V, error) {
	result := map[K]V{}

	index := counter{}

	for key, value := range seq {
		if _, ok := result[key]; ok {
			return nil, &DuplicateKeyError[K]{Key: key, Index: index.n}
		}

		result[key] = value

		index.advance()
	}

	return result, nil
}

// ToDictPairs is like ToDict, but for a sequence of pairs.
func ToDictPairs[K comparable, V any](seq iter.Seq[Pair[K, V]]) (map[K]V, error) {
	return ToDict(Unpair(seq))
}

// ToSortedDict returns a dictionary of the key/value pairs of seq, in ascending key order.
// If a key is produced more than once, it returns a DuplicateKeyError and no dictionary.
func ToSortedDict[K constraints.Ordered, V any](seq iter.Seq2[K, V]) (*SortedDict[K, V], error) {
	return ToSortedDictFunc(seq, ordered[K])
}

// ToSortedDictFunc returns a dictionary of the key/value pairs of seq, ordered by less.
// If a key is produced more than once, it returns a DuplicateKeyError and no dictionary.
func ToSortedDictFunc[K any, V any](seq iter.Seq2[K, V], less LessFunc[K]) (*SortedDict[K, V], error) {
	result := NewSortedDict[K, V](less)

	index := counter{}

	for key, value := range seq {
		if err := result.Add(key, value); err != nil {
			return nil, &DuplicateKeyError[K]{Key: key, Index: index.n}
		}

		index.advance()
	}

	return result, nil
}

// ToSortedDictPairs is like ToSortedDict, but for a sequence of pairs.
func ToSortedDictPairs[K constraints.Ordered, V any](seq iter.Seq[Pair[K, V]]) (*SortedDict[K, V], error) {
	return ToSortedDict(Unpair(seq))
}

// ToCollection adds the elements of seq, in order, to the collection returned by newCollection.
// How duplicates are treated is up to the collection. If the collection refuses an element,
// it returns the collection so far and the collection's error.
func ToCollection[T any, C Collection[T]](seq iter.Seq[T], newCollection func() C) (C, error) {
	result := newCollection()

	for elem := range seq {
		if err := result.Add(elem); err != nil {
			return result, err
		}
	}

	return result, nil
}

// ToGroups returns the elements of seq, grouped into slices according to key.
// Elements within a group keep the order in which they were produced.
func ToGroups[T any, K comparable](seq iter.Seq[T], key MapperFunc[T, K]) map[K][]T {
	result := map[K][]T{}

	for elem := range seq {
		k := key(elem)
		result[k] = append(result[k], elem)
	}

	return result
}

// Partition returns the elements of seq, grouped into slices according to pred.
func Partition[T any](seq iter.Seq[T], pred PredicateFunc[T]) map[bool][]T {
	return ToGroups(seq, MapperFunc[T, bool](pred))
}

// TryToList returns the elements of seq, in order, up to the first non-nil error.
// The error is returned unchanged, together with the elements collected before it.
func TryToList[T any](seq iter.Seq2[T, error]) ([]T, error) {
	result := []T{}

	for elem, err := range seq {
		if err != nil {
			return result, err
		}

		result = append(result, elem)
	}

	return result, nil
}

func ordered[T constraints.Ordered](a T, b T) bool {
	return a < b
}
