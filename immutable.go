package iterable

import (
	"iter"

	"github.com/benbjohnson/immutable"
)

// ToImmutableList returns a persistent list of the elements of seq, in order.
func ToImmutableList[T any](seq iter.Seq[T]) *immutable.List[T] {
	builder := immutable.NewListBuilder[T]()

	for elem := range seq {
		builder.Append(elem)
	}

	return builder.List()
}

// ToImmutableArray returns a read-only array of the elements of seq, in order.
func ToImmutableArray[T any](seq iter.Seq[T]) Array[T] {
	return Array[T]{elems: ToArray(seq)}
}

// ToImmutableSet returns a persistent set of the elements of seq. Duplicate elements are coalesced.
// A nil hasher selects the default hasher of the immutable package, which supports
// integers, strings and byte slices.
func ToImmutableSet[T any](seq iter.Seq[T], hasher immutable.Hasher[T]) immutable.Set[T] {
	result := immutable.NewSet[T](hasher)

	for elem := range seq {
		result = result.Add(elem)
	}

	return result
}

// ToImmutableSortedSet returns a persistent set of the elements of seq, ordered by comparer.
// Duplicate elements are coalesced. A nil comparer selects the default comparer of the immutable package.
func ToImmutableSortedSet[T any](seq iter.Seq[T], comparer immutable.Comparer[T]) immutable.SortedSet[T] {
	result := immutable.NewSortedSet[T](comparer)

	for elem := range seq {
		result = result.Add(elem)
	}

	return result
}

// ToImmutableDict returns a persistent map of the key/value pairs of seq.
// If a key is produced more than once, it returns a DuplicateKeyError and no map.
// A nil hasher selects the default hasher of the immutable package.
func ToImmutableDict[K any, V any](seq iter.Seq2[K, V], hasher immutable.Hasher[K]) (*immutable.Map[K, V], error) {
	builder := immutable.NewMapBuilder[K, V](hasher)

	index := counter{}

	for key, value := range seq {
		if _, ok := builder.Get(key); ok {
			return nil, &DuplicateKeyError[K]{Key: key, Index: index.n}
		}

		builder.Set(key, value)

		index.advance()
	}

	return builder.Map(), nil
}

// ToImmutableDictPairs is like ToImmutableDict, but for a sequence of pairs.
func ToImmutableDictPairs[K any, V any](seq iter.Seq[Pair[K, V]], hasher immutable.Hasher[K]) (*immutable.Map[K, V], error) {
	return ToImmutableDict(Unpair(seq), hasher)
}

// ToImmutableSortedDict returns a persistent map of the key/value pairs of seq, ordered by comparer.
// If a key is produced more than once, it returns a DuplicateKeyError and no map.
// A nil comparer selects the default comparer of the immutable package.
func ToImmutableSortedDict[K any, V any](seq iter.Seq2[K, V], comparer immutable.Comparer[K]) (*immutable.SortedMap[K, V], error) {
	builder := immutable.NewSortedMapBuilder[K, V](comparer)

	index := counter{}

	for key, value := range seq {
		if _, ok := builder.Get(key); ok {
			return nil, &DuplicateKeyError[K]{Key: key, Index: index.n}
		}

		builder.Set(key, value)

		index.advance()
	}

	return builder.Map(), nil
}
