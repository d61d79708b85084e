package iterable

import (
	"fmt"
	"iter"
	"maps"

	"github.com/google/btree"
	"golang.org/x/exp/slices"
)

// btreeDegree is the degree of the B-trees backing SortedSet and SortedDict.
const btreeDegree = 32

// Collection is a container that can be populated one element at a time.
// Add returns an error if the container refuses elem.
type Collection[T any] interface {
	Add(elem T) error
}

// Set is an unordered set of comparable elements.
type Set[T comparable] map[T]struct{}

// NewSet returns a new set containing the given elements.
func NewSet[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, elem := range elems {
		s[elem] = struct{}{}
	}

	return s
}

// Add implements Collection. Adding an element that is already in s is a no-op.
func (s Set[T]) Add(elem T) error {
	s[elem] = struct{}{}
	return nil
}

// Contains returns true if s contains all of the given elements.
func (s Set[T]) Contains(elems ...T) bool {
	return AllMatch(Produce(elems), func(elem T) bool {
		_, ok := s[elem]
		return ok
	})
}

// Len returns the number of elements in s.
func (s Set[T]) Len() int {
	return len(s)
}

// All returns a sequence of the elements of s, in undefined order.
func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s)
}

// Members returns the elements of s as a slice, in undefined order.
func (s Set[T]) Members() []T {
	return ToList(s.All())
}

// String implements fmt.Stringer.
func (s Set[T]) String() string {
	return fmt.Sprintf("%v", s.Members())
}

// SortedSet is a set of elements kept in ascending order.
type SortedSet[T any] struct {
	tree *btree.BTreeG[T]
}

// NewSortedSet returns an empty set ordered by less.
func NewSortedSet[T any](less LessFunc[T]) *SortedSet[T] {
	return &SortedSet[T]{
		tree: btree.NewG(btreeDegree, btree.LessFunc[T](less)),
	}
}

// Add implements Collection. If an equal element is already in s, s is left unchanged.
func (s *SortedSet[T]) Add(elem T) error {
	if !s.tree.Has(elem) {
		s.tree.ReplaceOrInsert(elem)
	}

	return nil
}

// Has returns true if s contains elem.
func (s *SortedSet[T]) Has(elem T) bool {
	return s.tree.Has(elem)
}

// Len returns the number of elements in s.
func (s *SortedSet[T]) Len() int {
	return s.tree.Len()
}

// Min returns the smallest element of s, if any.
func (s *SortedSet[T]) Min() (T, bool) {
	return s.tree.Min()
}

// Max returns the largest element of s, if any.
func (s *SortedSet[T]) Max() (T, bool) {
	return s.tree.Max()
}

// All returns a sequence of the elements of s, in ascending order.
func (s *SortedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Ascend(btree.ItemIteratorG[T](yield))
	}
}

// SortedDict is a dictionary whose entries are kept in ascending key order.
type SortedDict[K any, V any] struct {
	tree *btree.BTreeG[Pair[K, V]]
}

// NewSortedDict returns an empty dictionary ordered by less.
func NewSortedDict[K any, V any](less LessFunc[K]) *SortedDict[K, V] {
	return &SortedDict[K, V]{
		tree: btree.NewG(btreeDegree, func(a Pair[K, V], b Pair[K, V]) bool {
			return less(a.Key, b.Key)
		}),
	}
}

// Add adds the entry key to value, or returns ErrDuplicateKey if key is already in d.
func (d *SortedDict[K, V]) Add(key K, value V) error {
	entry := Pair[K, V]{Key: key, Value: value}

	if d.tree.Has(entry) {
		return ErrDuplicateKey
	}

	d.tree.ReplaceOrInsert(entry)

	return nil
}

// Get returns the value for key, if any.
func (d *SortedDict[K, V]) Get(key K) (V, bool) {
	entry, ok := d.tree.Get(Pair[K, V]{Key: key})
	return entry.Value, ok
}

// Len returns the number of entries in d.
func (d *SortedDict[K, V]) Len() int {
	return d.tree.Len()
}

// All returns a sequence of the entries of d, in ascending key order.
func (d *SortedDict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		d.tree.Ascend(func(entry Pair[K, V]) bool {
			return yield(entry.Key, entry.Value)
		})
	}
}

// Array is a read-only, fixed-size sequence of elements.
// The zero value is an empty array.
type Array[T any] struct {
	elems []T
}

// At returns the element at index i. It panics if i is out of range.
func (a Array[T]) At(i int) T {
	return a.elems[i]
}

// Len returns the number of elements in a.
func (a Array[T]) Len() int {
	return len(a.elems)
}

// All returns a sequence of the elements of a, in order.
func (a Array[T]) All() iter.Seq[T] {
	return Produce(a.elems)
}

// Slice returns a copy of the elements of a.
func (a Array[T]) Slice() []T {
	return slices.Clone(a.elems)
}
