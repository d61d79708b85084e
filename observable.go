package iterable

import "iter"

// ObservableList is a list that notifies its observers of every element added to it.
type ObservableList[T any] struct {
	elems     []T
	observers []func(elem T, index int)
}

// NewObservableList returns an empty list without observers.
func NewObservableList[T any]() *ObservableList[T] {
	return &ObservableList[T]{}
}

// ToObservableList returns an observable list of the elements of seq, in order.
func ToObservableList[T any](seq iter.Seq[T]) *ObservableList[T] {
	result, _ := ToCollection(seq, NewObservableList[T])
	return result
}

// Observe registers observe to be called, in registration order, after each element is added to l.
// Elements already in l are not replayed.
func (l *ObservableList[T]) Observe(observe func(elem T, index int)) {
	l.observers = append(l.observers, observe)
}

// Add implements Collection. It never fails.
func (l *ObservableList[T]) Add(elem T) error {
	l.elems = append(l.elems, elem)

	for _, observe := range l.observers {
		observe(elem, len(l.elems)-1)
	}

	return nil
}

// At returns the element at index i. It panics if i is out of range.
func (l *ObservableList[T]) At(i int) T {
	return l.elems[i]
}

// Len returns the number of elements in l.
func (l *ObservableList[T]) Len() int {
	return len(l.elems)
}

// All returns a sequence of the elements of l, in order.
func (l *ObservableList[T]) All() iter.Seq[T] {
	return Produce(l.elems)
}
