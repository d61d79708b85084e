package iterable

import (
	"testing"

	"github.com/matryer/is"
)

func TestToObservableList(t *testing.T) {
	is := is.New(t)

	list := ToObservableList(Produce([]string{"a", "b"}))

	is.Equal(list.Len(), 2)
	is.Equal(list.At(1), "b")
	is.Equal(ToList(list.All()), []string{"a", "b"})
}

func TestObservableList_Observe(t *testing.T) {
	is := is.New(t)

	list := ToObservableList(Produce([]int{1}))

	seen := []Pair[int, int]{}

	list.Observe(func(elem int, index int) {
		seen = append(seen, Pair[int, int]{Key: elem, Value: index})
	})

	is.NoErr(list.Add(5))
	is.NoErr(list.Add(6))

	is.Equal(seen, []Pair[int, int]{{5, 1}, {6, 2}})
	is.Equal(list.Len(), 3)
}
