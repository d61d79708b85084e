package iterable

import (
	"testing"

	g "github.com/anacrolix/generics"
	"github.com/matryer/is"
)

func TestReduce(t *testing.T) {
	is := is.New(t)

	summer := func(acc int, elem int) int {
		return acc + elem
	}

	is.Equal(Reduce(Produce([]int{1, 2, 3, 4, 5}), 0, summer), 15)
	is.Equal(Reduce(Produce[int](), 7, summer), 7)
}

func TestEach(t *testing.T) {
	is := is.New(t)

	sum := 0

	Each(Produce([]int{1, 2, 3, 4, 5}), func(elem int) {
		sum += elem
	})

	is.Equal(sum, 15)
}

func TestAnyMatch(t *testing.T) {
	tests := []struct {
		name  string
		given []int
		want  bool
	}{
		{name: "match", given: []int{1, 3, 4, 5}, want: true},
		{name: "no match", given: []int{1, 3, 5}, want: false},
		{name: "empty", given: []int{}, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			is := is.New(t)

			is.Equal(AnyMatch(Produce(test.given), even), test.want)
		})
	}
}

func TestAnyMatch_ShortCircuit(t *testing.T) {
	is := is.New(t)

	is.True(AnyMatch(strictProducer(4), func(elem int) bool {
		return elem == 4
	}))
}

func TestAllMatch(t *testing.T) {
	tests := []struct {
		name  string
		given []int
		want  bool
	}{
		{name: "all match", given: []int{2, 4, 6}, want: true},
		{name: "one does not match", given: []int{2, 3, 6}, want: false},
		{name: "empty", given: []int{}, want: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			is := is.New(t)

			is.Equal(AllMatch(Produce(test.given), even), test.want)
		})
	}
}

func TestAllMatch_ShortCircuit(t *testing.T) {
	is := is.New(t)

	is.True(!AllMatch(strictProducer(3), func(elem int) bool {
		return elem < 3
	}))
}

func TestCount(t *testing.T) {
	is := is.New(t)

	is.Equal(Count(Produce([]int{1, 2, 3, 4, 5})), uint64(5))
	is.Equal(Count(Produce[int]()), uint64(0))
}

func TestFirst(t *testing.T) {
	is := is.New(t)

	is.Equal(First(Produce([]string{"a", "b"})), g.Some("a"))
	is.Equal(First(Produce[string]()), g.None[string]())
}

func TestFirst_ZeroValue(t *testing.T) {
	is := is.New(t)

	first := First(Produce([]int{0, 1}))

	is.True(first.Ok)
	is.Equal(first.Value, 0)
}

func TestFirst_ShortCircuit(t *testing.T) {
	is := is.New(t)

	is.Equal(First(strictProducer(0)), g.Some(0))
}

func TestFirstFunc(t *testing.T) {
	is := is.New(t)

	is.Equal(FirstFunc(Produce([]int{1, 3, 4, 6}), even), g.Some(4))
	is.Equal(FirstFunc(Produce([]int{1, 3, 5}), even), g.None[int]())
	is.Equal(FirstFunc(Produce[int](), even), g.None[int]())
}

func TestFirstFunc_ShortCircuit(t *testing.T) {
	is := is.New(t)

	examined := []int{}

	first := FirstFunc(strictProducer(7), func(elem int) bool {
		examined = append(examined, elem)
		return elem > 6
	})

	is.Equal(first, g.Some(7))
	is.Equal(examined, []int{0, 1, 2, 3, 4, 5, 6, 7})
}

func TestFirstOrDefault(t *testing.T) {
	is := is.New(t)

	is.Equal(FirstOrDefault(Produce([]int{5, 6})), 5)
	is.Equal(FirstOrDefault(Produce[int]()), 0)
	is.Equal(FirstOrDefault(strictProducer(0)), 0)
}

func TestFirstOrDefaultFunc(t *testing.T) {
	is := is.New(t)

	type point struct {
		x, y int
	}

	points := Produce([]point{{1, 1}, {2, 4}, {3, 9}})

	is.Equal(FirstOrDefaultFunc(points, func(p point) bool { return p.y > 3 }), point{2, 4})
	is.Equal(FirstOrDefaultFunc(points, func(p point) bool { return p.y > 10 }), point{})
	is.Equal(FirstOrDefaultFunc(strictProducer(2), func(elem int) bool { return elem == 2 }), 2)
}
