package gostream

import (
	"testing"

	"github.com/matryer/is"
)

func TestOf(t *testing.T) {
	is := is.New(t)

	ints, err := Of([]int{1, 2}, []int{3, 4, 5}).Collect()

	is.NoErr(err)
	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestOf_Empty(t *testing.T) {
	is := is.New(t)

	ints, err := Of[int]().Collect()

	is.NoErr(err)
	is.Equal(ints, []int{})
}

func TestOf_Borrowed(t *testing.T) {
	is := is.New(t)

	elems := []int{1, 2, 3}

	ints := Of(elems)

	// the stream reads the slice at traversal time, not at construction time
	elems[1] = 20

	result, err := ints.Collect()

	is.NoErr(err)
	is.Equal(result, []int{1, 20, 3})
}

func TestNew(t *testing.T) {
	is := is.New(t)

	ints := New(func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i * i) {
				return
			}
		}
	})

	result, err := ints.Collect()

	is.NoErr(err)
	is.Equal(result, []int{1, 4, 9})
}

func TestRange(t *testing.T) {
	is := is.New(t)

	ints, err := Range(1, 10).Collect()

	is.NoErr(err)
	is.Equal(ints, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
}

func TestRange_SingleElement(t *testing.T) {
	is := is.New(t)

	ints, err := Range(7, 7).Collect()

	is.NoErr(err)
	is.Equal(ints, []int{7})
}

func TestRange_EndBeforeBegin(t *testing.T) {
	is := is.New(t)

	ints, err := Range(5, 1).Collect()

	is.NoErr(err)
	is.Equal(ints, []int{})
}

func TestRange_Negative(t *testing.T) {
	is := is.New(t)

	ints, err := Range(-3, 1).Collect()

	is.NoErr(err)
	is.Equal(ints, []int{-3, -2, -1, 0, 1})
}

func TestZeroValueStream(t *testing.T) {
	is := is.New(t)

	var ints Stream[int]

	result, err := ints.Collect()

	is.NoErr(err)
	is.Equal(result, []int{})
}
