package gostream

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestFold_CollectSlice(t *testing.T) {
	is := is.New(t)

	doubled := Map(Range(1, 5), func(elem int) int {
		return elem * 2
	})

	result, err := Fold(doubled, nil, CollectSlice[int]())

	is.NoErr(err)
	is.Equal(result, []int{2, 4, 6, 8, 10})
}

func TestFold_CollectMap(t *testing.T) {
	is := is.New(t)

	result, err := Fold(Range(1, 3), map[int]string{}, CollectMap(Identity[int](), itoa))

	is.NoErr(err)
	is.Equal(result, map[int]string{
		1: "1",
		2: "2",
		3: "3",
	})
}

func TestFold_CollectMap_DuplicateKeyOverwrites(t *testing.T) {
	is := is.New(t)

	pairs := Of([]Pair[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "a", Value: 3},
	})

	result, err := Fold(pairs, map[string]int{}, CollectMap(
		func(pair Pair[string, int]) string { return pair.Key },
		func(pair Pair[string, int]) int { return pair.Value },
	))

	is.NoErr(err)
	is.Equal(result, map[string]int{
		"a": 3,
		"b": 2,
	})
}

func TestFold_CollectGroup(t *testing.T) {
	is := is.New(t)

	result, err := Fold(Range(1, 5), map[string][]int{}, CollectGroup(evenOddStr, Identity[int]()))

	is.NoErr(err)
	is.Equal(result, map[string][]int{
		"odd":  {1, 3, 5},
		"even": {2, 4},
	})
}

func TestFold_CollectPartition(t *testing.T) {
	is := is.New(t)

	result, err := Fold(Range(1, 5), map[bool][]int{}, CollectPartition(even, Identity[int]()))

	is.NoErr(err)
	is.Equal(result, map[bool][]int{
		false: {1, 3, 5},
		true:  {2, 4},
	})
}

func itoa(elem int) string {
	return strconv.Itoa(elem)
}

func even(elem int) bool {
	return elem%2 == 0
}

func evenOddStr(elem int) string {
	if elem%2 != 0 {
		return "odd"
	}

	return "even"
}
