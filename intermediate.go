package gostream

import (
	"golang.org/x/exp/slices"
)

// MapperFunc maps element elem to type U.
type MapperFunc[T any, U any] func(elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// An InvalidSizeError is reported by terminal operations when Take, Skip, or
// ChunkEvery received a size or count outside of its valid range.
type InvalidSizeError struct {
	// Op is the operation that received the size.
	Op string

	// Size is the invalid size.
	Size int
}

// Map returns a stream that calls mapp for each element produced by s, mapping
// it to type U. mapp is called once per element, during a terminal traversal.
func Map[T any, U any](s Stream[T], mapp MapperFunc[T, U]) Stream[U] {
	if s.err != nil {
		return failed[U](s.err)
	}

	return New(func(yield func(U) bool) {
		s.forEach(func(elem T) bool {
			return yield(mapp(elem))
		})
	})
}

// FlatMap returns a stream that calls mapp for each element produced by s,
// mapping it to an intermediate producer of elements of type U.
// The new stream produces all elements produced by the intermediate producers,
// in order.
func FlatMap[T any, U any](s Stream[T], mapp MapperFunc[T, ProducerFunc[U]]) Stream[U] {
	if s.err != nil {
		return failed[U](s.err)
	}

	return New(func(yield func(U) bool) {
		s.forEach(func(elem T) bool {
			more := true

			mapp(elem)(func(outElem U) bool {
				more = yield(outElem)
				return more
			})

			return more
		})
	})
}

// Each returns a stream that calls each for each element produced by s, in
// order, and produces the same elements. each is called during a terminal
// traversal, immediately before the element is passed downstream.
func (s Stream[T]) Each(each ConsumerFunc[T]) Stream[T] {
	if s.err != nil {
		return s
	}

	return New(func(yield func(T) bool) {
		s.forEach(func(elem T) bool {
			each(elem)
			return yield(elem)
		})
	})
}

// Filter returns a stream that calls pred for each element produced by s, and
// only produces the elements for which pred returns true, in order.
func (s Stream[T]) Filter(pred PredicateFunc[T]) Stream[T] {
	if s.err != nil {
		return s
	}

	return New(func(yield func(T) bool) {
		s.forEach(func(elem T) bool {
			if !pred(elem) {
				return true
			}

			return yield(elem)
		})
	})
}

// Reject returns a stream that calls pred for each element produced by s, and
// only produces the elements for which pred returns false, in order.
func (s Stream[T]) Reject(pred PredicateFunc[T]) Stream[T] {
	return s.Filter(func(elem T) bool {
		return !pred(elem)
	})
}

// Take returns a stream that produces the same elements as s, in order, up to
// count elements. The upstream producer is stopped once count elements have
// been produced, so elements beyond that position are never evaluated.
// A negative count is an InvalidSizeError; zero yields an empty stream.
func (s Stream[T]) Take(count int) Stream[T] {
	if s.err != nil {
		return s
	}

	if count < 0 {
		return failed[T](&InvalidSizeError{Op: "Take", Size: count})
	}

	return New(func(yield func(T) bool) {
		if count == 0 {
			return
		}

		done := 0

		s.forEach(func(elem T) bool {
			if !yield(elem) {
				return false
			}

			done++

			return done < count
		})
	})
}

// Skip returns a stream that produces the same elements as s, in order,
// skipping the first count elements. A negative count is an InvalidSizeError.
func (s Stream[T]) Skip(count int) Stream[T] {
	if s.err != nil {
		return s
	}

	if count < 0 {
		return failed[T](&InvalidSizeError{Op: "Skip", Size: count})
	}

	return New(func(yield func(T) bool) {
		done := 0

		s.forEach(func(elem T) bool {
			if done < count {
				done++
				return true
			}

			return yield(elem)
		})
	})
}

// Sort returns a stream that consumes the elements of s, sorts them using
// less, and produces them in sorted order. The elements are buffered when a
// terminal traversal begins, not at construction time.
func (s Stream[T]) Sort(less LessFunc[T]) Stream[T] {
	if s.err != nil {
		return s
	}

	return New(func(yield func(T) bool) {
		result := []T{}

		s.forEach(func(elem T) bool {
			result = append(result, elem)
			return true
		})

		slices.SortFunc(result, less)

		for _, elem := range result {
			if !yield(elem) {
				return
			}
		}
	})
}

// SplitBy returns a stream that splits the elements of s into groups delimited
// by occurrences of token, analogous to splitting a string by a separator.
// The token itself is excluded from the groups. n occurrences of token produce
// n+1 groups: leading, trailing, and consecutive tokens produce empty groups,
// and a stream without tokens produces a single group.
func SplitBy[T comparable](s Stream[T], token T) Stream[[]T] {
	if s.err != nil {
		return failed[[]T](s.err)
	}

	return New(func(yield func([]T) bool) {
		group := []T{}
		stopped := false

		s.forEach(func(elem T) bool {
			if elem != token {
				group = append(group, elem)
				return true
			}

			if !yield(group) {
				stopped = true
				return false
			}

			group = []T{}

			return true
		})

		if !stopped {
			yield(group)
		}
	})
}

// Join returns a stream that produces the elements of the groups produced by
// s, concatenated in order, removing one level of nesting.
func Join[T any](s Stream[[]T]) Stream[T] {
	if s.err != nil {
		return failed[T](s.err)
	}

	return New(func(yield func(T) bool) {
		s.forEach(func(group []T) bool {
			for _, elem := range group {
				if !yield(elem) {
					return false
				}
			}

			return true
		})
	})
}

// Keys returns a stream that produces the first component of each pair
// produced by s, in order.
func Keys[K any, V any](s Stream[Pair[K, V]]) Stream[K] {
	return Map(s, func(pair Pair[K, V]) K {
		return pair.Key
	})
}

// Values returns a stream that produces the second component of each pair
// produced by s, in order.
func Values[K any, V any](s Stream[Pair[K, V]]) Stream[V] {
	return Map(s, func(pair Pair[K, V]) V {
		return pair.Value
	})
}

// WithIndex returns a stream that produces a pair (index, element) for each
// element produced by s, in order. The index starts at 0.
func WithIndex[T any](s Stream[T]) Stream[Pair[int, T]] {
	if s.err != nil {
		return failed[Pair[int, T]](s.err)
	}

	return New(func(yield func(Pair[int, T]) bool) {
		index := 0

		s.forEach(func(elem T) bool {
			pair := Pair[int, T]{Key: index, Value: elem}
			index++

			return yield(pair)
		})
	})
}

// Uniq returns a stream that produces each distinct element of s exactly once,
// in order of first occurrence.
func Uniq[T comparable](s Stream[T]) Stream[T] {
	if s.err != nil {
		return s
	}

	return New(func(yield func(T) bool) {
		seen := map[T]struct{}{}

		s.forEach(func(elem T) bool {
			if _, ok := seen[elem]; ok {
				return true
			}

			seen[elem] = struct{}{}

			return yield(elem)
		})
	})
}

// ChunkEvery returns a stream that produces consecutive non-overlapping groups
// of size elements each, in order. The final group is shorter if the element
// count is not a multiple of size. A size smaller than 1 is an
// InvalidSizeError.
func ChunkEvery[T any](s Stream[T], size int) Stream[[]T] {
	if s.err != nil {
		return failed[[]T](s.err)
	}

	if size < 1 {
		return failed[[]T](&InvalidSizeError{Op: "ChunkEvery", Size: size})
	}

	return New(func(yield func([]T) bool) {
		chunk := []T{}
		stopped := false

		s.forEach(func(elem T) bool {
			chunk = append(chunk, elem)

			if len(chunk) < size {
				return true
			}

			if !yield(chunk) {
				stopped = true
				return false
			}

			chunk = []T{}

			return true
		})

		if !stopped && len(chunk) > 0 {
			yield(chunk)
		}
	})
}

// Reduce immediately folds the elements of s into a single value, calling
// reduce for each element to fold it into the accumulator, starting from
// initial, left to right. The result is wrapped as a one-element stream so
// that it composes with further operations.
func (s Stream[T]) Reduce(initial T, reduce AccumulatorFunc[T, T]) Stream[T] {
	if s.err != nil {
		return s
	}

	acc := initial

	s.forEach(func(elem T) bool {
		acc = reduce(acc, elem)
		return true
	})

	return Of([]T{acc})
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(elem T) T {
		return elem
	}
}

// Error implements error.
func (e *InvalidSizeError) Error() string {
	return "invalid size"
}
