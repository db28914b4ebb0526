package gostream

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ConsumerFunc consumes element elem.
type ConsumerFunc[T any] func(elem T)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc,
// or a new accumulator.
type AccumulatorFunc[T any, A any] func(acc A, elem T) A

// Number is a constraint that permits the numeric types Sum can accumulate.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrEmptyStream is the error returned by Min and Max when the stream
// produces no elements.
var ErrEmptyStream = errors.New("empty stream")

// Collect consumes the stream, collecting all produced elements into a slice,
// in order. This is the point where the pipeline's laziness ends.
func (s Stream[T]) Collect() ([]T, error) {
	if s.err != nil {
		return nil, s.err
	}

	result := []T{}

	s.forEach(func(elem T) bool {
		result = append(result, elem)
		return true
	})

	return result, nil
}

// Run consumes the stream for its side effects, such as those of Each,
// discarding the produced elements.
func (s Stream[T]) Run() error {
	if s.err != nil {
		return s.err
	}

	s.forEach(func(T) bool {
		return true
	})

	return nil
}

// Count consumes the stream and returns the number of elements produced.
func (s Stream[T]) Count() (int, error) {
	if s.err != nil {
		return 0, s.err
	}

	count := 0

	s.forEach(func(T) bool {
		count++
		return true
	})

	return count, nil
}

// All returns true if pred returns true for all elements produced by s, that
// is, all elements match. The upstream producers are stopped as soon as an
// element does not match. All is true for an empty stream.
func (s Stream[T]) All(pred PredicateFunc[T]) (bool, error) {
	if s.err != nil {
		return false, s.err
	}

	allMatch := true

	s.forEach(func(elem T) bool {
		if pred(elem) {
			return true
		}

		allMatch = false

		return false
	})

	return allMatch, nil
}

// Any returns true as soon as pred returns true for an element produced by s,
// that is, an element matches. The upstream producers are stopped as soon as
// an element matches.
func (s Stream[T]) Any(pred PredicateFunc[T]) (bool, error) {
	if s.err != nil {
		return false, s.err
	}

	anyMatch := false

	s.forEach(func(elem T) bool {
		if !pred(elem) {
			return true
		}

		anyMatch = true

		return false
	})

	return anyMatch, nil
}

// Fold consumes the stream, calling fold for each element produced by s to
// fold it into the accumulator acc, left to right, returning the final
// accumulator. Unlike Reduce, the accumulator may be of a different type than
// the elements, and the result is returned directly instead of as a stream.
func Fold[T any, A any](s Stream[T], acc A, fold AccumulatorFunc[T, A]) (A, error) {
	if s.err != nil {
		return acc, s.err
	}

	s.forEach(func(elem T) bool {
		acc = fold(acc, elem)
		return true
	})

	return acc, nil
}

// CountOf consumes the stream and returns the number of elements equal to
// value.
func CountOf[T comparable](s Stream[T], value T) (int, error) {
	if s.err != nil {
		return 0, s.err
	}

	count := 0

	s.forEach(func(elem T) bool {
		if elem == value {
			count++
		}

		return true
	})

	return count, nil
}

// Contains returns true if s produces at least one element equal to value.
// The upstream producers are stopped as soon as the value is found.
func Contains[T comparable](s Stream[T], value T) (bool, error) {
	return s.Any(func(elem T) bool {
		return elem == value
	})
}

// Min consumes the stream and returns its minimum element by natural
// ordering. It returns ErrEmptyStream if the stream produces no elements.
func Min[T constraints.Ordered](s Stream[T]) (T, error) {
	var result T

	if s.err != nil {
		return result, s.err
	}

	found := false

	s.forEach(func(elem T) bool {
		if !found || elem < result {
			result = elem
		}

		found = true

		return true
	})

	if !found {
		return result, ErrEmptyStream
	}

	return result, nil
}

// Max consumes the stream and returns its maximum element by natural
// ordering. It returns ErrEmptyStream if the stream produces no elements.
func Max[T constraints.Ordered](s Stream[T]) (T, error) {
	var result T

	if s.err != nil {
		return result, s.err
	}

	found := false

	s.forEach(func(elem T) bool {
		if !found || elem > result {
			result = elem
		}

		found = true

		return true
	})

	if !found {
		return result, ErrEmptyStream
	}

	return result, nil
}

// Sum consumes the stream and returns the arithmetic sum of its elements,
// starting from the zero value of the element type.
func Sum[T Number](s Stream[T]) (T, error) {
	var sum T

	if s.err != nil {
		return sum, s.err
	}

	s.forEach(func(elem T) bool {
		sum += elem
		return true
	})

	return sum, nil
}
