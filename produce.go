package gostream

import (
	"golang.org/x/exp/constraints"
)

// ProducerFunc produces the elements of a stream by calling yield once per
// element, in order. It must stop producing and return as soon as yield
// returns false.
type ProducerFunc[T any] func(yield func(elem T) bool)

// New returns a stream that produces the elements produced by prod.
// prod may be called multiple times, once per terminal operation consuming
// the stream; it must produce the same elements each time.
func New[T any](prod ProducerFunc[T]) Stream[T] {
	return Stream[T]{prod: prod}
}

// Of returns a stream that produces the elements of the given slices, in order.
// The slices are borrowed, not copied: the caller must keep them alive and
// unmodified until the last terminal operation has consumed the stream.
func Of[T any](slices ...[]T) Stream[T] {
	return New(func(yield func(T) bool) {
		for _, slice := range slices {
			for _, elem := range slice {
				if !yield(elem) {
					return
				}
			}
		}
	})
}

// Range returns a stream that produces the integers of the inclusive interval
// [begin, end], in ascending order. If end < begin, the stream is empty.
func Range[T constraints.Integer](begin T, end T) Stream[T] {
	return New(func(yield func(T) bool) {
		if end < begin {
			return
		}

		for i := begin; ; i++ {
			if !yield(i) || i == end {
				return
			}
		}
	})
}
