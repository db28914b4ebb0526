package gostream

// A Stream is a lazy pipeline of operations over a sequence of elements.
// It describes how elements are to be produced, but holds no materialized data
// beyond what its source generates: building a pipeline never touches elements.
//
// A Stream is an immutable value. Every operation wraps the upstream producer in
// a new one, so the same stream may be extended in different directions, or be
// consumed by terminal operations more than once, as long as any slices it
// borrows are still alive and unmodified.
//
// The zero value is an empty stream.
type Stream[T any] struct {
	prod ProducerFunc[T]
	err  error
}

// A Pair is a two-component element, such as produced by WithIndex or consumed
// by Keys and Values.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// forEach drives one traversal of the stream's producer.
// All per-traversal state of the pipeline's stages lives inside the producers,
// so each call starts a fresh traversal.
func (s Stream[T]) forEach(yield func(elem T) bool) {
	if s.prod == nil {
		return
	}

	s.prod(yield)
}

// Producer returns the stream's pipeline as a ProducerFunc, for use as a stream
// source elsewhere, for example with New or FlatMap. Any pending construction
// error of the stream is not carried over.
func (s Stream[T]) Producer() ProducerFunc[T] {
	return s.forEach
}

// failed returns a stream of any element type carrying the given error.
// Terminal operations report the error instead of consuming the stream.
func failed[T any](err error) Stream[T] {
	return Stream[T]{err: err}
}
