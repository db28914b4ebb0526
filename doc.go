// Package gostream provides a fluent set of lazy operations on streams of elements.
// Streams form a pipeline of operations that elements are being passed through.
//
// Streams are constructed by wrapping slices with Of, by generating an inclusive
// integer interval with Range, or by supplying an arbitrary ProducerFunc with New.
//
// Elements may then be operated upon using mapping, filtering, splitting, chunking,
// and sorting operations. Each operation returns a new stream describing the extended
// pipeline; the stream it was called on is left untouched and remains usable.
// Operations that need a new type parameter, constrain the element type
// (comparable, ordered, numeric), or wrap the element type in the result, such as
// ChunkEvery and WithIndex, are package-level functions, since Go methods can
// neither introduce type parameters nor instantiate their receiver type recursively.
//
// Finally, the elements are consumed by terminal operations, such as collecting them
// into slices, counting, summing, or folding them, checking for matching elements,
// or simply running the pipeline for its side effects.
//
// Streams are always lazy, meaning that constructing a pipeline performs no element
// access: elements are produced one at a time, on demand, only while a terminal
// operation consumes the stream. Operations such as Take and Any stop the upstream
// producers early once their result is determined.
//
// Evaluation is single-threaded and synchronous. Slices wrapped with Of are borrowed,
// not copied: the caller must keep them alive and unmodified until the last terminal
// operation has consumed the stream.
package gostream
