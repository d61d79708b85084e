// Package iterable provides a set of operations on sequences of elements, built on iter.Seq.
// Sequences form a pipeline of operations that elements are being passed through.
//
// Sequences are constructed by creating an initial iter.Seq, which can come from slices,
// channels, generator functions, or any arbitrary source.
//
// Elements may then be operated upon using mapping, filtering, flattening, and sorting operations.
// These operations are lazy: building a pipeline does not consume anything, and each element is
// computed only when the consumer asks for it. Traversing a pipeline again runs it again from the
// start, against a fresh traversal of its source.
//
// Finally, the elements are consumed by materializers, such as collecting them into slices, sets,
// maps, sorted or persistent containers, or by accessors such as First, which stop pulling
// elements as soon as the result is known.
//
// Operations that pass an index to their functions count every element of the upstream sequence,
// starting at 0 for each traversal. The index never wraps around: exceeding math.MaxUint64 panics
// with ErrIndexOverflow.
//
// Dictionary materializers refuse duplicate keys by returning a DuplicateKeyError.
// Panics raised by caller-supplied functions are never recovered.
package iterable
