package iterable

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// ErrDuplicateKey is matched by every DuplicateKeyError, regardless of its key type.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrIndexOverflow is the cause of the panic raised when an element index would exceed math.MaxUint64.
var ErrIndexOverflow = errors.New("index overflow")

// A DuplicateKeyError is returned by dictionary materializers to indicate that
// a key could not be added because it already exists.
type DuplicateKeyError[K any] struct {
	// Key is the key that was already in the dictionary.
	Key K

	// Index is the 0-based position of the offending element in the upstream sequence.
	Index uint64
}

// Error implements error.
func (e *DuplicateKeyError[K]) Error() string {
	return fmt.Sprintf("duplicate key %v at index %d", e.Key, e.Index)
}

// Is reports whether target is ErrDuplicateKey.
func (e *DuplicateKeyError[K]) Is(target error) bool {
	return target == ErrDuplicateKey
}

// LogValue implements slog.LogValuer.
func (e *DuplicateKeyError[K]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("key", e.Key),
		slog.Uint64("index", e.Index),
	)
}

// counter is the checked element index shared by all indexed operations.
type counter struct {
	n uint64
}

// advance increments the counter, panicking instead of wrapping around.
func (c *counter) advance() {
	if c.n == math.MaxUint64 {
		panic(fmt.Errorf("advance past %d: %w", c.n, ErrIndexOverflow))
	}

	c.n++
}
