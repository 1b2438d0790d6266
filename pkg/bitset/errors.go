package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange reports a bit index that the allocated words cannot hold.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrStaleView reports use of a View after its owner was mutated.
	ErrStaleView = errors.New("bitset view used after owner mutation")
)

// IndexError describes an out-of-range access.
type IndexError struct {
	Index int
	Words int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bitset: index %d out of range for %d words (%d bits)", e.Index, e.Words, e.Words*WordBits)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
