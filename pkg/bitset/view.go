package bitset

import "unsafe"

// View aliases the words of a Bitset without copying them.
//
// A View must not be retained across a mutation of its owner: Set, Reset,
// SetTo, Clear, CopyFrom and Swap all invalidate it, and every accessor
// except Valid panics with ErrStaleView once that has happened. The slices
// returned by Words and Bytes alias live storage and must never be written.
type View struct {
	owner *Bitset
	words []uint
	epoch uint64
}

// Valid reports whether the owner is unchanged since the view was taken.
func (v View) Valid() bool {
	return v.owner != nil && v.owner.epoch == v.epoch
}

func (v View) mustValid() {
	if !v.Valid() {
		panic(ErrStaleView)
	}
}

// Len returns the number of words.
func (v View) Len() int {
	v.mustValid()
	return len(v.words)
}

// Cap returns the owner's declared bit capacity.
func (v View) Cap() int {
	v.mustValid()
	return v.owner.capacity
}

// Word returns word i.
func (v View) Word(i int) uint {
	v.mustValid()
	return v.words[i]
}

// Bit reports whether bit idx is set.
func (v View) Bit(idx int) bool {
	v.mustValid()
	return v.owner.Get(idx)
}

// Words returns the backing words.
func (v View) Words() []uint {
	v.mustValid()
	return v.words
}

// Bytes reinterprets the backing words as bytes in native byte order.
func (v View) Bytes() []byte {
	v.mustValid()
	if len(v.words) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v.words[0])), len(v.words)*WordBits/8)
}
