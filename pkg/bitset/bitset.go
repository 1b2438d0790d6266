// Package bitset stores boolean flags packed one per bit into machine words.
package bitset

import "math/bits"

// WordBits is the number of flags held by one backing word.
const WordBits = bits.UintSize

// WordIndex returns the word holding bit i.
func WordIndex(i int) int { return i / WordBits }

// BitOffset returns the position of bit i inside its word.
func BitOffset(i int) uint { return uint(i % WordBits) }

func wordsFor(capacity int) int { return (capacity + WordBits - 1) / WordBits }

// Bitset is a fixed-capacity array of flags. The zero value is an empty set.
type Bitset struct {
	words    []uint
	capacity int
	epoch    uint64
}

// WithSize allocates exactly ceil(capacity/WordBits) words with every bit
// cleared.
func WithSize(capacity int) *Bitset {
	if capacity < 0 {
		panic("bitset: negative capacity")
	}
	return &Bitset{words: make([]uint, wordsFor(capacity)), capacity: capacity}
}

// FromIndices returns a set sized to hold the largest supplied index with
// those bits set.
func FromIndices(indices []int) (*Bitset, error) {
	capacity := 0
	for _, i := range indices {
		if i < 0 {
			return nil, &IndexError{Index: i}
		}
		if i+1 > capacity {
			capacity = i + 1
		}
	}
	b := WithSize(capacity)
	for _, i := range indices {
		b.words[WordIndex(i)] |= 1 << BitOffset(i)
	}
	return b, nil
}

// Cap returns the number of flags requested at construction.
func (b *Bitset) Cap() int { return b.capacity }

// Len returns the number of allocated words.
func (b *Bitset) Len() int { return len(b.words) }

// Check reports whether idx addresses an allocated bit.
func (b *Bitset) Check(idx int) error {
	if idx < 0 || WordIndex(idx) >= len(b.words) {
		return &IndexError{Index: idx, Words: len(b.words)}
	}
	return nil
}

func (b *Bitset) mustCheck(idx int) {
	if err := b.Check(idx); err != nil {
		panic(err)
	}
}

// Get reports whether bit idx is set. It panics with *IndexError when idx is
// outside the allocated words.
func (b *Bitset) Get(idx int) bool {
	b.mustCheck(idx)
	return b.words[WordIndex(idx)]>>BitOffset(idx)&1 == 1
}

// Set turns bit idx on.
func (b *Bitset) Set(idx int) {
	b.mustCheck(idx)
	b.words[WordIndex(idx)] |= 1 << BitOffset(idx)
	b.epoch++
}

// Reset turns bit idx off.
func (b *Bitset) Reset(idx int) {
	b.mustCheck(idx)
	b.words[WordIndex(idx)] &^= 1 << BitOffset(idx)
	b.epoch++
}

// SetTo stores v at bit idx.
func (b *Bitset) SetTo(idx int, v bool) {
	if v {
		b.Set(idx)
		return
	}
	b.Reset(idx)
}

// Count returns the number of set bits.
func (b *Bitset) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount(w)
	}
	return n
}

// Clear turns every bit off.
func (b *Bitset) Clear() {
	clear(b.words)
	b.epoch++
}

// CopyFrom overwrites b with the contents of src, reallocating when the word
// counts differ.
func (b *Bitset) CopyFrom(src *Bitset) {
	if len(b.words) != len(src.words) {
		b.words = make([]uint, len(src.words))
	}
	copy(b.words, src.words)
	b.capacity = src.capacity
	b.epoch++
}

// Swap exchanges the contents of b and other. Views of either are invalidated.
func (b *Bitset) Swap(other *Bitset) {
	b.words, other.words = other.words, b.words
	b.capacity, other.capacity = other.capacity, b.capacity
	b.epoch++
	other.epoch++
}

// View returns a read-only window onto the backing words. It stays valid
// until the next mutation of b.
func (b *Bitset) View() View {
	return View{owner: b, words: b.words, epoch: b.epoch}
}
