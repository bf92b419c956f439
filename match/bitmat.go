// bitmat.go — dense boolean matrix over packed uint64 words.
//
// Bitmat backs the candidate matrix: filters clear bits, the search reads
// rows. Row operations are word-parallel; bits past the column count stay
// zero so whole-word counts and comparisons need no masking.

package match

import (
	"fmt"
	"math/bits"
	"strings"
)

const wordBits = 64

// Bitmat is a mutable r x c boolean matrix. Index arguments must be in
// range; out-of-range access panics like a slice.
type Bitmat struct {
	r, c   int
	stride int // words per row
	words  []uint64
}

// NewBitmat returns an all-false matrix. Zero dimensions are legal.
//
// Errors:
//   - ErrBitmatShape when r or c is negative.
func NewBitmat(r, c int) (*Bitmat, error) {
	if r < 0 || c < 0 {
		return nil, fmt.Errorf("NewBitmat(%d,%d): %w", r, c, ErrBitmatShape)
	}
	stride := (c + wordBits - 1) / wordBits

	return &Bitmat{r: r, c: c, stride: stride, words: make([]uint64, r*stride)}, nil
}

// Rows returns the row count.
func (b *Bitmat) Rows() int { return b.r }

// Cols returns the column count.
func (b *Bitmat) Cols() int { return b.c }

func (b *Bitmat) check(i, j int) {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		panic(fmt.Sprintf("match: bitmat index (%d,%d) out of range %dx%d", i, j, b.r, b.c))
	}
}

// Get reports bit (i, j).
func (b *Bitmat) Get(i, j int) bool {
	b.check(i, j)

	return b.words[i*b.stride+j/wordBits]&(1<<(uint(j)%wordBits)) != 0
}

// Set turns bit (i, j) on.
func (b *Bitmat) Set(i, j int) {
	b.check(i, j)
	b.words[i*b.stride+j/wordBits] |= 1 << (uint(j) % wordBits)
}

// Clear turns bit (i, j) off.
func (b *Bitmat) Clear(i, j int) {
	b.check(i, j)
	b.words[i*b.stride+j/wordBits] &^= 1 << (uint(j) % wordBits)
}

// SetAll turns every bit on.
func (b *Bitmat) SetAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.maskTail()
}

// maskTail zeroes the unused bits of each row's last word.
func (b *Bitmat) maskTail() {
	rem := b.c % wordBits
	if rem == 0 || b.stride == 0 {
		return
	}
	mask := (uint64(1) << uint(rem)) - 1
	for i := 0; i < b.r; i++ {
		b.words[i*b.stride+b.stride-1] &= mask
	}
}

// Count returns the number of set bits.
func (b *Bitmat) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// CountRow returns the number of set bits in row i.
func (b *Bitmat) CountRow(i int) int {
	if i < 0 || i >= b.r {
		panic(fmt.Sprintf("match: bitmat row %d out of range %d", i, b.r))
	}
	n := 0
	for _, w := range b.words[i*b.stride : (i+1)*b.stride] {
		n += bits.OnesCount64(w)
	}

	return n
}

// RowIndices returns the set columns of row i, ascending.
func (b *Bitmat) RowIndices(i int) []int {
	if i < 0 || i >= b.r {
		panic(fmt.Sprintf("match: bitmat row %d out of range %d", i, b.r))
	}
	out := make([]int, 0, b.CountRow(i))
	row := b.words[i*b.stride : (i+1)*b.stride]
	for wi, w := range row {
		for w != 0 {
			out = append(out, wi*wordBits+bits.TrailingZeros64(w))
			w &= w - 1
		}
	}

	return out
}

// RowKey returns an opaque key equal for two rows exactly when their bits
// are equal, usable as a map key.
func (b *Bitmat) RowKey(i int) string {
	if i < 0 || i >= b.r {
		panic(fmt.Sprintf("match: bitmat row %d out of range %d", i, b.r))
	}
	var sb strings.Builder
	sb.Grow(b.stride * 8)
	for _, w := range b.words[i*b.stride : (i+1)*b.stride] {
		for s := 0; s < wordBits; s += 8 {
			sb.WriteByte(byte(w >> uint(s)))
		}
	}

	return sb.String()
}

// Clone returns an independent copy.
func (b *Bitmat) Clone() *Bitmat {
	out := &Bitmat{r: b.r, c: b.c, stride: b.stride, words: make([]uint64, len(b.words))}
	copy(out.words, b.words)

	return out
}

// Equal reports whether both matrices have the same shape and bits.
func (b *Bitmat) Equal(o *Bitmat) bool {
	if o == nil || b.r != o.r || b.c != o.c {
		return false
	}
	for i, w := range b.words {
		if w != o.words[i] {
			return false
		}
	}

	return true
}
