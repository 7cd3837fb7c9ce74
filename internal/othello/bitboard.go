package othello

import (
	"iter"
	"math/bits"
	"strings"
)

// Bitboard represents an 8x8 board where each bit corresponds to a square.
// Bit 63 = a1, bit 56 = h1, bit 7 = a8, bit 0 = h8. Any combination of bits
// is a valid bitboard; see Position for the single-square variant.
type Bitboard uint64

// Squares is the number of squares on the board.
const Squares = 64

// Special masks
const (
	Empty Bitboard = 0
	Full  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// File masks
const (
	FileA Bitboard = 0x8080808080808080
	FileB Bitboard = FileA >> 1
	FileC Bitboard = FileA >> 2
	FileD Bitboard = FileA >> 3
	FileE Bitboard = FileA >> 4
	FileF Bitboard = FileA >> 5
	FileG Bitboard = FileA >> 6
	FileH Bitboard = FileA >> 7
)

// Rank masks
const (
	Rank1 Bitboard = 0xFF00000000000000
	Rank2 Bitboard = Rank1 >> 8
	Rank3 Bitboard = Rank1 >> 16
	Rank4 Bitboard = Rank1 >> 24
	Rank5 Bitboard = Rank1 >> 32
	Rank6 Bitboard = Rank1 >> 40
	Rank7 Bitboard = Rank1 >> 48
	Rank8 Bitboard = Rank1 >> 56
)

// FileMask holds the mask of each file (0-7).
var FileMask = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// RankMask holds the mask of each rank (0-7).
var RankMask = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// FromRaw wraps a raw 64-bit mask.
func FromRaw(raw uint64) Bitboard {
	return Bitboard(raw)
}

// Raw returns the underlying mask.
func (b Bitboard) Raw() uint64 {
	return uint64(b)
}

// IsEmpty returns true if no bits are set.
func (b Bitboard) IsEmpty() bool {
	return b == 0
}

// CountSet returns the number of set bits (population count).
func (b Bitboard) CountSet() int {
	return bits.OnesCount64(uint64(b))
}

// CountEmpty returns the number of clear bits.
func (b Bitboard) CountEmpty() int {
	return Squares - b.CountSet()
}

// And returns the squares set in both boards.
func (b Bitboard) And(o Bitboard) Bitboard { return b & o }

// Or returns the squares set in either board.
func (b Bitboard) Or(o Bitboard) Bitboard { return b | o }

// Xor returns the squares set in exactly one of the boards.
func (b Bitboard) Xor(o Bitboard) Bitboard { return b ^ o }

// AndNot returns the squares of b that are not set in o.
func (b Bitboard) AndNot(o Bitboard) Bitboard { return b &^ o }

// Not returns the complement of b.
func (b Bitboard) Not() Bitboard { return ^b }

// Has returns true if the square at p is set.
func (b Bitboard) Has(p Position) bool {
	return uint64(b)&p.mask != 0
}

// With returns b with the square at p set.
func (b Bitboard) With(p Position) Bitboard {
	return b | Bitboard(p.mask)
}

// Without returns b with the square at p cleared.
func (b Bitboard) Without(p Position) Bitboard {
	return b &^ Bitboard(p.mask)
}

// RotateClockwise returns the board turned 90 degrees clockwise.
func (b Bitboard) RotateClockwise() Bitboard {
	return b.rotate(&CWRotationTable)
}

// RotateCounterclockwise returns the board turned 90 degrees counterclockwise.
func (b Bitboard) RotateCounterclockwise() Bitboard {
	return b.rotate(&CCWRotationTable)
}

// rotate ORs together the table contribution of each of the 8 rows, row r
// being the byte at bits [r*8, r*8+8).
func (b Bitboard) rotate(table *[8][256]uint64) Bitboard {
	var out uint64
	for row := 0; row < 8; row++ {
		out |= table[row][uint8(b>>(row*8))]
	}
	return Bitboard(out)
}

// Reflect180 returns the board turned by a half turn: bit i moves to bit 63-i.
// It agrees with two quarter turns in either direction.
func (b Bitboard) Reflect180() Bitboard {
	return Bitboard(bits.Reverse64(uint64(b)))
}

// Rotations returns the counterclockwise, half-turn and clockwise transforms
// of b, in that order.
func (b Bitboard) Rotations() (ccw, rot180, cw Bitboard) {
	return b.RotateCounterclockwise(), b.Reflect180(), b.RotateClockwise()
}

// Bits yields b masked by each single-bit board, from bit 63 down to bit 0.
// The sequence always has Squares elements: the singleton when that bit is
// set and Empty otherwise. It can be ranged over any number of times.
func (b Bitboard) Bits() iter.Seq[Bitboard] {
	return func(yield func(Bitboard) bool) {
		for i := Squares - 1; i >= 0; i-- {
			if !yield(b & (1 << i)) {
				return
			}
		}
	}
}

// HotBits returns a cursor over the set bits of b, most significant first.
func (b Bitboard) HotBits() *HotBits {
	return &HotBits{mask: uint64(b), remaining: b.CountSet()}
}

// Positions returns every set square of b, most significant bit first.
func (b Bitboard) Positions() []Position {
	h := b.HotBits()
	positions := make([]Position, 0, h.Len())
	for p := range h.All() {
		positions = append(positions, p)
	}
	return positions
}

// squareMask returns the single-bit mask of (rank, file).
func squareMask(rank, file int) uint64 {
	return 1 << (63 - (rank*8 + file))
}

// String returns an 8x8 grid, one line per rank with rank 7 on top, using
// '1' for set squares and '.' for clear ones.
func (b Bitboard) String() string {
	var sb strings.Builder
	sb.Grow(Squares + 8)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if uint64(b)&squareMask(rank, file) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
