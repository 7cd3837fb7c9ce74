package othello

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrNotSingleBit is returned when a Position is built from a mask that
	// does not have exactly one bit set.
	ErrNotSingleBit = errors.New("othello: position needs exactly one set bit")

	// ErrOutOfRange is returned for a rank or file outside 0-7.
	ErrOutOfRange = errors.New("othello: rank or file out of range")
)

// Position is a single square: a bitboard with exactly one bit set.
//
// Positions are built by NewPosition, PositionAt, ParsePosition or by
// decomposing a Bitboard with HotBits. The zero Position is not a square;
// IsValid reports false for it and String renders it as "-".
type Position struct {
	mask uint64
}

// NewPosition checks that raw has exactly one bit set and wraps it.
func NewPosition(raw uint64) (Position, error) {
	if bits.OnesCount64(raw) != 1 {
		return Position{}, fmt.Errorf("%w: %#016x", ErrNotSingleBit, raw)
	}
	return Position{mask: raw}, nil
}

// MustPosition is like NewPosition but panics if raw is not a single bit.
func MustPosition(raw uint64) Position {
	p, err := NewPosition(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// PositionAt returns the square at rank and file (0-indexed).
func PositionAt(rank, file int) (Position, error) {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return Position{}, fmt.Errorf("%w: rank %d, file %d", ErrOutOfRange, rank, file)
	}
	return Position{mask: squareMask(rank, file)}, nil
}

// ParsePosition parses algebraic notation (e.g., "d5") into a Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("invalid square: %q", s)
	}

	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'

	p, err := PositionAt(rank, file)
	if err != nil {
		return Position{}, fmt.Errorf("invalid square %q: %w", s, err)
	}
	return p, nil
}

// IsValid returns true unless p is the zero Position.
func (p Position) IsValid() bool {
	return p.mask != 0
}

// Bitboard returns the single-square board of p.
func (p Position) Bitboard() Bitboard {
	return Bitboard(p.mask)
}

// Raw returns the underlying single-bit mask.
func (p Position) Raw() uint64 {
	return p.mask
}

// Index returns the bit index (0-63) of p, or -1 for the zero Position.
func (p Position) Index() int {
	return 63 - bits.LeadingZeros64(p.mask)
}

// Square returns rank*8+file, the square number counted from a1.
func (p Position) Square() int {
	return bits.LeadingZeros64(p.mask)
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (p Position) Rank() int {
	return p.Square() >> 3
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (p Position) File() int {
	return p.Square() & 7
}

// String returns the algebraic notation for the square (e.g., "e4").
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+p.File(), '1'+p.Rank())
}
