package render

import (
	"fmt"
	"strings"

	"github.com/hailam/othello/internal/othello"
)

// Glyphs used by Text.
const (
	BlackGlyph = 'X'
	WhiteGlyph = 'O'
	EmptyGlyph = '.'
)

// Text renders black and white stones as an 8x8 character grid with rank
// and file labels, rank 8 first.
func Text(black, white othello.Bitboard) (string, error) {
	if overlap := black.And(white); !overlap.IsEmpty() {
		return "", fmt.Errorf("%w: %v", ErrOverlap, overlap.Positions())
	}

	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			p, err := othello.PositionAt(rank, file)
			if err != nil {
				return "", err
			}
			switch {
			case black.Has(p):
				sb.WriteByte(BlackGlyph)
			case white.Has(p):
				sb.WriteByte(WhiteGlyph)
			default:
				sb.WriteByte(EmptyGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String(), nil
}
