package othello

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStone is returned by ParseStone for unrecognised names.
var ErrUnknownStone = errors.New("othello: unknown stone")

// Stone is one of the two player markers.
type Stone uint8

const (
	Black Stone = iota
	White
)

// Flip returns the opposite stone.
func (s Stone) Flip() Stone {
	return s ^ 1
}

// String returns the stone name.
func (s Stone) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return fmt.Sprintf("Stone(%d)", uint8(s))
	}
}

// ParseStone accepts "black"/"b" or "white"/"w", case-insensitively.
func ParseStone(s string) (Stone, error) {
	switch strings.ToLower(s) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return Black, fmt.Errorf("%w: %q", ErrUnknownStone, s)
}
