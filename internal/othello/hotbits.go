package othello

import (
	"iter"
	"math/bits"
)

// HotBits is a one-shot cursor over the set bits of a bitboard. It owns a
// private copy of the mask and clears each bit as it is returned, so it
// cannot be restarted; call Bitboard.HotBits again for a fresh cursor.
type HotBits struct {
	mask      uint64
	remaining int
}

// Len returns the number of positions not yet returned.
func (h *HotBits) Len() int {
	return h.remaining
}

// Next removes and returns the most significant remaining set bit. It
// returns false once the cursor is exhausted.
func (h *HotBits) Next() (Position, bool) {
	if h.mask == 0 {
		return Position{}, false
	}
	bit := uint64(1) << (63 - bits.LeadingZeros64(h.mask))
	h.mask ^= bit
	h.remaining--
	return Position{mask: bit}, true
}

// All drains the cursor. Stopping a range loop early still consumes the
// position that was being yielded.
func (h *HotBits) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for {
			p, ok := h.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}
