package othello

import (
	"math/bits"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func raws(ps []Position) []uint64 {
	out := make([]uint64, len(ps))
	for i, p := range ps {
		out[i] = p.Raw()
	}
	return out
}

func TestHotBitsEmpty(t *testing.T) {
	h := Empty.HotBits()
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
	if p, ok := h.Next(); ok {
		t.Errorf("Next() = %v, true on an empty board", p)
	}
	if got := Empty.Positions(); len(got) != 0 {
		t.Errorf("Positions() = %v, want none", got)
	}
}

func TestHotBitsThreeSquares(t *testing.T) {
	b := FromRaw(0x8000000000100001)

	got := b.Positions()
	want := []uint64{0x8000000000000000, 0x0000000000100000, 0x0000000000000001}
	if diff := cmp.Diff(want, raws(got)); diff != "" {
		t.Fatalf("Positions() mismatch (-want +got):\n%s", diff)
	}

	var union Bitboard
	for _, p := range got {
		if bits.OnesCount64(p.Raw()) != 1 {
			t.Errorf("position %#016x does not have exactly one bit", p.Raw())
		}
		union = union.With(p)
	}
	if union != b {
		t.Errorf("union of positions = %#016x, want %#016x", union.Raw(), b.Raw())
	}
}

func TestHotBitsProperties(t *testing.T) {
	for _, b := range sampleBoards() {
		h := b.HotBits()
		if h.Len() != b.CountSet() {
			t.Fatalf("%#016x: Len() = %d, want %d", b.Raw(), h.Len(), b.CountSet())
		}

		var (
			n     int
			union Bitboard
			prev  uint64
		)
		for p := range h.All() {
			if bits.OnesCount64(p.Raw()) != 1 {
				t.Fatalf("%#016x: position %#016x is not a single bit", b.Raw(), p.Raw())
			}
			if n > 0 && p.Raw() >= prev {
				t.Fatalf("%#016x: position %#016x not below previous %#016x", b.Raw(), p.Raw(), prev)
			}
			prev = p.Raw()
			n++
			union = union.With(p)
			if h.Len() != b.CountSet()-n {
				t.Fatalf("%#016x: Len() = %d after %d positions", b.Raw(), h.Len(), n)
			}
		}
		if n != b.CountSet() {
			t.Fatalf("%#016x: yielded %d positions, want %d", b.Raw(), n, b.CountSet())
		}
		if union != b {
			t.Fatalf("%#016x: union of positions = %#016x", b.Raw(), union.Raw())
		}
	}
}

func TestHotBitsIsOneShot(t *testing.T) {
	b := FromRaw(0x0000000000000F00)
	h := b.HotBits()

	first := 0
	for range h.All() {
		first++
	}
	second := 0
	for range h.All() {
		second++
	}
	if first != 4 || second != 0 {
		t.Errorf("passes yielded %d then %d, want 4 then 0", first, second)
	}
	if _, ok := h.Next(); ok {
		t.Error("Next() succeeded on an exhausted cursor")
	}

	// The source board is untouched and yields a fresh cursor.
	if got := b.HotBits().Len(); got != 4 {
		t.Errorf("fresh cursor Len() = %d, want 4", got)
	}
}

func TestHotBitsBreakConsumes(t *testing.T) {
	h := Full.HotBits()
	for p := range h.All() {
		if p.Raw() != 1<<63 {
			t.Fatalf("first position = %#016x, want bit 63", p.Raw())
		}
		break
	}
	if h.Len() != 63 {
		t.Errorf("Len() = %d after one position, want 63", h.Len())
	}
	p, ok := h.Next()
	if !ok || p.Raw() != 1<<62 {
		t.Errorf("Next() = %#016x, %v; want bit 62", p.Raw(), ok)
	}
}

func BenchmarkHotBits(b *testing.B) {
	bb := FromRaw(0x0123456789ABCDEF)
	for i := 0; i < b.N; i++ {
		h := bb.HotBits()
		for {
			if _, ok := h.Next(); !ok {
				break
			}
		}
	}
}
