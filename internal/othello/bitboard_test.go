package othello

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sampleBoards returns the empty and full boards, every single-bit board and
// its complement, every single-row board, and a fixed pseudo-random sample.
func sampleBoards() []Bitboard {
	boards := []Bitboard{Empty, Full}
	for i := 0; i < Squares; i++ {
		boards = append(boards, Bitboard(1)<<i, ^(Bitboard(1) << i))
	}
	for row := 0; row < 8; row++ {
		for v := 1; v < 256; v++ {
			boards = append(boards, Bitboard(v)<<(row*8))
		}
	}
	rng := rand.New(rand.NewPCG(0x5eed, 0x0f0f))
	for i := 0; i < 4096; i++ {
		boards = append(boards, Bitboard(rng.Uint64()))
	}
	return boards
}

// naiveClockwise rotates one bit at a time.
func naiveClockwise(b Bitboard) Bitboard {
	var out Bitboard
	for i := 0; i < Squares; i++ {
		if b&(1<<i) != 0 {
			row, col := i/8, i%8
			out |= 1 << ((7-col)*8 + row)
		}
	}
	return out
}

// naiveCounterclockwise rotates one bit at a time.
func naiveCounterclockwise(b Bitboard) Bitboard {
	var out Bitboard
	for i := 0; i < Squares; i++ {
		if b&(1<<i) != 0 {
			row, col := i/8, i%8
			out |= 1 << (col*8 + (7 - row))
		}
	}
	return out
}

func TestRawRoundTrip(t *testing.T) {
	for _, b := range sampleBoards() {
		if got := FromRaw(b.Raw()); got != b {
			t.Fatalf("FromRaw(%#016x.Raw()) = %#016x", b.Raw(), got.Raw())
		}
	}
}

func TestCountSetAndEmpty(t *testing.T) {
	tests := []struct {
		name  string
		b     Bitboard
		set   int
		empty bool
	}{
		{"empty", Empty, 0, true},
		{"full", Full, 64, false},
		{"a1", 0x8000000000000000, 1, false},
		{"low half", 0x00000000FFFFFFFF, 32, false},
		{"file a", FileA, 8, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.b.CountSet(); got != tc.set {
				t.Errorf("CountSet() = %d, want %d", got, tc.set)
			}
			if got := tc.b.CountEmpty(); got != 64-tc.set {
				t.Errorf("CountEmpty() = %d, want %d", got, 64-tc.set)
			}
			if got := tc.b.IsEmpty(); got != tc.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tc.empty)
			}
		})
	}

	for _, b := range sampleBoards() {
		if b.CountSet()+b.CountEmpty() != Squares {
			t.Fatalf("%#016x: CountSet %d + CountEmpty %d != 64", b.Raw(), b.CountSet(), b.CountEmpty())
		}
	}
}

func TestRotationsMatchPerBitRotation(t *testing.T) {
	for _, b := range sampleBoards() {
		if got, want := b.RotateClockwise(), naiveClockwise(b); got != want {
			t.Fatalf("%#016x.RotateClockwise() = %#016x, want %#016x", b.Raw(), got.Raw(), want.Raw())
		}
		if got, want := b.RotateCounterclockwise(), naiveCounterclockwise(b); got != want {
			t.Fatalf("%#016x.RotateCounterclockwise() = %#016x, want %#016x", b.Raw(), got.Raw(), want.Raw())
		}
	}
}

func TestRotationsPreserveCount(t *testing.T) {
	for _, b := range sampleBoards() {
		ccw, rot180, cw := b.Rotations()
		n := b.CountSet()
		if ccw.CountSet() != n || rot180.CountSet() != n || cw.CountSet() != n {
			t.Fatalf("%#016x: counts ccw=%d 180=%d cw=%d, want %d",
				b.Raw(), ccw.CountSet(), rot180.CountSet(), cw.CountSet(), n)
		}
	}
}

func TestOppositeRotationsCancel(t *testing.T) {
	for _, b := range sampleBoards() {
		if got := b.RotateClockwise().RotateCounterclockwise(); got != b {
			t.Fatalf("cw then ccw of %#016x = %#016x", b.Raw(), got.Raw())
		}
		if got := b.RotateCounterclockwise().RotateClockwise(); got != b {
			t.Fatalf("ccw then cw of %#016x = %#016x", b.Raw(), got.Raw())
		}
	}
}

func TestHalfTurnAgreement(t *testing.T) {
	for _, b := range sampleBoards() {
		twiceCW := b.RotateClockwise().RotateClockwise()
		twiceCCW := b.RotateCounterclockwise().RotateCounterclockwise()
		rot180 := b.Reflect180()
		if twiceCW != twiceCCW || twiceCW != rot180 {
			t.Fatalf("%#016x: cw^2=%#016x ccw^2=%#016x 180=%#016x",
				b.Raw(), twiceCW.Raw(), twiceCCW.Raw(), rot180.Raw())
		}
		if got := rot180.Reflect180(); got != b {
			t.Fatalf("double reflection of %#016x = %#016x", b.Raw(), got.Raw())
		}
	}
}

func TestFourQuarterTurnsIsIdentity(t *testing.T) {
	for _, b := range sampleBoards() {
		got := b
		for i := 0; i < 4; i++ {
			got = got.RotateClockwise()
		}
		if got != b {
			t.Fatalf("four clockwise turns of %#016x = %#016x", b.Raw(), got.Raw())
		}
	}
}

func TestRotationFixedBoards(t *testing.T) {
	for _, b := range []Bitboard{Empty, Full} {
		ccw, rot180, cw := b.Rotations()
		if ccw != b || rot180 != b || cw != b {
			t.Errorf("%#016x is not fixed: ccw=%#016x 180=%#016x cw=%#016x",
				b.Raw(), ccw.Raw(), rot180.Raw(), cw.Raw())
		}
	}
}

func TestRotationsOfTopBit(t *testing.T) {
	// Bit 63 is column 7 of row 7 in the rotation slicing.
	b := FromRaw(0x8000000000000000)

	ccw, rot180, cw := b.Rotations()
	if cw.Raw() != 0x0000000000000080 {
		t.Errorf("RotateClockwise() = %#016x, want 0x0000000000000080", cw.Raw())
	}
	if ccw.Raw() != 0x0100000000000000 {
		t.Errorf("RotateCounterclockwise() = %#016x, want 0x0100000000000000", ccw.Raw())
	}
	if rot180.Raw() != 0x0000000000000001 {
		t.Errorf("Reflect180() = %#016x, want 0x0000000000000001", rot180.Raw())
	}
}

func TestRotationsMoveRowsToColumns(t *testing.T) {
	tests := []struct {
		name     string
		b        Bitboard
		cw, ccw  Bitboard
		rotation Bitboard
	}{
		// Row 0 (the low byte) becomes column 0 clockwise and column 7
		// counterclockwise.
		{"low byte", 0x00000000000000FF, 0x0101010101010101, 0x8080808080808080, 0xFF00000000000000},
		{"high byte", 0xFF00000000000000, 0x8080808080808080, 0x0101010101010101, 0x00000000000000FF},
		{"column 0", 0x0101010101010101, 0xFF00000000000000, 0x00000000000000FF, 0x8080808080808080},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.b.RotateClockwise(); got != tc.cw {
				t.Errorf("RotateClockwise() = %#016x, want %#016x", got.Raw(), tc.cw.Raw())
			}
			if got := tc.b.RotateCounterclockwise(); got != tc.ccw {
				t.Errorf("RotateCounterclockwise() = %#016x, want %#016x", got.Raw(), tc.ccw.Raw())
			}
			if got := tc.b.Reflect180(); got != tc.rotation {
				t.Errorf("Reflect180() = %#016x, want %#016x", got.Raw(), tc.rotation.Raw())
			}
		})
	}
}

func TestBitsYieldsEverySquare(t *testing.T) {
	for _, b := range sampleBoards() {
		var (
			n     int
			union Bitboard
		)
		for bit := range b.Bits() {
			want := b & (1 << (63 - n))
			if bit != want {
				t.Fatalf("%#016x: element %d = %#016x, want %#016x", b.Raw(), n, bit.Raw(), want.Raw())
			}
			union |= bit
			n++
		}
		if n != Squares {
			t.Fatalf("%#016x: Bits() yielded %d elements, want 64", b.Raw(), n)
		}
		if union != b {
			t.Fatalf("%#016x: union of Bits() = %#016x", b.Raw(), union.Raw())
		}
	}
}

func TestBitsIsRestartable(t *testing.T) {
	b := FromRaw(0x8100000000000081)
	seq := b.Bits()

	collect := func() []uint64 {
		var out []uint64
		for bit := range seq {
			out = append(out, bit.Raw())
		}
		return out
	}
	first := collect()
	if diff := cmp.Diff(first, collect()); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
}

func TestBitsStopsEarly(t *testing.T) {
	n := 0
	for range Full.Bits() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("ranged over %d elements, want 3", n)
	}
}

func TestSetAlgebra(t *testing.T) {
	a := FromRaw(0xF0F0F0F0F0F0F0F0)
	b := FromRaw(0xFF00FF00FF00FF00)

	tests := []struct {
		name string
		got  Bitboard
		want Bitboard
	}{
		{"and", a.And(b), 0xF000F000F000F000},
		{"or", a.Or(b), 0xFFF0FFF0FFF0FFF0},
		{"xor", a.Xor(b), 0x0FF00FF00FF00FF0},
		{"and not", a.AndNot(b), 0x00F000F000F000F0},
		{"not", a.Not(), 0x0F0F0F0F0F0F0F0F},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s = %#016x, want %#016x", tc.name, tc.got.Raw(), tc.want.Raw())
		}
	}
}

func TestWithWithoutHas(t *testing.T) {
	d5 := MustPosition(1 << (63 - (4*8 + 3)))

	b := Empty.With(d5)
	if !b.Has(d5) {
		t.Fatalf("%#016x does not have d5", b.Raw())
	}
	if b.CountSet() != 1 {
		t.Errorf("CountSet() = %d, want 1", b.CountSet())
	}
	if got := b.Without(d5); got != Empty {
		t.Errorf("Without(d5) = %#016x, want empty", got.Raw())
	}
	if Full.Without(d5).Has(d5) {
		t.Error("Full.Without(d5) still has d5")
	}
}

func TestMasks(t *testing.T) {
	var files, ranks Bitboard
	for i := 0; i < 8; i++ {
		if FileMask[i].CountSet() != 8 || RankMask[i].CountSet() != 8 {
			t.Errorf("mask %d has wrong size", i)
		}
		files |= FileMask[i]
		ranks |= RankMask[i]
	}
	if files != Full || ranks != Full {
		t.Errorf("files cover %#016x, ranks cover %#016x", files.Raw(), ranks.Raw())
	}

	a1 := MustPosition(0x8000000000000000)
	h8 := MustPosition(0x0000000000000001)
	if !FileA.Has(a1) || !Rank1.Has(a1) {
		t.Error("a1 not on file a and rank 1")
	}
	if !FileH.Has(h8) || !Rank8.Has(h8) {
		t.Error("h8 not on file h and rank 8")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		b    Bitboard
		want string
	}{
		{
			name: "empty",
			b:    Empty,
			want: "........\n........\n........\n........\n........\n........\n........\n........\n",
		},
		{
			name: "a1 on the bottom line",
			b:    0x8000000000000000,
			want: "........\n........\n........\n........\n........\n........\n........\n1.......\n",
		},
		{
			name: "h8 on the top line",
			b:    0x0000000000000001,
			want: ".......1\n........\n........\n........\n........\n........\n........\n........\n",
		},
		{
			name: "rank 1 and file a",
			b:    Rank1 | FileA,
			want: "1.......\n1.......\n1.......\n1.......\n1.......\n1.......\n1.......\n11111111\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.b.String()); diff != "" {
				t.Errorf("String() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func BenchmarkRotateClockwise(b *testing.B) {
	bb := FromRaw(0x0123456789ABCDEF)
	for i := 0; i < b.N; i++ {
		bb = bb.RotateClockwise()
	}
	_ = bb
}

func BenchmarkRotateCounterclockwise(b *testing.B) {
	bb := FromRaw(0x0123456789ABCDEF)
	for i := 0; i < b.N; i++ {
		bb = bb.RotateCounterclockwise()
	}
	_ = bb
}

func BenchmarkNaiveClockwise(b *testing.B) {
	bb := FromRaw(0x0123456789ABCDEF)
	for i := 0; i < b.N; i++ {
		bb = naiveClockwise(bb)
	}
	_ = bb
}
