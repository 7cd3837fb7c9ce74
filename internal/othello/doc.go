// Package othello implements an 8x8 two-colour board as a 64-bit bitboard,
// together with quarter-turn rotations, the half-turn reflection and
// decomposition of a board into single-square positions.
//
// Square (rank, file), both in 0..7, is stored in bit 63-(rank*8+file), so the
// most significant bit is a1 and the least significant bit is h8:
//
//	rank 0 | 63 62 61 60 59 58 57 56
//	rank 1 | 55 54 53 52 51 50 49 48
//	  ...
//	rank 7 | 07 06 05 04 03 02 01 00
//	         a  b  c  d  e  f  g  h
//
// Rotations slice the board differently: row r is the byte at bits
// [r*8, r*8+8), and bit c of that byte is column c. The lookup tables in
// rotation_tables.go are indexed by that row and byte and are generated by
// cmd/rotgen.
package othello
