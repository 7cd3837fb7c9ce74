// Package rotgen generates the byte-wise rotation lookup tables used by the
// othello bitboard engine.
//
// A board is sliced into 8 rows of 8 bits, row r occupying bits
// [r*8, r*8+8). For every row and every byte value that row can hold, the
// tables store the destination bits that byte produces under a quarter turn,
// so a whole-board rotation is 8 lookups OR'd together.
package rotgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"os"
	"path/filepath"
)

// Table dimensions.
const (
	Rows      = 8
	RowValues = 256
)

// Names of the generated variables.
const (
	CWName  = "CWRotationTable"
	CCWName = "CCWRotationTable"
)

// ErrInvalidPackage is returned when the requested package name is not a Go
// identifier.
var ErrInvalidPackage = errors.New("rotgen: invalid package name")

// Table maps (row, byte) to the bits that byte contributes to the rotated
// board when it occupies that row.
type Table [Rows][RowValues]uint64

// Tables holds one table per rotation direction.
type Tables struct {
	CW  Table
	CCW Table
}

// CWBit returns the destination bit of source (row, col) under a clockwise
// quarter turn.
func CWBit(row, col int) int {
	return (7-col)*8 + row
}

// CCWBit returns the destination bit of source (row, col) under a
// counterclockwise quarter turn.
func CCWBit(row, col int) int {
	return col*8 + (7 - row)
}

// Generate computes both rotation tables. It is a pure function of CWBit and
// CCWBit and returns identical tables on every call.
func Generate() Tables {
	var t Tables
	for row := 0; row < Rows; row++ {
		for b := 0; b < RowValues; b++ {
			var cw, ccw uint64
			for col := 0; col < 8; col++ {
				if (b>>col)&1 == 0 {
					continue
				}
				cw |= uint64(1) << CWBit(row, col)
				ccw |= uint64(1) << CCWBit(row, col)
			}
			t.CW[row][b] = cw
			t.CCW[row][b] = ccw
		}
	}
	return t
}

// valuesPerLine controls how many table entries share one source line.
const valuesPerLine = 4

// Write renders both tables as a gofmt-formatted Go source file for package
// pkg. Nothing is written to w unless the whole file rendered successfully.
func Write(w io.Writer, pkg string) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("%w: %q", ErrInvalidPackage, pkg)
	}

	t := Generate()

	var buf bytes.Buffer
	buf.WriteString("// Code generated by rotgen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	writeTable(&buf, CWName,
		"maps a row index and the byte occupying that row to the\n// bits that byte contributes to the board rotated 90 degrees clockwise.",
		&t.CW)
	buf.WriteString("\n")
	writeTable(&buf, CCWName,
		"maps a row index and the byte occupying that row to the\n// bits that byte contributes to the board rotated 90 degrees counterclockwise.",
		&t.CCW)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("rotgen: format source: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("rotgen: write source: %w", err)
	}
	return nil
}

func writeTable(buf *bytes.Buffer, name, doc string, table *Table) {
	fmt.Fprintf(buf, "// %s %s\n", name, doc)
	fmt.Fprintf(buf, "var %s = [%d][%d]uint64{\n", name, Rows, RowValues)
	for row := range table {
		buf.WriteString("\t{\n")
		for i := 0; i < RowValues; i += valuesPerLine {
			buf.WriteString("\t\t")
			for j := i; j < i+valuesPerLine; j++ {
				if j > i {
					buf.WriteString(" ")
				}
				fmt.Fprintf(buf, "0x%016x,", table[row][j])
			}
			buf.WriteString("\n")
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")
}

// WriteFile renders the tables into path. The source is written to a
// temporary file next to path and renamed over it only once complete, so a
// failed run never leaves partial tables behind.
func WriteFile(path, pkg string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("rotgen: create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, pkg); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("rotgen: sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("rotgen: close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("rotgen: chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rotgen: rename into %s: %w", path, err)
	}
	return nil
}
