package rotgen

import (
	"bytes"
	"errors"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"math/bits"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateSingleBits(t *testing.T) {
	tables := Generate()

	for row := 0; row < Rows; row++ {
		for col := 0; col < 8; col++ {
			b := 1 << col
			if got, want := tables.CW[row][b], uint64(1)<<CWBit(row, col); got != want {
				t.Errorf("CW[%d][%#02x] = %#016x, want %#016x", row, b, got, want)
			}
			if got, want := tables.CCW[row][b], uint64(1)<<CCWBit(row, col); got != want {
				t.Errorf("CCW[%d][%#02x] = %#016x, want %#016x", row, b, got, want)
			}
		}
	}
}

func TestGenerateIsUnionOfBits(t *testing.T) {
	tables := Generate()

	for row := 0; row < Rows; row++ {
		for b := 0; b < RowValues; b++ {
			var cw, ccw uint64
			for col := 0; col < 8; col++ {
				if b&(1<<col) != 0 {
					cw |= tables.CW[row][1<<col]
					ccw |= tables.CCW[row][1<<col]
				}
			}
			if tables.CW[row][b] != cw {
				t.Fatalf("CW[%d][%#02x] = %#016x, want %#016x", row, b, tables.CW[row][b], cw)
			}
			if tables.CCW[row][b] != ccw {
				t.Fatalf("CCW[%d][%#02x] = %#016x, want %#016x", row, b, tables.CCW[row][b], ccw)
			}
		}
	}
}

func TestGeneratePreservesCount(t *testing.T) {
	tables := Generate()

	for row := 0; row < Rows; row++ {
		for b := 0; b < RowValues; b++ {
			want := bits.OnesCount8(uint8(b))
			if got := bits.OnesCount64(tables.CW[row][b]); got != want {
				t.Fatalf("popcount(CW[%d][%#02x]) = %d, want %d", row, b, got, want)
			}
			if got := bits.OnesCount64(tables.CCW[row][b]); got != want {
				t.Fatalf("popcount(CCW[%d][%#02x]) = %d, want %d", row, b, got, want)
			}
		}
	}
}

// Full rows must land on pairwise disjoint destinations that cover the board.
func TestGenerateRowsPartitionBoard(t *testing.T) {
	tables := Generate()

	for name, table := range map[string]*Table{"CW": &tables.CW, "CCW": &tables.CCW} {
		var seen uint64
		for row := 0; row < Rows; row++ {
			full := table[row][0xFF]
			if seen&full != 0 {
				t.Errorf("%s row %d overlaps earlier rows: %#016x", name, row, seen&full)
			}
			seen |= full
		}
		if seen != ^uint64(0) {
			t.Errorf("%s rows cover %#016x, want every bit", name, seen)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	if diff := cmp.Diff(Generate(), Generate()); diff != "" {
		t.Errorf("Generate() not deterministic (-first +second):\n%s", diff)
	}
}

func TestWriteProducesParseableTables(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "othello"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		t.Fatalf("format.Source: %v", err)
	}
	if !bytes.Equal(formatted, buf.Bytes()) {
		t.Error("Write output is not gofmt-clean")
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "rotation_tables.go", buf.Bytes(), parser.ParseComments)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if file.Name.Name != "othello" {
		t.Errorf("package = %q, want othello", file.Name.Name)
	}
	if !ast.IsGenerated(file) {
		t.Error("output lacks the generated-code header")
	}

	got := map[string]Table{}
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			got[vs.Names[0].Name] = decodeTable(t, vs.Values[0])
		}
	}

	want := Generate()
	if diff := cmp.Diff(want.CW, got[CWName]); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", CWName, diff)
	}
	if diff := cmp.Diff(want.CCW, got[CCWName]); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", CCWName, diff)
	}
}

func decodeTable(t *testing.T, expr ast.Expr) Table {
	t.Helper()

	var table Table
	outer, ok := expr.(*ast.CompositeLit)
	if !ok {
		t.Fatalf("table value is %T, want composite literal", expr)
	}
	if len(outer.Elts) != Rows {
		t.Fatalf("table has %d rows, want %d", len(outer.Elts), Rows)
	}
	for row, elt := range outer.Elts {
		inner := elt.(*ast.CompositeLit)
		if len(inner.Elts) != RowValues {
			t.Fatalf("row %d has %d entries, want %d", row, len(inner.Elts), RowValues)
		}
		for i, v := range inner.Elts {
			lit := v.(*ast.BasicLit)
			n, err := strconv.ParseUint(lit.Value, 0, 64)
			if err != nil {
				t.Fatalf("row %d entry %d: %v", row, i, err)
			}
			table[row][i] = n
		}
	}
	return table
}

func TestWriteInvalidPackage(t *testing.T) {
	for _, pkg := range []string{"", "1othello", "oth-ello", "a b"} {
		var buf bytes.Buffer
		err := Write(&buf, pkg)
		if !errors.Is(err, ErrInvalidPackage) {
			t.Errorf("Write(%q) error = %v, want ErrInvalidPackage", pkg, err)
		}
		if buf.Len() != 0 {
			t.Errorf("Write(%q) wrote %d bytes on failure", pkg, buf.Len())
		}
	}
}

type failingWriter struct{}

var errSinkClosed = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSinkClosed }

func TestWriteReportsSinkFailure(t *testing.T) {
	if err := Write(failingWriter{}, "othello"); !errors.Is(err, errSinkClosed) {
		t.Errorf("Write error = %v, want %v", err, errSinkClosed)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rotation_tables.go")

	if err := WriteFile(path, "othello"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var want bytes.Buffer
	if err := Write(&want, "othello"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if diff := cmp.Diff(want.String(), string(got)); diff != "" {
		t.Errorf("file contents mismatch (-want +got):\n%s", diff)
	}

	assertOnlyFile(t, dir, "rotation_tables.go")
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "rotation_tables.go")

	if err := WriteFile(path, "othello"); err == nil {
		t.Fatal("WriteFile into a missing directory succeeded")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("destination exists after failed write: %v", err)
	}
}

func TestWriteFileLeavesDestinationOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rotation_tables.go")
	const previous = "package othello\n"
	if err := os.WriteFile(path, []byte(previous), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, "not a package"); !errors.Is(err, ErrInvalidPackage) {
		t.Fatalf("WriteFile error = %v, want ErrInvalidPackage", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != previous {
		t.Errorf("destination modified by failed write: %q", got)
	}
	assertOnlyFile(t, dir, "rotation_tables.go")
}

func assertOnlyFile(t *testing.T, dir, name string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if diff := cmp.Diff([]string{name}, names); diff != "" {
		t.Errorf("directory contents mismatch (-want +got):\n%s", diff)
	}
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Generate()
	}
}
