// Command rotgen writes the bitboard rotation lookup tables as Go source.
//
// It is run by go generate in internal/othello:
//
//	//go:generate go run ../../cmd/rotgen -o rotation_tables.go
//
// The package clause is taken from the destination directory name. Any
// failure exits non-zero so that go generate stops instead of leaving stale
// or partial tables behind.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hailam/othello/internal/rotgen"
)

var output = flag.String("o", "", "destination Go file for the rotation tables")

func main() {
	log.SetFlags(0)
	log.SetPrefix("rotgen: ")
	flag.Parse()

	if *output == "" || flag.NArg() != 0 {
		flag.Usage()
		log.Fatal("exactly one destination is required: -o <file>")
	}

	path, err := filepath.Abs(*output)
	if err != nil {
		log.Fatal(err)
	}
	pkg := filepath.Base(filepath.Dir(path))

	if err := rotgen.WriteFile(path, pkg); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s and %s to %s", rotgen.CWName, rotgen.CCWName, *output)
}
