// Command othello-bb inspects, transforms, stores and renders othello
// bitboards.
//
// Usage:
//
//	othello-bb [flags] <command> [arguments]
//
// Boards are given as a number (0x-prefixed hex or decimal), a comma
// separated list of squares such as "d5,e4", or @name for a stored board.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/hailam/othello/internal/storage"
)

var (
	dataDir    = flag.String("data", "", "database directory (default: $"+storage.DataDirEnv+" or the platform data directory)")
	verbose    = flag.Bool("v", false, "log storage diagnostics to stderr")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: othello-bb [flags] <command> [arguments]\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(flag.CommandLine.Output(), "  %-28s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(flag.CommandLine.Output(), "\nflags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("othello-bb: ")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	var logger *slog.Logger
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	a := &app{
		out:  os.Stdout,
		open: storeOpener(*dataDir, logger),
	}
	err := a.run(flag.Arg(0), flag.Args()[1:])
	if cerr := a.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		pprof.StopCPUProfile()
		log.Fatal(err)
	}
}

// storeOpener returns a function opening the board database in dir, or in
// the default data directory when dir is empty.
func storeOpener(dir string, logger *slog.Logger) func() (*storage.Storage, error) {
	return func() (*storage.Storage, error) {
		if dir == "" {
			return storage.NewStorage(logger)
		}
		return storage.Open(storage.Options{Dir: dir, Logger: logger})
	}
}
