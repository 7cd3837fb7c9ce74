package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hailam/othello/internal/othello"
	"github.com/hailam/othello/internal/render"
	"github.com/hailam/othello/internal/storage"
)

var errUsage = errors.New("usage")

type command struct {
	name  string
	usage string
	help  string
	run   func(a *app, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"show", "show <board>", "print the grid, raw value and counts", (*app).show},
		{"rotate", "rotate <board>", "print the ccw, 180 and cw transforms", (*app).rotate},
		{"hot", "hot <board>", "list set squares, most significant bit first", (*app).hot},
		{"bits", "bits <board>", "print all 64 single-bit masks of the board", (*app).bits},
		{"save", "save <name> <board>", "store a board under a name", (*app).save},
		{"load", "load <name>", "print a stored board", (*app).load},
		{"delete", "delete <name>", "remove a stored board", (*app).delete},
		{"list", "list", "list stored board names", (*app).list},
		{"render", "render [-o file] <black> [white]", "draw black and white stones", (*app).render},
	}
}

type app struct {
	out   io.Writer
	open  func() (*storage.Storage, error)
	store *storage.Storage
}

func (a *app) run(name string, args []string) error {
	for _, c := range commands {
		if c.name != name {
			continue
		}
		err := c.run(a, args)
		if errors.Is(err, errUsage) {
			return fmt.Errorf("usage: othello-bb %s", c.usage)
		}
		return err
	}
	return fmt.Errorf("unknown command %q", name)
}

// storage opens the database on first use.
func (a *app) storage() (*storage.Storage, error) {
	if a.store == nil {
		s, err := a.open()
		if err != nil {
			return nil, err
		}
		a.store = s
	}
	return a.store, nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// parseBoard accepts a number, a comma separated square list or @name.
func (a *app) parseBoard(arg string) (othello.Bitboard, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		s, err := a.storage()
		if err != nil {
			return othello.Empty, err
		}
		return s.LoadBoard(name)
	}

	if raw, err := strconv.ParseUint(arg, 0, 64); err == nil {
		return othello.FromRaw(raw), nil
	}

	var b othello.Bitboard
	for _, sq := range strings.Split(arg, ",") {
		p, err := othello.ParsePosition(strings.TrimSpace(sq))
		if err != nil {
			return othello.Empty, fmt.Errorf("board %q: %w", arg, err)
		}
		b = b.With(p)
	}
	return b, nil
}

func (a *app) oneBoard(args []string) (othello.Bitboard, error) {
	if len(args) != 1 {
		return othello.Empty, errUsage
	}
	return a.parseBoard(args[0])
}

func (a *app) printBoard(label string, b othello.Bitboard) {
	fmt.Fprintf(a.out, "%s %#016x set=%d empty=%d\n%s", label, b.Raw(), b.CountSet(), b.CountEmpty(), b)
}

func (a *app) show(args []string) error {
	b, err := a.oneBoard(args)
	if err != nil {
		return err
	}
	a.printBoard("board", b)
	return nil
}

func (a *app) rotate(args []string) error {
	b, err := a.oneBoard(args)
	if err != nil {
		return err
	}
	ccw, rot180, cw := b.Rotations()
	a.printBoard("board", b)
	a.printBoard("ccw", ccw)
	a.printBoard("180", rot180)
	a.printBoard("cw", cw)
	return nil
}

func (a *app) hot(args []string) error {
	b, err := a.oneBoard(args)
	if err != nil {
		return err
	}
	h := b.HotBits()
	fmt.Fprintf(a.out, "%d set\n", h.Len())
	for p := range h.All() {
		fmt.Fprintf(a.out, "%s bit=%d %#016x\n", p, p.Index(), p.Raw())
	}
	return nil
}

func (a *app) bits(args []string) error {
	b, err := a.oneBoard(args)
	if err != nil {
		return err
	}
	i := othello.Squares - 1
	for bit := range b.Bits() {
		fmt.Fprintf(a.out, "%2d %#016x\n", i, bit.Raw())
		i--
	}
	return nil
}

func (a *app) save(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	b, err := a.parseBoard(args[1])
	if err != nil {
		return err
	}
	s, err := a.storage()
	if err != nil {
		return err
	}
	if err := s.SaveBoard(args[0], b); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "saved %s %#016x\n", args[0], b.Raw())
	return nil
}

func (a *app) load(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	s, err := a.storage()
	if err != nil {
		return err
	}
	b, err := s.LoadBoard(args[0])
	if err != nil {
		return err
	}
	a.printBoard(args[0], b)
	return nil
}

func (a *app) delete(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	s, err := a.storage()
	if err != nil {
		return err
	}
	if err := s.DeleteBoard(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted %s\n", args[0])
	return nil
}

func (a *app) list(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	s, err := a.storage()
	if err != nil {
		return err
	}
	names, err := s.ListBoards()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(a.out, name)
	}
	return nil
}

func (a *app) render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	defaults := render.DefaultOptions()
	output := fs.String("o", "", "image file (.png, .bmp, .tif); text to stdout when empty")
	size := fs.Int("size", defaults.SquareSize, "square size in pixels")
	noLabels := fs.Bool("nolabels", false, "omit rank and file labels")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		return errUsage
	}

	black, err := a.parseBoard(fs.Arg(0))
	if err != nil {
		return err
	}
	white := othello.Empty
	if fs.NArg() == 2 {
		if white, err = a.parseBoard(fs.Arg(1)); err != nil {
			return err
		}
	}

	if *output == "" {
		text, err := render.Text(black, white)
		if err != nil {
			return err
		}
		_, err = io.WriteString(a.out, text)
		return err
	}

	format, err := render.FormatFromPath(*output)
	if err != nil {
		return err
	}
	opts := defaults
	opts.SquareSize = *size
	opts.Labels = !*noLabels
	r, err := render.New(opts)
	if err != nil {
		return err
	}
	img, err := r.Board(black, white)
	if err != nil {
		return err
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := render.Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "wrote %s (%dx%d)\n", *output, r.Size(), r.Size())
	return nil
}
