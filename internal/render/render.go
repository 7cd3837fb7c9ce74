// Package render draws two-colour othello boards as images and text.
//
// Boards are drawn the same way round as othello.Bitboard.String: rank 8 at
// the top, rank 1 at the bottom, file a on the left.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hailam/othello/internal/othello"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	// ErrInvalidSize is returned for a square size or margin that cannot
	// produce a usable image.
	ErrInvalidSize = errors.New("render: invalid size")

	// ErrOverlap is returned when a square holds both a black and a white
	// stone.
	ErrOverlap = errors.New("render: black and white stones overlap")
)

// MinSquareSize is the smallest accepted square edge in pixels.
const MinSquareSize = 8

// Options controls image rendering.
type Options struct {
	SquareSize int // Edge of one square in pixels
	Margin     int // Border around the grid; holds the labels
	Labels     bool
	Board      color.RGBA
	Grid       color.RGBA
	Text       color.RGBA
}

// DefaultOptions returns the options used by the command line tool.
func DefaultOptions() Options {
	return Options{
		SquareSize: 48,
		Margin:     20,
		Labels:     true,
		Board:      color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff},
		Grid:       color.RGBA{R: 0x1b, G: 0x4d, B: 0x1e, A: 0xff},
		Text:       color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
	}
}

// Renderer draws boards with a fixed set of options. Stone sprites are
// rasterized once in New; a Renderer is safe for concurrent use.
type Renderer struct {
	opts   Options
	stones [2]*image.RGBA
}

// New validates opts and prepares the stone sprites.
func New(opts Options) (*Renderer, error) {
	if opts.SquareSize < MinSquareSize {
		return nil, fmt.Errorf("%w: square size %d below %d", ErrInvalidSize, opts.SquareSize, MinSquareSize)
	}
	if opts.Margin < 0 {
		return nil, fmt.Errorf("%w: negative margin %d", ErrInvalidSize, opts.Margin)
	}

	r := &Renderer{opts: opts}
	stoneSize := opts.SquareSize - 2*stonePadding(opts.SquareSize)
	for _, s := range []othello.Stone{othello.Black, othello.White} {
		sprite, err := loadStone(s, stoneSize)
		if err != nil {
			return nil, err
		}
		r.stones[s] = sprite
	}
	return r, nil
}

// stonePadding is the gap between a stone and its square's edge.
func stonePadding(squareSize int) int {
	return squareSize / 10
}

// Size returns the edge length of rendered images in pixels.
func (r *Renderer) Size() int {
	return 8*r.opts.SquareSize + 2*r.opts.Margin
}

// squareRect returns the pixel rectangle of p.
func (r *Renderer) squareRect(p othello.Position) image.Rectangle {
	size := r.opts.SquareSize
	x := r.opts.Margin + p.File()*size
	y := r.opts.Margin + (7-p.Rank())*size
	return image.Rect(x, y, x+size, y+size)
}

// Board draws black and white stones on an empty grid.
func (r *Renderer) Board(black, white othello.Bitboard) (*image.RGBA, error) {
	if overlap := black.And(white); !overlap.IsEmpty() {
		return nil, fmt.Errorf("%w: %v", ErrOverlap, overlap.Positions())
	}

	img := image.NewRGBA(image.Rect(0, 0, r.Size(), r.Size()))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.opts.Board), image.Point{}, draw.Src)
	r.drawGrid(img)
	if r.opts.Labels {
		r.drawLabels(img)
	}

	pad := stonePadding(r.opts.SquareSize)
	for s, stones := range [2]othello.Bitboard{othello.Black: black, othello.White: white} {
		sprite := r.stones[s]
		h := stones.HotBits()
		for {
			p, ok := h.Next()
			if !ok {
				break
			}
			dst := r.squareRect(p).Inset(pad)
			draw.Draw(img, dst, sprite, image.Point{}, draw.Over)
		}
	}
	return img, nil
}

func (r *Renderer) drawGrid(img *image.RGBA) {
	grid := image.NewUniform(r.opts.Grid)
	size, m := r.opts.SquareSize, r.opts.Margin
	end := m + 8*size
	for i := 0; i <= 8; i++ {
		at := m + i*size
		draw.Draw(img, image.Rect(at, m, at+1, end+1), grid, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(m, at, end+1, at+1), grid, image.Point{}, draw.Src)
	}
}

func (r *Renderer) drawLabels(img *image.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.opts.Text),
		Face: face,
	}
	size, m := r.opts.SquareSize, r.opts.Margin
	ascent := face.Metrics().Ascent.Ceil()

	for i := 0; i < 8; i++ {
		file := string(rune('a' + i))
		w := d.MeasureString(file).Ceil()
		d.Dot = fixed.P(m+i*size+(size-w)/2, m+8*size+(m+ascent)/2)
		d.DrawString(file)

		rank := string(rune('1' + i))
		w = d.MeasureString(rank).Ceil()
		d.Dot = fixed.P((m-w)/2, m+(7-i)*size+(size+ascent)/2)
		d.DrawString(rank)
	}
}
