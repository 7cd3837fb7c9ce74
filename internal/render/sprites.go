package render

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/hailam/othello/internal/othello"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

//go:embed assets/*.svg
var stoneAssets embed.FS

// stoneFiles maps stones to their asset file paths.
var stoneFiles = map[othello.Stone]string{
	othello.Black: "assets/stone-black.svg",
	othello.White: "assets/stone-white.svg",
}

// renderScale is the oversampling factor used before scaling a stone down
// to its display size.
const renderScale = 3

// loadStone rasterizes the stone's SVG at renderScale times size and scales
// it down to a size x size sprite.
func loadStone(s othello.Stone, size int) (*image.RGBA, error) {
	path, ok := stoneFiles[s]
	if !ok {
		return nil, fmt.Errorf("render: no sprite for %v", s)
	}
	data, err := stoneAssets.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read %s: %w", path, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("render: parse %s: %w", path, err)
	}

	renderSize := size * renderScale
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	hi := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, hi, hi.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	sprite := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(sprite, sprite.Bounds(), hi, hi.Bounds(), draw.Src, nil)
	return sprite, nil
}
