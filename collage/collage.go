package collage

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"

	xdraw "golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"
)

// Grid geometry is fixed: up to 4 photos on a 2x2 canvas of 300px cells.
const (
	CellSize   = 300
	GridCols   = 2
	GridRows   = 2
	CanvasSize = CellSize * GridCols
	MaxPhotos  = GridCols * GridRows
)

// Compose builds the collage from the given photo files in arrival order.
// Only the first MaxPhotos inputs are used; with fewer, the remaining
// cells keep the white canvas background. Each photo is resized to a
// 300x300 square ignoring its aspect ratio. Any unreadable photo fails
// the whole composition.
func Compose(paths []string) (*image.RGBA, error) {
	if len(paths) > MaxPhotos {
		paths = paths[:MaxPhotos]
	}

	canvas := image.NewRGBA(image.Rect(0, 0, CellSize*GridCols, CellSize*GridRows))
	xdraw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, xdraw.Src)

	for i, p := range paths {
		img, err := load(p)
		if err != nil {
			return nil, fmt.Errorf("open photo %s: %w", p, err)
		}

		// Row-major placement: index i at column i%2, row i/2.
		x := (i % GridCols) * CellSize
		y := (i / GridCols) * CellSize
		cell := image.Rect(x, y, x+CellSize, y+CellSize)
		xdraw.ApproxBiLinear.Scale(canvas, cell, img, img.Bounds(), xdraw.Src, nil)
	}

	return canvas, nil
}

// ComposeFile composes the collage and writes it as JPEG to outPath.
func ComposeFile(paths []string, outPath string) error {
	img, err := Compose(paths)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
