package collage_test

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"daily-report/collage"
)

// writePhoto saves a solid-color JPEG with a deliberately non-square
// shape so the aspect-ignoring resize is exercised.
func writePhoto(t *testing.T, dir, name string, c color.RGBA) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 50, 80))
	for y := 0; y < 80; y++ {
		for x := 0; x < 50; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create photo: %v", err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("encode photo: %v", err)
	}
	return path
}

func closeTo(got color.Color, want color.RGBA) bool {
	r, g, b, _ := got.RGBA()
	diff := func(a uint32, b uint8) int32 {
		d := int32(a>>8) - int32(b)
		if d < 0 {
			d = -d
		}
		return d
	}
	const tol = 16 // jpeg is lossy
	return diff(r, want.R) <= tol && diff(g, want.G) <= tol && diff(b, want.B) <= tol
}

var palette = []color.RGBA{
	{R: 200, G: 30, B: 30, A: 255},
	{R: 30, G: 180, B: 30, A: 255},
	{R: 30, G: 30, B: 200, A: 255},
	{R: 200, G: 180, B: 30, A: 255},
	{R: 140, G: 30, B: 180, A: 255},
}

func cellCenter(i int) (int, int) {
	x := (i%collage.GridCols)*collage.CellSize + collage.CellSize/2
	y := (i/collage.GridCols)*collage.CellSize + collage.CellSize/2
	return x, y
}

func TestComposeCanvasIsAlwaysFixedSize(t *testing.T) {
	dir := t.TempDir()

	for n := 1; n <= 5; n++ {
		var paths []string
		for i := 0; i < n; i++ {
			paths = append(paths, writePhoto(t, dir, filepath.Base(t.Name())+string(rune('a'+i))+".jpg", palette[i]))
		}

		img, err := collage.Compose(paths)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		b := img.Bounds()
		if b.Dx() != collage.CanvasSize || b.Dy() != collage.CanvasSize {
			t.Fatalf("n=%d: expected 600x600 canvas, got %dx%d", n, b.Dx(), b.Dy())
		}
	}
}

func TestComposePlacesPhotosRowMajor(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 4; i++ {
		paths = append(paths, writePhoto(t, dir, filepath.Base(t.Name())+string(rune('a'+i))+".jpg", palette[i]))
	}

	img, err := collage.Compose(paths)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		x, y := cellCenter(i)
		if !closeTo(img.At(x, y), palette[i]) {
			t.Fatalf("cell %d: expected %v at (%d,%d), got %v", i, palette[i], x, y, img.At(x, y))
		}
	}
}

func TestComposeTruncatesToFirstFour(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 5; i++ {
		paths = append(paths, writePhoto(t, dir, filepath.Base(t.Name())+string(rune('a'+i))+".jpg", palette[i]))
	}

	img, err := collage.Compose(paths)
	if err != nil {
		t.Fatal(err)
	}

	// P1..P4 present row-major, P5 nowhere: every cell matches its own
	// palette color, which leaves no cell for the fifth.
	for i := 0; i < 4; i++ {
		x, y := cellCenter(i)
		if !closeTo(img.At(x, y), palette[i]) {
			t.Fatalf("cell %d should hold photo %d, got %v", i, i+1, img.At(x, y))
		}
	}
}

func TestComposeLeavesUnusedCellsBackground(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writePhoto(t, dir, "only.jpg", palette[0])}

	img, err := collage.Compose(paths)
	if err != nil {
		t.Fatal(err)
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i := 1; i < 4; i++ {
		x, y := cellCenter(i)
		if !closeTo(img.At(x, y), white) {
			t.Fatalf("cell %d should stay background-colored, got %v", i, img.At(x, y))
		}
	}
}

func TestComposeFailsOnUnreadablePhoto(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writePhoto(t, dir, "ok.jpg", palette[0]),
		filepath.Join(dir, "missing.jpg"),
	}

	if _, err := collage.Compose(paths); err == nil {
		t.Fatalf("expected error for unreadable photo")
	}
}

func TestComposeFileWritesJPEG(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writePhoto(t, dir, "p.jpg", palette[0])}
	out := filepath.Join(dir, "collage.jpg")

	if err := collage.ComposeFile(paths, out); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := jpeg.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output is not a decodable jpeg: %v", err)
	}
	if cfg.Width != collage.CanvasSize || cfg.Height != collage.CanvasSize {
		t.Fatalf("expected 600x600 jpeg, got %dx%d", cfg.Width, cfg.Height)
	}
}
