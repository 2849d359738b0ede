package document_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"daily-report/document"
	"daily-report/models"
)

func testEntries() []models.Entry {
	return []models.Entry{
		{Kind: models.EntryText, DisplayText: "💬 Went to market"},
		{Kind: models.EntryPhoto, DisplayText: "Lunch"},
	}
}

func writeCollage(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 600, 600))
	for y := 0; y < 600; y++ {
		for x := 0; x < 600; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	path := filepath.Join(dir, "collage.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatal(err)
	}
	return path
}

func pageCount(t *testing.T, path string) int {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	switch {
	case bytes.Contains(data, []byte("/Count 1")):
		return 1
	case bytes.Contains(data, []byte("/Count 2")):
		return 2
	default:
		t.Fatalf("could not determine page count")
		return 0
	}
}

func TestAssembleTextOnlyProducesSinglePage(t *testing.T) {
	dir := t.TempDir()
	a := document.NewAssembler(dir)

	path, err := a.Assemble(7, "10-03-2025", testEntries(), "")
	if err != nil {
		t.Fatal(err)
	}

	if filepath.Base(path) != "report_7_10-03-2025.pdf" {
		t.Fatalf("unexpected document name %q", filepath.Base(path))
	}
	if n := pageCount(t, path); n != 1 {
		t.Fatalf("expected 1 page without collage, got %d", n)
	}
}

func TestAssembleWithCollageAddsSecondPage(t *testing.T) {
	dir := t.TempDir()
	a := document.NewAssembler(dir)
	collagePath := writeCollage(t, dir)

	path, err := a.Assemble(7, "10-03-2025", testEntries(), collagePath)
	if err != nil {
		t.Fatal(err)
	}
	if n := pageCount(t, path); n != 2 {
		t.Fatalf("expected 2 pages with collage, got %d", n)
	}
}

func TestAssembleOverwritesSameDayDocument(t *testing.T) {
	dir := t.TempDir()
	a := document.NewAssembler(dir)

	first, err := a.Assemble(7, "10-03-2025", testEntries(), "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Assemble(7, "10-03-2025", append(testEntries(),
		models.Entry{Kind: models.EntryText, DisplayText: "💬 Evening walk"}), "")
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Fatalf("expected identical document address, got %q and %q", first, second)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single document file, found %d", len(entries))
	}
}

func TestFilenameIsDeterministic(t *testing.T) {
	if got := document.Filename(42, "01-02-2025"); got != "report_42_01-02-2025.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
}
