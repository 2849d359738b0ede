package document

import (
	"fmt"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"daily-report/models"
)

// Assembler renders the multi-page report PDF into dir.
type Assembler struct {
	dir string
}

func NewAssembler(dir string) *Assembler {
	return &Assembler{dir: dir}
}

// Filename is the deterministic document address for (user, date).
// Repeated generations on the same day overwrite the same file instead
// of accumulating new ones.
func Filename(userID int64, dateLabel string) string {
	return fmt.Sprintf("report_%d_%s.pdf", userID, dateLabel)
}

// Assemble renders page 1 (date title + one paragraph per entry, arrival
// order) and, when collagePath is non-empty, page 2 with the collage at a
// fixed on-page size. Callers must not invoke it with zero entries and no
// collage; the orchestrator guards that case. Returns the written path.
func (a *Assembler) Assemble(userID int64, dateLabel string, entries []models.Entry, collagePath string) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are Latin-1 only; the translator maps what it can and
	// blanks the rest (emoji included).
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle("Daily Report - "+dateLabel, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr("Daily Report - "+dateLabel), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	for _, e := range entries {
		pdf.MultiCell(0, 6, tr(e.DisplayText), "", "L", false)
		pdf.Ln(4)
	}

	if collagePath != "" {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, "Photos Collage", "", 1, "L", false, 0, "")
		pdf.Ln(4)
		pdf.ImageOptions(collagePath, 30, 45, 150, 150, false, fpdf.ImageOptions{ImageType: "JPG"}, 0, "")
	}

	path := filepath.Join(a.dir, Filename(userID, dateLabel))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
