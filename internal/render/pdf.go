package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/notefold/paprika2notes/internal/recipe"
)

// ContentsPDF writes a printable index of the run to outPath: the same
// ordering, statistics, and first-letter sections as the HTML table of
// contents. Layout is intentionally simple; text is run through the cp1252
// translator because the core fonts are not Unicode.
func ContentsPDF(recs []recipe.Record, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Recipe Collection"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total Recipes: %d", len(recs))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Categories: %d", distinctCategories(recs))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	current := ""
	for _, rec := range sortByTitle(recs) {
		if letter := sectionLetter(rec.Title); letter != current {
			current = letter
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 13)
			pdf.CellFormat(0, 8, tr(letter), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 5, tr(rec.Title), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		if meta := metaLine(rec); meta != "" {
			pdf.MultiCell(0, 5, tr(meta), "", "L", false)
		}
		pdf.Ln(2)
	}

	return pdf.OutputFileAndClose(outPath)
}
