package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/sprout/internal/engine"
	"github.com/akyairhashvil/sprout/internal/timeline"
)

// GeneratePDFReport writes a garden report into dir and returns its path.
func GeneratePDFReport(summaries []engine.Summary, user, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr(fmt.Sprintf("Garden Report: %s", user)))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, now.Local().Format("January 2, 2006 15:04"))
	pdf.Ln(12)

	harvested := 0
	for _, s := range summaries {
		p := s.Plant
		tl := s.Timeline

		pdf.SetFont("Arial", "B", 14)
		header := fmt.Sprintf("%s (%s)", p.Veggie.Name, p.Status)
		pdf.Cell(0, 10, tr(header))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Planted %s, %.0f%% of lifecycle elapsed", FormatDate(p.CreatedAt), tl.Progress()*100)))
		pdf.Ln(7)
		if len(tl.Entries) == 0 {
			pdf.Cell(0, 8, "  - No stages defined.")
			pdf.Ln(8)
		}
		for _, e := range tl.Entries {
			line := fmt.Sprintf("    %s %d. %s - %s, ends %s",
				stageMarker(e.Status), e.Stage.StageNumber, e.Stage.Title, FormatDays(e.Stage.StageEndDays), FormatDate(e.End))
			if e.Status == timeline.Current {
				line += " (" + FormatTimeLeft(tl.Remaining) + ")"
			}
			pdf.Cell(0, 6, tr(line))
			pdf.Ln(6)
		}
		if tl.IsLifecycleComplete {
			harvested++
		}
		pdf.Ln(4)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Plants: %d, ready or harvested: %d", len(summaries), harvested))

	path := filepath.Join(dir, fmt.Sprintf("garden_report_%s.pdf", now.Local().Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
