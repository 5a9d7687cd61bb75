package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	stair "github.com/chanuka789/QS-Tools/internal/calc/stair"
)

type Input struct {
	Project string      `json:"project"`
	Author  string      `json:"author"`
	Title   string      `json:"title"`
	Notes   string      `json:"notes"`
	Stair   stair.Input `json:"stair"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Staircase Quantity Report"
	}
	rep := stair.Calculate(input.Stair)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Layout")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	writeLine(pdf, "Total risers", fmt.Sprintf("%d", rep.TotalRisers))
	writeLine(pdf, "Total treads", fmt.Sprintf("%d", rep.TotalTreads))
	writeLine(pdf, "Flights", fmt.Sprintf("%d", rep.NumFlights))
	writeLine(pdf, "Landings", fmt.Sprintf("%d", rep.NumLandings))
	for i, f := range rep.Flights {
		writeLine(pdf, fmt.Sprintf("Flight %d stringer length", i+1), fmt.Sprintf("%.3f m", f.InclinedLengthM))
	}
	pdf.Ln(4)

	// Volumes to 3 decimals, formwork areas to 2.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Concrete")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	writeLine(pdf, "Waist slabs", fmt.Sprintf("%.3f m3", rep.VolumeWaistSlabsM3))
	writeLine(pdf, "Steps", fmt.Sprintf("%.3f m3", rep.VolumeStepsM3))
	writeLine(pdf, "Landings", fmt.Sprintf("%.3f m3", rep.VolumeLandingsM3))
	writeLine(pdf, "Total concrete", fmt.Sprintf("%.3f m3", rep.TotalVolumeM3))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Formwork")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	writeLine(pdf, "Waist slab soffit + stringers", fmt.Sprintf("%.2f m2", rep.FormworkBottomSlabM2))
	writeLine(pdf, "Landing soffits", fmt.Sprintf("%.2f m2", rep.FormworkLandingBottomM2))
	writeLine(pdf, "Riser faces", fmt.Sprintf("%.2f m2", rep.FormworkRisersM2))
	writeLine(pdf, "Total formwork", fmt.Sprintf("%.2f m2", rep.TotalFormworkAreaM2))
	pdf.Ln(6)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"stair-quantities.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func writeLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.Cell(90, 6, label)
	pdf.Cell(0, 6, value)
	pdf.Ln(6)
}
