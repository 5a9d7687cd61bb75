package drawing

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	stair "github.com/chanuka789/QS-Tools/internal/calc/stair"
)

// Page layout in mm, A4 landscape.
const (
	pageW  = 297.0
	pageH  = 210.0
	margin = 25.0
)

// Render draws a dimensioned side view of the stair described by rep: the
// riser/tread profile of each flight, the waist slab beneath it, and the
// intermediate landings. Flights are unrolled left to right, so consecutive
// flights read as one continuous section. All quantities come straight from
// the report; nothing is recomputed here.
func Render(rep stair.Report, out io.Writer) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Staircase - Side Elevation")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)

	if len(rep.Flights) == 0 {
		pdf.Cell(0, 6, "No valid stair geometry to draw.")
		return pdf.Output(out)
	}

	totalRun := 0.0
	totalRise := 0.0
	for _, f := range rep.Flights {
		totalRun += f.RunM
		totalRise += f.RiseM
	}
	totalRun += rep.LandingDepthM * float64(rep.NumLandings)
	if totalRun <= 0 {
		totalRun = rep.TreadM
	}
	if totalRun <= 0 || totalRise <= 0 {
		pdf.Cell(0, 6, "Degenerate stair geometry, nothing to draw.")
		return pdf.Output(out)
	}

	// One scale for both axes keeps the pitch visually true.
	scale := (pageW - 2*margin) / totalRun
	if s := (pageH - 2*margin) / totalRise; s < scale {
		scale = s
	}

	// Model coordinates are meters with y up; the page has y down.
	px := func(x float64) float64 { return margin + x*scale }
	py := func(y float64) float64 { return pageH - margin - y*scale }

	pdf.SetDrawColor(40, 40, 40)
	pdf.SetLineWidth(0.4)

	x, y := 0.0, 0.0
	for i, f := range rep.Flights {
		x0, y0 := x, y
		for s := 0; s < f.RiserCount; s++ {
			pdf.Line(px(x), py(y), px(x), py(y+rep.RiserM))
			y += rep.RiserM
			if s < f.TreadCount {
				pdf.Line(px(x), py(y), px(x+rep.TreadM), py(y))
				x += rep.TreadM
			}
		}

		drawWaist(pdf, px, py, x0, y0, f, rep.SlabThickM)

		if i < len(rep.Flights)-1 {
			// Intermediate landing: walking surface plus slab underside.
			pdf.Line(px(x), py(y), px(x+rep.LandingDepthM), py(y))
			pdf.Line(px(x), py(y-rep.LandingThickM), px(x+rep.LandingDepthM), py(y-rep.LandingThickM))
			pdf.Line(px(x+rep.LandingDepthM), py(y), px(x+rep.LandingDepthM), py(y-rep.LandingThickM))
			x += rep.LandingDepthM
		}

		mid := (x0 + x) / 2
		pdf.SetXY(px(mid)-15, py(y0+f.RiseM/2)-3)
		pdf.CellFormat(30, 4, fmt.Sprintf("F%d  L=%.3f m", i+1, f.InclinedLengthM), "", 0, "C", false, 0, "")
	}

	dimensions(pdf, px, py, totalRun, totalRise, rep)
	return pdf.Output(out)
}

// drawWaist closes the sloped slab band under one flight. The band is offset
// straight down by the slab thickness measured along the slope, so its edges
// stay parallel to the stringer line.
func drawWaist(pdf *gofpdf.Fpdf, px, py func(float64) float64, x0, y0 float64, f stair.Flight, slabThick float64) {
	if f.InclinedLengthM <= 0 {
		return
	}
	// Vertical drop equivalent of the perpendicular slab thickness
	// (t / cos pitch). A zero-run flight is a bare riser; use the thickness
	// as-is.
	drop := slabThick
	if f.RunM > 0 {
		drop = slabThick * f.InclinedLengthM / f.RunM
	}
	x1 := x0 + f.RunM
	y1 := y0 + f.RiseM
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(px(x0), py(y0-drop), px(x1), py(y1-drop))
	pdf.Line(px(x0), py(y0), px(x0), py(y0-drop))
	pdf.Line(px(x1), py(y1), px(x1), py(y1-drop))
	pdf.SetDrawColor(40, 40, 40)
}

func dimensions(pdf *gofpdf.Fpdf, px, py func(float64) float64, totalRun, totalRise float64, rep stair.Report) {
	pdf.SetDrawColor(90, 90, 160)
	pdf.SetTextColor(60, 60, 130)
	pdf.SetLineWidth(0.2)

	// Overall run along the bottom.
	yDim := py(0) + 8
	pdf.Line(px(0), yDim, px(totalRun), yDim)
	pdf.SetXY(px(totalRun/2)-20, yDim+1)
	pdf.CellFormat(40, 4, fmt.Sprintf("%.3f m", totalRun), "", 0, "C", false, 0, "")

	// Overall rise on the right.
	xDim := px(totalRun) + 8
	pdf.Line(xDim, py(0), xDim, py(totalRise))
	pdf.SetXY(xDim+1, py(totalRise/2)-2)
	pdf.CellFormat(30, 4, fmt.Sprintf("%.3f m", totalRise), "", 0, "L", false, 0, "")

	// Step block annotation.
	pdf.SetXY(margin, pageH-14)
	pdf.CellFormat(0, 4,
		fmt.Sprintf("Riser %.0f mm / Tread %.0f mm, waist %.0f mm, %d risers in %d flights",
			rep.RiserM*1000, rep.TreadM*1000, rep.SlabThickM*1000, rep.TotalRisers, rep.NumFlights),
		"", 0, "L", false, 0, "")

	pdf.SetDrawColor(40, 40, 40)
	pdf.SetTextColor(0, 0, 0)
}
