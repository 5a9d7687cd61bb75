package schedule

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	stair "github.com/chanuka789/QS-Tools/internal/calc/stair"
)

const sheetName = "Quantity Schedule"

// Build lays the report out as a quantity-schedule workbook: one flight per
// row followed by the concrete and formwork totals.
func Build(rep stair.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Flight", "Risers", "Treads", "Run (m)", "Rise (m)", "Stringer (m)"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, hd)
	}
	row := 2
	for i, fl := range rep.Flights {
		set(f, row, 1, fmt.Sprintf("F%d", i+1))
		set(f, row, 2, fl.RiserCount)
		set(f, row, 3, fl.TreadCount)
		set(f, row, 4, fl.RunM)
		set(f, row, 5, fl.RiseM)
		set(f, row, 6, fl.InclinedLengthM)
		row++
	}
	row++

	totals := []struct {
		label string
		value any
	}{
		{"Total risers", rep.TotalRisers},
		{"Total treads", rep.TotalTreads},
		{"Landings", rep.NumLandings},
		{"Waist slab concrete (m3)", rep.VolumeWaistSlabsM3},
		{"Step concrete (m3)", rep.VolumeStepsM3},
		{"Landing concrete (m3)", rep.VolumeLandingsM3},
		{"Total concrete (m3)", rep.TotalVolumeM3},
		{"Soffit + stringer formwork (m2)", rep.FormworkBottomSlabM2},
		{"Landing soffit formwork (m2)", rep.FormworkLandingBottomM2},
		{"Riser formwork (m2)", rep.FormworkRisersM2},
		{"Total formwork (m2)", rep.TotalFormworkAreaM2},
	}
	for _, tl := range totals {
		set(f, row, 1, tl.label)
		set(f, row, 2, tl.value)
		row++
	}
	return f, nil
}

func set(f *excelize.File, row, col int, v any) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	f.SetCellValue(sheetName, cell, v)
}
