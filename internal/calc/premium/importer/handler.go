package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	stair "github.com/chanuka789/QS-Tools/internal/calc/stair"
)

type Handler struct{}

type StairImportResult struct {
	Count   int            `json:"count"`
	Results []stair.Report `json:"results"`
}

// Stair ingests an XLSX workbook with one staircase per row and returns the
// computed reports. The first row is a header and is skipped; rows with fewer
// than the eight dimension columns or non-numeric cells are dropped.
func (h *Handler) Stair(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []stair.Report
	for i := 1; i < len(rows); i++ {
		input, err := parseStairRow(rows[i])
		if err != nil {
			continue
		}
		results = append(results, stair.Calculate(input))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StairImportResult{Count: len(results), Results: results})
}

func parseStairRow(row []string) (stair.Input, error) {
	// expected: height_m, stair_width_mm, riser_mm, tread_mm, slab_thick_mm,
	// landing_length_mm, landing_depth_mm, landing_thick_mm
	if len(row) < 8 {
		return stair.Input{}, fmt.Errorf("bad row")
	}
	vals := make([]float64, 8)
	for i := 0; i < 8; i++ {
		v, err := toFloat(row[i])
		if err != nil {
			return stair.Input{}, err
		}
		vals[i] = v
	}
	return stair.Input{
		HeightM:         vals[0],
		StairWidthMM:    vals[1],
		RiserMM:         vals[2],
		TreadMM:         vals[3],
		SlabThickMM:     vals[4],
		LandingLengthMM: vals[5],
		LandingDepthMM:  vals[6],
		LandingThickMM:  vals[7],
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
