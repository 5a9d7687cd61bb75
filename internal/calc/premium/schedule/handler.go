package schedule

import (
	"encoding/json"
	"net/http"

	stair "github.com/chanuka789/QS-Tools/internal/calc/stair"
)

type Handler struct{}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input stair.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	rep := stair.Calculate(input)

	f, err := Build(rep)
	if err != nil {
		http.Error(w, "Schedule generation error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"stair-schedule.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Schedule generation error", http.StatusInternalServerError)
		return
	}
}
