package drawing

import (
	"encoding/json"
	"net/http"

	stair "github.com/chanuka789/QS-Tools/internal/calc/stair"
)

type Handler struct{}

// Draw accepts the raw stair input, runs the calculation and streams back the
// side-view PDF. Invalid dimensions yield a placeholder page rather than an
// error, mirroring the engine's zero-report behavior.
func (h *Handler) Draw(w http.ResponseWriter, r *http.Request) {
	var input stair.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	rep := stair.Calculate(input)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"stair-elevation.pdf\"")
	if err := Render(rep, w); err != nil {
		http.Error(w, "Drawing generation error", http.StatusInternalServerError)
		return
	}
}
