package autodesign

import (
	"fmt"
	"math"

	stair "github.com/chanuka789/QS-Tools/internal/calc/stair"
)

type StairAutoInput struct {
	HeightM          float64 `json:"height_m"`
	PreferredRiserMM float64 `json:"preferred_riser_mm"`
	MinRiserMM       float64 `json:"min_riser_mm"`
	MaxRiserMM       float64 `json:"max_riser_mm"`
	StairWidthMM     float64 `json:"stair_width_mm"`
	TreadMM          float64 `json:"tread_mm"`
	SlabThickMM      float64 `json:"slab_thick_mm"`
	LandingLengthMM  float64 `json:"landing_length_mm"`
	LandingDepthMM   float64 `json:"landing_depth_mm"`
	LandingThickMM   float64 `json:"landing_thick_mm"`
}

type StairAutoResult struct {
	RiserMM float64      `json:"riser_mm"`
	Risers  int          `json:"risers"`
	Report  stair.Report `json:"report"`
	Notes   string       `json:"notes"`
}

// Stair picks a riser height that divides the storey height into a whole
// number of equal risers, as close to the preferred riser as the min/max
// window allows, then runs the quantity takeoff with the chosen riser.
func Stair(in StairAutoInput) (StairAutoResult, error) {
	if in.HeightM <= 0 || in.TreadMM <= 0 {
		return StairAutoResult{}, fmt.Errorf("invalid input")
	}
	if in.PreferredRiserMM <= 0 {
		in.PreferredRiserMM = 175
	}
	if in.MinRiserMM <= 0 {
		in.MinRiserMM = 150
	}
	if in.MaxRiserMM <= in.MinRiserMM {
		in.MaxRiserMM = 190
	}

	hmm := in.HeightM * 1000.0
	risers := int(math.Round(hmm / in.PreferredRiserMM))
	if risers < 1 {
		risers = 1
	}
	// Nudge the count until the exact riser fits the window. A very short
	// stair may bottom out at one riser above the window; that is reported,
	// not rejected.
	for hmm/float64(risers) > in.MaxRiserMM {
		risers++
	}
	for risers > 1 && hmm/float64(risers) < in.MinRiserMM {
		risers--
	}
	riser := hmm / float64(risers)

	rep := stair.Calculate(stair.Input{
		HeightM:         in.HeightM,
		StairWidthMM:    in.StairWidthMM,
		RiserMM:         riser,
		TreadMM:         in.TreadMM,
		SlabThickMM:     in.SlabThickMM,
		LandingLengthMM: in.LandingLengthMM,
		LandingDepthMM:  in.LandingDepthMM,
		LandingThickMM:  in.LandingThickMM,
	})

	notes := "Riser chosen to divide the storey height evenly."
	if riser > in.MaxRiserMM || riser < in.MinRiserMM {
		notes = fmt.Sprintf("Riser %.1f mm falls outside the %v-%v mm window; review the storey height.",
			riser, in.MinRiserMM, in.MaxRiserMM)
	}
	return StairAutoResult{
		RiserMM: riser,
		Risers:  risers,
		Report:  rep,
		Notes:   notes,
	}, nil
}
