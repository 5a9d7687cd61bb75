package stair

import "math"

// maxRisersPerFlight is the conventional cap on risers in a single run,
// used to size flights once the explicit height bands no longer apply.
const maxRisersPerFlight = 18

type Input struct {
	HeightM         float64 `json:"height_m" yaml:"height_m"`
	StairWidthMM    float64 `json:"stair_width_mm" yaml:"stair_width_mm"`
	RiserMM         float64 `json:"riser_mm" yaml:"riser_mm"`
	TreadMM         float64 `json:"tread_mm" yaml:"tread_mm"`
	SlabThickMM     float64 `json:"slab_thick_mm" yaml:"slab_thick_mm"`
	LandingLengthMM float64 `json:"landing_length_mm" yaml:"landing_length_mm"`
	LandingDepthMM  float64 `json:"landing_depth_mm" yaml:"landing_depth_mm"`
	LandingThickMM  float64 `json:"landing_thick_mm" yaml:"landing_thick_mm"`
}

// Flight is one straight run of steps, ordered bottom to top in Report.Flights.
type Flight struct {
	RiserCount      int     `json:"riser_count"`
	TreadCount      int     `json:"tread_count"`
	RunM            float64 `json:"run_m"`
	RiseM           float64 `json:"rise_m"`
	InclinedLengthM float64 `json:"inclined_length_m"`
}

type Report struct {
	TotalRisers int      `json:"total_risers"`
	TotalTreads int      `json:"total_treads"`
	NumFlights  int      `json:"num_flights"`
	NumLandings int      `json:"num_landings"`
	Flights     []Flight `json:"flights"`

	// Normalized constants in meters, echoed so a renderer can redraw the
	// geometry without re-deriving units.
	RiserM        float64 `json:"riser_m"`
	TreadM        float64 `json:"tread_m"`
	SlabThickM    float64 `json:"slab_thick_m"`
	LandingDepthM float64 `json:"landing_depth_m"`
	LandingThickM float64 `json:"landing_thick_m"`

	TotalInclinedLengthM    float64 `json:"total_inclined_length_m"`
	VolumeWaistSlabsM3      float64 `json:"volume_waist_slabs_m3"`
	VolumeStepsM3           float64 `json:"volume_steps_m3"`
	VolumeLandingsM3        float64 `json:"volume_landings_m3"`
	TotalVolumeM3           float64 `json:"total_volume_m3"`
	FormworkBottomSlabM2    float64 `json:"formwork_bottom_slab_m2"`
	FormworkLandingBottomM2 float64 `json:"formwork_landing_bottom_m2"`
	FormworkRisersM2        float64 `json:"formwork_risers_m2"`
	FormworkAboveSlabM2     float64 `json:"formwork_above_slab_m2"`
	TotalFormworkAreaM2     float64 `json:"total_formwork_area_m2"`
}

// Calculate is a total function: it never errors. Inputs with riser, height or
// tread at or below zero come back as a zero report (empty flight list, zero
// aggregates) with the normalized constants still filled in, so a live form
// that momentarily holds a blank field keeps getting a usable structure.
func Calculate(in Input) Report {
	h := in.HeightM
	sw := in.StairWidthMM / 1000.0
	r := in.RiserMM / 1000.0
	t := in.TreadMM / 1000.0
	st := in.SlabThickMM / 1000.0
	ll := in.LandingLengthMM / 1000.0
	ld := in.LandingDepthMM / 1000.0
	lt := in.LandingThickMM / 1000.0

	rep := Report{
		Flights:       []Flight{},
		RiserM:        r,
		TreadM:        t,
		SlabThickM:    st,
		LandingDepthM: ld,
		LandingThickM: lt,
	}

	if r <= 0 || h <= 0 || t <= 0 {
		return rep
	}

	// Round half away from zero; for non-exact divisions the delivered riser
	// height differs slightly from the nominal input.
	totalRisers := int(math.Round(h / r))
	if totalRisers == 0 {
		return rep
	}

	numFlights := flightsForHeight(h, totalRisers)
	if numFlights > totalRisers {
		numFlights = totalRisers
	}
	numLandings := numFlights - 1

	base := totalRisers / numFlights
	extra := totalRisers % numFlights
	for i := 0; i < numFlights; i++ {
		risers := base
		if i < extra {
			risers++
		}
		if risers == 0 {
			continue
		}
		treads := risers - 1
		run := float64(treads) * t
		rise := float64(risers) * r
		rep.Flights = append(rep.Flights, Flight{
			RiserCount:      risers,
			TreadCount:      treads,
			RunM:            run,
			RiseM:           rise,
			InclinedLengthM: math.Sqrt(run*run + rise*rise),
		})
	}

	rep.TotalRisers = totalRisers
	rep.NumFlights = numFlights
	rep.NumLandings = numLandings

	for _, f := range rep.Flights {
		rep.TotalInclinedLengthM += f.InclinedLengthM
		rep.VolumeWaistSlabsM3 += f.InclinedLengthM * sw * st
		rep.VolumeStepsM3 += sw * t * r / 2.0 * float64(f.TreadCount)
		rep.TotalTreads += f.TreadCount
	}

	// Soffit plus stringer-side formwork, both driven by the total stringer
	// length. Kept as a single combined figure.
	rep.FormworkBottomSlabM2 = rep.TotalInclinedLengthM*sw + rep.TotalInclinedLengthM*st
	rep.FormworkLandingBottomM2 = ll * ld * float64(numLandings)
	rep.VolumeLandingsM3 = ll * ld * lt * float64(numLandings)
	rep.FormworkRisersM2 = ((r * sw) + (r * t / 2.0)) * float64(totalRisers)
	rep.FormworkAboveSlabM2 = 0 // tread tops are finished, not formed

	rep.TotalVolumeM3 = rep.VolumeWaistSlabsM3 + rep.VolumeStepsM3 + rep.VolumeLandingsM3
	rep.TotalFormworkAreaM2 = rep.FormworkBottomSlabM2 + rep.FormworkLandingBottomM2 + rep.FormworkRisersM2

	return rep
}

// flightsForHeight places landings by total height band. The bands override
// the general max-risers-per-flight rule up to 12 m; above that the capacity
// rule takes over. Band upper bounds are inclusive.
func flightsForHeight(h float64, totalRisers int) int {
	switch {
	case h <= 5.7:
		return 2
	case h <= 8:
		return 4
	case h <= 12:
		return 6
	default:
		return int(math.Ceil(float64(totalRisers) / maxRisersPerFlight))
	}
}
