package stair

import (
	"math"
	"testing"
)

// defaultInput is the application default stair: 4 m storey, 1.95 m wide,
// 180x280 steps, 150 mm waist, 4100x1495x200 landings.
func defaultInput() Input {
	return Input{
		HeightM:         4.0,
		StairWidthMM:    1950,
		RiserMM:         180,
		TreadMM:         280,
		SlabThickMM:     150,
		LandingLengthMM: 4100,
		LandingDepthMM:  1495,
		LandingThickMM:  200,
	}
}

func TestCalculateDefaultScenario(t *testing.T) {
	rep := Calculate(defaultInput())

	if rep.TotalRisers != 22 {
		t.Fatalf("total risers = %d, want 22", rep.TotalRisers)
	}
	if rep.NumFlights != 2 || len(rep.Flights) != 2 {
		t.Fatalf("flights = %d (len %d), want 2", rep.NumFlights, len(rep.Flights))
	}
	if rep.NumLandings != 1 {
		t.Errorf("landings = %d, want 1", rep.NumLandings)
	}
	if rep.TotalTreads != 20 {
		t.Errorf("total treads = %d, want 20", rep.TotalTreads)
	}

	for i, f := range rep.Flights {
		if f.RiserCount != 11 {
			t.Errorf("flight %d risers = %d, want 11", i, f.RiserCount)
		}
		if f.TreadCount != 10 {
			t.Errorf("flight %d treads = %d, want 10", i, f.TreadCount)
		}
		if math.Abs(f.RunM-2.8) > 1e-9 {
			t.Errorf("flight %d run = %v, want 2.8", i, f.RunM)
		}
		if math.Abs(f.RiseM-1.98) > 1e-9 {
			t.Errorf("flight %d rise = %v, want 1.98", i, f.RiseM)
		}
		want := math.Sqrt(2.8*2.8 + 1.98*1.98)
		if math.Abs(f.InclinedLengthM-want) > 1e-9 {
			t.Errorf("flight %d inclined length = %v, want %v", i, f.InclinedLengthM, want)
		}
	}

	// Aggregates recomputed from the published formulas.
	incl := math.Sqrt(2.8*2.8 + 1.98*1.98)
	totalIncl := 2 * incl
	sw, r, tr, st := 1.95, 0.18, 0.28, 0.15
	ll, ld, lt := 4.1, 1.495, 0.2

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"total inclined length", rep.TotalInclinedLengthM, totalIncl},
		{"waist slab volume", rep.VolumeWaistSlabsM3, totalIncl * sw * st},
		{"step volume", rep.VolumeStepsM3, sw * tr * r / 2 * 20},
		{"landing volume", rep.VolumeLandingsM3, ll * ld * lt},
		{"bottom slab formwork", rep.FormworkBottomSlabM2, totalIncl*sw + totalIncl*st},
		{"landing bottom formwork", rep.FormworkLandingBottomM2, ll * ld},
		{"riser formwork", rep.FormworkRisersM2, (r*sw + r*tr/2) * 22},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if rep.FormworkAboveSlabM2 != 0 {
		t.Errorf("above-slab formwork = %v, want 0", rep.FormworkAboveSlabM2)
	}
	wantVol := rep.VolumeWaistSlabsM3 + rep.VolumeStepsM3 + rep.VolumeLandingsM3
	if math.Abs(rep.TotalVolumeM3-wantVol) > 1e-12 {
		t.Errorf("total volume = %v, want %v", rep.TotalVolumeM3, wantVol)
	}
	wantForm := rep.FormworkBottomSlabM2 + rep.FormworkLandingBottomM2 + rep.FormworkRisersM2
	if math.Abs(rep.TotalFormworkAreaM2-wantForm) > 1e-12 {
		t.Errorf("total formwork = %v, want %v", rep.TotalFormworkAreaM2, wantForm)
	}
}

func TestCalculateZeroReport(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{"zero riser", func(in *Input) { in.RiserMM = 0 }},
		{"negative riser", func(in *Input) { in.RiserMM = -180 }},
		{"zero height", func(in *Input) { in.HeightM = 0 }},
		{"negative height", func(in *Input) { in.HeightM = -4 }},
		{"zero tread", func(in *Input) { in.TreadMM = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := defaultInput()
			c.mutate(&in)
			rep := Calculate(in)

			if rep.Flights == nil || len(rep.Flights) != 0 {
				t.Fatalf("flights = %v, want empty slice", rep.Flights)
			}
			zeros := map[string]float64{
				"total inclined length": rep.TotalInclinedLengthM,
				"waist slab volume":     rep.VolumeWaistSlabsM3,
				"step volume":           rep.VolumeStepsM3,
				"landing volume":        rep.VolumeLandingsM3,
				"total volume":          rep.TotalVolumeM3,
				"bottom slab formwork":  rep.FormworkBottomSlabM2,
				"landing formwork":      rep.FormworkLandingBottomM2,
				"riser formwork":        rep.FormworkRisersM2,
				"total formwork":        rep.TotalFormworkAreaM2,
			}
			for name, v := range zeros {
				if v != 0 {
					t.Errorf("%s = %v, want 0", name, v)
				}
			}
			if rep.TotalRisers != 0 || rep.TotalTreads != 0 || rep.NumFlights != 0 || rep.NumLandings != 0 {
				t.Errorf("counts not zeroed: %+v", rep)
			}
			// Constants stay populated even on the zero path.
			in2 := defaultInput()
			c.mutate(&in2)
			if rep.TreadM != in2.TreadMM/1000 || rep.SlabThickM != in2.SlabThickMM/1000 ||
				rep.LandingDepthM != in2.LandingDepthMM/1000 || rep.LandingThickM != in2.LandingThickMM/1000 ||
				rep.RiserM != in2.RiserMM/1000 {
				t.Errorf("normalized constants not echoed: %+v", rep)
			}
		})
	}
}

func TestFlightsForHeightBands(t *testing.T) {
	cases := []struct {
		heightM float64
		riserMM float64
		want    int
	}{
		{4.0, 180, 2},
		{5.7, 180, 2},    // band boundary, inclusive
		{5.701, 180, 4},
		{8.0, 180, 4},
		{8.001, 180, 6},
		{12.0, 180, 6},
		{12.001, 179, 4}, // 67 risers, ceil(67/18) = 4
		{20.0, 180, 7},   // 111 risers, ceil(111/18) = 7
	}
	for _, c := range cases {
		in := defaultInput()
		in.HeightM = c.heightM
		in.RiserMM = c.riserMM
		rep := Calculate(in)
		if rep.NumFlights != c.want {
			t.Errorf("height %v riser %v: flights = %d, want %d", c.heightM, c.riserMM, rep.NumFlights, c.want)
		}
		if rep.NumLandings != rep.NumFlights-1 {
			t.Errorf("height %v: landings = %d, want %d", c.heightM, rep.NumLandings, rep.NumFlights-1)
		}
	}
}

func TestRiserConservationAndDistribution(t *testing.T) {
	cases := []struct {
		heightM float64
		riserMM float64
	}{
		{4.0, 180},
		{5.7, 175},
		{7.3, 160},
		{11.9, 150},
		{15.0, 180},
		{3.1, 190},
	}
	for _, c := range cases {
		in := defaultInput()
		in.HeightM = c.heightM
		in.RiserMM = c.riserMM
		rep := Calculate(in)

		wantTotal := int(math.Round(c.heightM / (c.riserMM / 1000)))
		sum := 0
		for i, f := range rep.Flights {
			if f.RiserCount < 1 {
				t.Errorf("h=%v r=%v: flight %d has %d risers", c.heightM, c.riserMM, i, f.RiserCount)
			}
			if f.TreadCount != f.RiserCount-1 {
				t.Errorf("h=%v r=%v: flight %d treads = %d, want %d", c.heightM, c.riserMM, i, f.TreadCount, f.RiserCount-1)
			}
			sum += f.RiserCount
		}
		if sum != wantTotal {
			t.Errorf("h=%v r=%v: riser sum = %d, want %d", c.heightM, c.riserMM, sum, wantTotal)
		}
		if rep.NumFlights > wantTotal {
			t.Errorf("h=%v r=%v: %d flights for %d risers", c.heightM, c.riserMM, rep.NumFlights, wantTotal)
		}
		// Remainder goes to the lowest flights: counts never increase going up.
		for i := 1; i < len(rep.Flights); i++ {
			if rep.Flights[i].RiserCount > rep.Flights[i-1].RiserCount {
				t.Errorf("h=%v r=%v: flight %d has more risers than flight %d", c.heightM, c.riserMM, i, i-1)
			}
		}
	}
}

func TestSingleStepClamp(t *testing.T) {
	in := defaultInput()
	in.HeightM = 0.18
	rep := Calculate(in)

	if rep.TotalRisers != 1 {
		t.Fatalf("total risers = %d, want 1", rep.TotalRisers)
	}
	if rep.NumFlights != 1 || len(rep.Flights) != 1 {
		t.Fatalf("flights = %d, want 1", rep.NumFlights)
	}
	if rep.NumLandings != 0 {
		t.Errorf("landings = %d, want 0", rep.NumLandings)
	}
	f := rep.Flights[0]
	if f.RiserCount != 1 || f.TreadCount != 0 {
		t.Errorf("flight = %+v, want 1 riser, 0 treads", f)
	}
	if f.RunM != 0 {
		t.Errorf("run = %v, want 0", f.RunM)
	}
	if math.Abs(f.InclinedLengthM-0.18) > 1e-9 {
		t.Errorf("inclined length = %v, want 0.18", f.InclinedLengthM)
	}
}

func TestTinyRiseRoundsToNoFlights(t *testing.T) {
	in := defaultInput()
	in.HeightM = 0.05 // 0.05/0.18 rounds to 0 risers
	rep := Calculate(in)
	if rep.NumFlights != 0 || len(rep.Flights) != 0 || rep.TotalVolumeM3 != 0 {
		t.Errorf("expected degenerate empty report, got %+v", rep)
	}
	if rep.RiserM != 0.18 {
		t.Errorf("riser constant = %v, want 0.18", rep.RiserM)
	}
}

func TestHalfwayRoundsAwayFromZero(t *testing.T) {
	in := defaultInput()
	in.HeightM = 0.27 // 0.27/0.18 = 1.5
	rep := Calculate(in)
	if rep.TotalRisers != 2 {
		t.Errorf("total risers = %d, want 2", rep.TotalRisers)
	}
}

func TestZeroLandingDepthStillComputes(t *testing.T) {
	in := defaultInput()
	in.LandingDepthMM = 0
	rep := Calculate(in)

	if rep.NumFlights != 2 {
		t.Fatalf("flights = %d, want 2", rep.NumFlights)
	}
	if rep.VolumeLandingsM3 != 0 || rep.FormworkLandingBottomM2 != 0 {
		t.Errorf("landing quantities should be zero with zero depth: %+v", rep)
	}
	if rep.TotalVolumeM3 <= 0 {
		t.Errorf("total volume = %v, want > 0", rep.TotalVolumeM3)
	}
}
