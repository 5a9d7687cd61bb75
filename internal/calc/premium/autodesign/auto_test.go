package autodesign

import (
	"math"
	"testing"
)

func TestStairAutoEvenDivision(t *testing.T) {
	res, err := Stair(StairAutoInput{
		HeightM:         3.5,
		StairWidthMM:    1200,
		TreadMM:         280,
		SlabThickMM:     150,
		LandingLengthMM: 2400,
		LandingDepthMM:  1200,
		LandingThickMM:  150,
	})
	if err != nil {
		t.Fatalf("auto: %v", err)
	}
	// 3500/175 = exactly 20 risers at the preferred height.
	if res.Risers != 20 {
		t.Errorf("risers = %d, want 20", res.Risers)
	}
	if math.Abs(res.RiserMM-175) > 1e-9 {
		t.Errorf("riser = %v, want 175", res.RiserMM)
	}
	if res.Report.TotalRisers != 20 {
		t.Errorf("report risers = %d, want 20", res.Report.TotalRisers)
	}
	if res.Report.NumFlights != 2 {
		t.Errorf("flights = %d, want 2", res.Report.NumFlights)
	}
}

func TestStairAutoStaysInWindow(t *testing.T) {
	res, err := Stair(StairAutoInput{HeightM: 3.04, TreadMM: 280, StairWidthMM: 1000, SlabThickMM: 150})
	if err != nil {
		t.Fatalf("auto: %v", err)
	}
	if res.RiserMM < 150 || res.RiserMM > 190 {
		t.Errorf("riser = %v, outside 150-190", res.RiserMM)
	}
	if got := res.RiserMM * float64(res.Risers); math.Abs(got-3040) > 1e-6 {
		t.Errorf("risers do not close the height: %v * %d = %v", res.RiserMM, res.Risers, got)
	}
}

func TestStairAutoInvalid(t *testing.T) {
	if _, err := Stair(StairAutoInput{HeightM: 0, TreadMM: 280}); err == nil {
		t.Fatal("expected error for zero height")
	}
	if _, err := Stair(StairAutoInput{HeightM: 3, TreadMM: 0}); err == nil {
		t.Fatal("expected error for zero tread")
	}
}
